package internal

import (
	"runtime"
	"testing"
)

// Sets the linker variables for the duration of a test.
func setBuild(t *testing.T, v, s, c string) {
	t.Helper()
	oldVersion, oldStage, oldCommit := version, stage, gitCommit
	version, stage, gitCommit = v, s, c
	t.Cleanup(func() {
		version, stage, gitCommit = oldVersion, oldStage, oldCommit
	})
}

func TestVersionStripsPrefix(t *testing.T) {
	setBuild(t, " V1.2.3 ", "", "")
	if got := Version(); got != "1.2.3" {
		t.Fatalf("Version() = %q, want 1.2.3", got)
	}
}

func TestVersionUndefined(t *testing.T) {
	setBuild(t, "", "", "")
	if got := Version(); got != defaultUndefined {
		t.Fatalf("Version() = %q, want %q", got, defaultUndefined)
	}
}

func TestVersionStringLocal(t *testing.T) {
	setBuild(t, "0.4.0", "", "")
	if !IsLocal() {
		t.Fatal("IsLocal() = false, want true")
	}
	if got := VersionString(); got != "0.4.0 (local)" {
		t.Fatalf("VersionString() = %q, want 0.4.0 (local)", got)
	}
}

func TestVersionStringPipeline(t *testing.T) {
	tests := []struct {
		stage string
		want  string
	}{
		{"main", "1.0.0 a1b2c3d [" + runtime.GOARCH + "]"},
		{"Staging", "1.0.0+staging a1b2c3d [" + runtime.GOARCH + "]"},
	}
	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			setBuild(t, "v1.0.0", tt.stage, "a1b2c3d")
			if IsLocal() {
				t.Fatal("IsLocal() = true, want false")
			}
			if got := VersionString(); got != tt.want {
				t.Fatalf("VersionString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGitCommitAndStageUndefined(t *testing.T) {
	setBuild(t, "1.0.0", "  ", "")
	if Stage() != defaultUndefined {
		t.Fatalf("Stage() = %q, want %q", Stage(), defaultUndefined)
	}
	if GitCommit() != defaultUndefined {
		t.Fatalf("GitCommit() = %q, want %q", GitCommit(), defaultUndefined)
	}
}
