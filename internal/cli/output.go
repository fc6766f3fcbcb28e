package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/flock/flockd/internal"
	"github.com/mattn/go-isatty"
)

// Writes the startup banner for cfg.
//
//	flockd v<version>
//	log_level=<level>
//	config=<path>
func WriteBanner(w io.Writer, cfg Config) error {
	_, err := fmt.Fprintf(w, "%s v%s\nlog_level=%s\nconfig=%s\n",
		internal.Name,
		internal.Version(),
		cfg.LogLevel(),
		cfg.ConfigPath(),
	)
	return err
}

// Installs the process-wide logger at the given level and returns it.
//
// Output is human-readable text when w is a terminal and JSON otherwise.
// Records are grouped under the program name.
func ConfigureLogger(w io.Writer, level LogLevel) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler.WithGroup(internal.Name))
	slog.SetDefault(logger)
	return logger
}

// Writes err to w as "flockd: error: <message>".
//
// The "error:" marker is colored when w is a terminal.
func printError(w io.Writer, err error) {
	marker := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		marker.EnableColor()
	} else {
		marker.DisableColor()
	}
	fmt.Fprintf(w, "%s: %s %s\n", internal.Name, marker.Sprint("error:"), err)
}

// Whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
