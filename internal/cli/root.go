package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/flock/flockd/internal"
)

// Configuration file path used when --config is not given.
const DefaultConfigPath = "/etc/flockd/config.toml"

// Validated result of parsing one invocation's arguments.
//
// A Config is created by [TryParse] or [Parse] and is immutable afterwards.
// The configuration path is carried as opaque text; it is never opened or
// checked for existence.
type Config struct {
	logLevel   LogLevel
	configPath string
}

// Returns the requested log level.
func (c Config) LogLevel() LogLevel {
	return c.logLevel
}

// Returns the configuration file path, as given or defaulted.
func (c Config) ConfigPath() string {
	return c.configPath
}

// Represents the flags accepted by the flockd daemon.
//
// A fresh value is used for every parse so that no state is carried between
// calls.
type rootCmd struct {
	LogLevel LogLevel    `name:"log-level" default:"info" placeholder:"LEVEL" help:"Log level: debug, info, warn or error (default: ${default})."`
	Config   configPath  `name:"config" default:"${default_config}" placeholder:"PATH" help:"Configuration file path (default: ${default})."`
	Version  versionFlag `short:"V" help:"Print version information (${version}) and quit."`
	Help     helpFlag    `short:"h" help:"Show help and quit."`
}

// Parses args into a [Config] without printing or exiting.
//
// The first element of args is the program name and is skipped. Any failure,
// including a help or version request, is returned as a [*ParseError].
// Tokens are consumed left to right: a help or version flag stops parsing
// where it appears, and repeated flags take the last value given.
func TryParse(args []string) (Config, error) {
	var (
		cmd    rootCmd
		stdout bytes.Buffer
	)

	parser, err := newParser(&cmd, &stdout)
	if err != nil {
		return Config{}, err
	}

	_, err = parser.Parse(tail(args))
	if err != nil {
		return Config{}, classify(err, &stdout)
	}

	return Config{
		logLevel:   cmd.LogLevel,
		configPath: string(cmd.Config),
	}, nil
}

// Parses args into a [Config], terminating the process on failure.
//
// Help and version requests print to stdout and exit with status 0.
// Validation failures print a message to stderr and exit with status 2.
func Parse(args []string) Config {
	return parse(args, os.Stdout, os.Stderr, os.Exit)
}

// Implements [Parse] with injectable streams and exit function.
//
// If exit returns, the zero Config is returned.
func parse(args []string, stdout, stderr io.Writer, exit func(int)) Config {
	cfg, err := TryParse(args)
	if err == nil {
		return cfg
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		printError(stderr, err)
		exit(1)
		return Config{}
	}

	if perr.Kind.IsDisplay() {
		fmt.Fprint(stdout, perr.Message)
	} else {
		printError(stderr, perr)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", internal.Name)
	}
	exit(perr.ExitCode())
	return Config{}
}

// Builds the kong parser for cmd, writing usage text to stdout.
func newParser(cmd *rootCmd, stdout io.Writer) (*kong.Kong, error) {
	return kong.New(cmd,
		kong.Name(internal.Name),
		kong.Description("Flock device agent."),
		kong.NoDefaultHelp(),
		kong.Writers(stdout, io.Discard),
		kong.Exit(func(int) {}),
		kong.Vars{
			"version":        internal.VersionString(),
			"default_config": DefaultConfigPath,
		},
	)
}

// Converts an error from kong into a [*ParseError].
//
// Errors raised by the flag decoders are already classified. Anything else
// kong rejects while tracing the arguments is an unknown flag or a stray
// positional token.
func classify(err error, stdout *bytes.Buffer) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		switch perr.Kind {
		case DisplayVersion:
			perr.Message = internal.Name + " " + internal.VersionString() + "\n"
		case DisplayHelp:
			var kerr *kong.ParseError
			if errors.As(err, &kerr) && kerr.Context != nil {
				if err := kerr.Context.PrintUsage(false); err != nil {
					return err
				}
			}
			perr.Message = stdout.String()
		}
		return perr
	}

	return &ParseError{
		Kind:  UnrecognizedArgument,
		Value: offendingToken(err),
		Err:   fmt.Errorf("%w: %w", ErrUnrecognized, err),
	}
}

// Extracts the offending token from a kong trace error.
//
// Kong reports these as "unknown flag X" or "unexpected argument X",
// optionally followed by ", did you mean ...".
func offendingToken(err error) string {
	msg := err.Error()
	for _, prefix := range []string{"unknown flag ", "unexpected argument "} {
		if i := strings.Index(msg, prefix); i >= 0 {
			token, _, _ := strings.Cut(msg[i+len(prefix):], ", did you mean")
			return token
		}
	}
	return msg
}

// Returns args without the program name.
func tail(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}
