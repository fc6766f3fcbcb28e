package cli

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrMissingValue    = errors.New("missing value")
	ErrUnrecognized    = errors.New("unrecognized argument")
	ErrDisplayHelp     = errors.New("help requested")
	ErrDisplayVersion  = errors.New("version requested")
)

const (
	exitOK         = 0 // Status for a successful run or a display request.
	exitUsageError = 2 // Status for any validation failure.
)

// Classifies the outcome of a failed parse.
type Kind int

const (
	UnrecognizedArgument Kind = iota + 1 // Unknown flag or stray positional token.
	MissingValue                         // Flag expecting a value received none.
	InvalidValue                         // Flag value outside its allowed set.
	DisplayVersion                       // Version was requested.
	DisplayHelp                          // Usage text was requested.
)

// Returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case UnrecognizedArgument:
		return "unrecognized argument"
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	case DisplayVersion:
		return "display version"
	case DisplayHelp:
		return "display help"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Whether the kind is a display request rather than a validation failure.
func (k Kind) IsDisplay() bool {
	return k == DisplayVersion || k == DisplayHelp
}

// Describes why an argument list did not produce a [Config].
//
// Display requests ([DisplayHelp], [DisplayVersion]) are reported through
// this type too; they carry the text to print in Message and map to a zero
// exit status.
type ParseError struct {
	Kind    Kind   // Outcome classification.
	Flag    string // Flag involved, including dashes (e.g. "--log-level"). Empty if none.
	Value   string // Offending value or token. Empty if none.
	Message string // Text to print for display requests.
	Err     error  // Underlying cause.
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnrecognizedArgument:
		return fmt.Sprintf("unrecognized argument %q", e.Value)
	case MissingValue:
		return fmt.Sprintf("a value is required for %s but none was supplied", e.Flag)
	case InvalidValue:
		return fmt.Sprintf("%s: %v", e.Flag, e.Err)
	}
	return e.Kind.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Returns the process exit status for the error.
func (e *ParseError) ExitCode() int {
	if e.Kind.IsDisplay() {
		return exitOK
	}
	return exitUsageError
}

// Pops the value token following flag.
//
// The end of input, or a token that is itself a flag, yields a [ParseError]
// of kind [MissingValue].
func popValue(ctx *kong.DecodeContext, flag string) (string, error) {
	token := ctx.Scan.Peek()
	if !token.IsValue() {
		return "", &ParseError{Kind: MissingValue, Flag: flag, Err: ErrMissingValue}
	}
	ctx.Scan.Pop()
	return token.String(), nil
}
