package cli

import "github.com/alecthomas/kong"

// Configuration path flag value, accepted verbatim.
type configPath string

// Decodes the flag value for kong.
func (p *configPath) Decode(ctx *kong.DecodeContext) error {
	value, err := popValue(ctx, "--"+ctx.Value.Name)
	if err != nil {
		return err
	}
	*p = configPath(value)
	return nil
}

// Flag that stops parsing and requests the version text.
type versionFlag bool

func (versionFlag) IsBool() bool { return true }

// Reports the request while kong is still tracing the arguments, so nothing
// after the flag is examined.
func (versionFlag) Decode(*kong.DecodeContext) error {
	return &ParseError{Kind: DisplayVersion, Flag: "--version", Err: ErrDisplayVersion}
}

// Flag that stops parsing and requests the usage text.
type helpFlag bool

func (helpFlag) IsBool() bool { return true }

// Reports the request while kong is still tracing the arguments.
func (helpFlag) Decode(*kong.DecodeContext) error {
	return &ParseError{Kind: DisplayHelp, Flag: "--help", Err: ErrDisplayHelp}
}
