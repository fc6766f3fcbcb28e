// Parses flags for the flockd device agent.
//
// The agent accepts the following flags:
//
//	--log-level LEVEL   One of debug, info, warn, error (default info).
//	--config PATH       Configuration file path (default /etc/flockd/config.toml).
//	-V, --version       Print version information and quit.
//	-h, --help          Show help and quit.
//
// [TryParse] returns either a [Config] or a [*ParseError] whose [Kind]
// separates validation failures from help and version requests. [Parse] is
// the entry-point wrapper: it prints the requested text or error message and
// exits with the matching status.
//
// Example usage:
//
//	cfg := cli.Parse(os.Args)
//	cli.ConfigureLogger(os.Stderr, cfg.LogLevel())
package cli
