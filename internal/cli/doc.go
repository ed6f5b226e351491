// Package cli implements the termstat command-line interface.
//
// # Command Structure
//
// The root command is "termstat" with subcommands:
//
//	termstat demo [name]        - Live table from a built-in producer
//	termstat pipe [-- cmd ...]  - Live table from measurement lines on stdin
//	termstat init               - Create .termstat.yaml
//	termstat version            - Print version information
//	termstat completion <shell> - Generate shell completion (added by cobra)
//
// # Flag Handling
//
// Global flags (--config, --verbose) live on the root command. Commands that
// print a table share DisplayFlags (--interval, --count, --header-every,
// --style, --tui); a flag the user set overrides the matching config key.
//
// # Output
//
// Tables go to the command's stdout. Logs go to stderr through the package
// logger, which --verbose or TERMSTAT_DEBUG switch to debug level.
package cli
