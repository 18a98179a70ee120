// Package cli provides the command-line interface used by godd.
//
// The CLI builds a dd command line from flags or from a YAML job file,
// prints it for review, and only runs it when asked to. Use `Run` as the
// entry point when embedding the CLI in other tools.
//
// Example usage:
//
//	if err := cli.Run(os.Args); err != nil {
//		os.Exit(cli.ExitCode(err))
//	}
package cli
