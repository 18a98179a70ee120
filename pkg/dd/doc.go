// Package dd wraps the external dd(1) utility.
//
// A Dd value accumulates dd operands (if=, of=, bs=, ...) in the order they
// are set, checks the binary with a --version preflight and then runs it as
// a subprocess, returning the captured standard output.
//
// Example usage:
//
//	out, err := dd.New("dd").
//		Input("./test.iso").
//		Output("./copied.iso").
//		BS("4M").
//		Spawn()
//
// Errors are classified with sentinels (ErrProcessStart, ErrExecutionFailed,
// ...) so callers can tell a missing binary apart from a failed copy.
package dd
