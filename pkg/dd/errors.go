package dd

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by Check and Spawn wraps exactly one
// of them, so callers can classify failures with errors.Is.
var (
	ErrProcessStart            = errors.New("dd process could not be started")
	ErrUnexpectedVersionFormat = errors.New("unexpected dd version output")
	ErrExecutionFailed         = errors.New("dd exited with an error")
	ErrOutputDecode            = errors.New("dd output is not valid UTF-8")
	ErrOldVersion              = errors.New("dd version is older than the minimum")
	ErrNoInput                 = errors.New("no input given to dd")
)

type (
	// ProcessStartError is returned when the binary is missing, not
	// executable, or the OS refused to spawn it.
	ProcessStartError struct {
		Binary string
		Err    error
	}

	// VersionFormatError is returned when the --version output does not
	// look like "dd (coreutils) 9.4".
	VersionFormatError struct {
		Binary string
		Line   string
	}

	// ExecutionError is returned when dd started but exited non-zero.
	// Stderr holds whatever dd wrote to its error stream.
	ExecutionError struct {
		Binary   string
		Args     []string
		ExitCode int
		Stderr   string
	}

	// DecodeError is returned when captured output is not valid text.
	DecodeError struct {
		Binary string
		Stream string
	}

	// OldVersionError is returned when the binary is older than the
	// configured minimum version.
	OldVersionError struct {
		Binary string
		Have   Version
		Want   string
	}
)

func (e *ProcessStartError) Error() string {
	return fmt.Sprintf("cannot start %q: %v", e.Binary, e.Err)
}

// Unwrap returns both the sentinel and the underlying OS error, so
// errors.Is works for ErrProcessStart as well as for exec.ErrNotFound.
func (e *ProcessStartError) Unwrap() []error { return []error{ErrProcessStart, e.Err} }

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("%s --version: unrecognized output %q", e.Binary, e.Line)
}

func (e *VersionFormatError) Unwrap() error { return ErrUnexpectedVersionFormat }

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("%s %s: exit status %d", e.Binary, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExecutionError) Unwrap() error { return ErrExecutionFailed }

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s is not valid UTF-8", e.Binary, e.Stream)
}

func (e *DecodeError) Unwrap() error { return ErrOutputDecode }

func (e *OldVersionError) Error() string {
	return fmt.Sprintf("%s version %s is older than required %s", e.Binary, e.Have, e.Want)
}

func (e *OldVersionError) Unwrap() error { return ErrOldVersion }
