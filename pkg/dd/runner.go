package dd

import (
	"bytes"
	"os/exec"
	"strings"
)

// Runner abstracts how the dd binary is executed. ExecRunner spawns a real
// process; DryRunner only records what would have been run.
//
// Run must return an *exec.ExitError when the process started but exited
// non-zero; any other non-nil error is treated as a failure to start.
type Runner interface {
	Run(name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec and captures both output streams.
type ExecRunner struct {
	// Dir is the working directory of the child. Empty means the caller's.
	Dir string
}

func NewExecRunner() *ExecRunner { return &ExecRunner{} }

func (r *ExecRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	logSink.Debug("exec", "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
