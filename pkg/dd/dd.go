package dd

import "fmt"

// DefaultBinary is the executable used when New is given an empty name.
const DefaultBinary = "dd"

// Dd holds the executable to run and the ordered operands to pass to it.
// It is created once per copy, mutated by the option setters and read by
// Check and Spawn. A Dd must not be mutated while Spawn is running.
type Dd struct {
	binary     string
	minVersion string // semver form, e.g. "v8.30"; empty disables the check
	args       []Arg
	runner     Runner
}

// New returns a Dd for the given binary name or path with no operands set.
func New(binary string) *Dd {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Dd{
		binary: binary,
		runner: NewExecRunner(),
	}
}

// Binary returns the configured executable name or path.
func (d *Dd) Binary() string { return d.binary }

// MinVersion makes Check reject binaries older than major.minor.
func (d *Dd) MinVersion(major, minor int) *Dd {
	d.minVersion = fmt.Sprintf("v%d.%d", major, minor)
	return d
}

// WithRunner replaces the process runner. Passing nil restores ExecRunner.
func (d *Dd) WithRunner(r Runner) *Dd {
	if r == nil {
		r = NewExecRunner()
	}
	d.runner = r
	return d
}
