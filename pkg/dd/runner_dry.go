package dd

import "strings"

// DefaultDryRunVersion is what DryRunner answers to --version.
const DefaultDryRunVersion = "dd (coreutils) 9.4"

// DryRunner logs commands but does not execute anything. Useful for CI or
// for printing the argv of a copy without touching any disk.
type DryRunner struct {
	// VersionOutput overrides the --version answer.
	VersionOutput string
	// Calls holds every argv seen, binary first.
	Calls [][]string
}

func NewDryRunner() *DryRunner { return &DryRunner{} }

func (r *DryRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	call := append([]string{name}, args...)
	r.Calls = append(r.Calls, call)
	logSink.Info("DRY-RUN", "cmd", strings.Join(call, " "))

	if len(args) == 1 && args[0] == versionFlag {
		out := r.VersionOutput
		if out == "" {
			out = DefaultDryRunVersion
		}
		return []byte(out + "\n"), nil, nil
	}
	return nil, nil, nil
}
