package dd

import "strings"

// Spawn checks the binary, then runs it with the operands set so far and
// blocks until it exits. On success it returns dd's standard output.
//
// dd writes its transfer statistics to stderr; those are logged at debug
// level and are only part of the result when dd fails.
func (d *Dd) Spawn() (string, error) {
	state := d.transition(StateUnchecked, StateChecking)

	if _, err := d.Check(); err != nil {
		d.transition(state, StateCheckFailed)
		return "", err
	}
	state = d.transition(state, StateChecked)

	if _, ok := d.Get(KeyInput); !ok {
		d.transition(state, StateSpawnFailed)
		return "", ErrNoInput
	}

	args := d.Args()
	state = d.transition(state, StateSpawning)

	stdout, stderr, err := d.runner.Run(d.binary, args...)
	if err != nil {
		d.transition(state, StateSpawnFailed)
		return "", d.runError(args, stderr, err)
	}
	if len(stderr) > 0 {
		logSink.Debug("dd stderr", "binary", d.binary, "text", strings.TrimSpace(string(stderr)))
	}

	out, err := d.decode("stdout", stdout)
	if err != nil {
		d.transition(state, StateSpawnFailed)
		return "", err
	}

	d.transition(state, StateSucceeded)
	return out, nil
}
