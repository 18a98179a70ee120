package dd

// State is the phase an invocation is in. Every failure is terminal for the
// invocation; nothing is retried.
type State int

const (
	StateUnchecked State = iota
	StateChecking
	StateCheckFailed
	StateChecked
	StateSpawning
	StateSucceeded
	StateSpawnFailed
)

var stateNames = [...]string{
	StateUnchecked:   "unchecked",
	StateChecking:    "checking",
	StateCheckFailed: "check-failed",
	StateChecked:     "checked",
	StateSpawning:    "spawning",
	StateSucceeded:   "succeeded",
	StateSpawnFailed: "spawn-failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	return s == StateCheckFailed || s == StateSucceeded || s == StateSpawnFailed
}

func (d *Dd) transition(from, to State) State {
	logSink.Debug("state", "binary", d.binary, "from", from, "to", to)
	return to
}
