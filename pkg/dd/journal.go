package dd

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Journal phases.
const (
	PhasePlan         = "PLAN"
	PhaseSpawnSuccess = "SPAWN_SUCCESS"
	PhaseSpawnFailed  = "SPAWN_FAILED"
)

const journalFileHeader = "# godd journal - each section describes one planned or executed copy. Newest entries are at the bottom.\n\n"

// JournalEntry describes one run for AppendJournal.
type JournalEntry struct {
	Phase   string
	Binary  string
	Args    []string
	Version string
	DryRun  bool
	Err     error
	// Time defaults to now when zero.
	Time time.Time
}

// AppendJournal appends a human-readable entry to the file at path,
// creating it with a header when it does not exist yet.
func AppendJournal(path string, e JournalEntry) error {
	f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openErr != nil {
		return openErr
	}
	defer f.Close()

	info, statErr := f.Stat()
	if statErr == nil && info.Size() == 0 {
		if _, err := f.WriteString(journalFileHeader); err != nil {
			return err
		}
	}

	when := e.Time
	if when.IsZero() {
		when = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s %s ===\n", e.Phase, when.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "binary: %s\n", e.Binary)
	if e.Version != "" {
		fmt.Fprintf(&b, "version: %s\n", e.Version)
	}
	fmt.Fprintf(&b, "dry_run: %v\n", e.DryRun)
	fmt.Fprintf(&b, "args:\n")
	for _, a := range e.Args {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	switch e.Phase {
	case PhaseSpawnSuccess:
		fmt.Fprintf(&b, "result: SUCCESS\n\n")
	case PhaseSpawnFailed:
		fmt.Fprintf(&b, "result: FAILED: %v\n\n", e.Err)
	default:
		fmt.Fprintf(&b, "result: PENDING\n\n")
	}

	_, writeErr := f.WriteString(b.String())
	return writeErr
}
