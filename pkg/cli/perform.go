package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woliveiras/godd/pkg/dd"
)

// execOptions are the flags shared by every command that may write.
type execOptions struct {
	execute bool
	yes     bool
}

func (o *execOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.execute, "execute", false, "run dd instead of printing the plan (requires "+allowWriteEnv+"=1)")
	cmd.Flags().BoolVarP(&o.yes, "yes", "y", false, "do not ask before writing to a device")
}

// prepare applies test overrides to d.
func (a *app) prepare(d *dd.Dd) *dd.Dd {
	if a.runner != nil {
		d.WithRunner(a.runner)
	}
	return d
}

// perform prints the planned command and, when writes are enabled, runs it.
// In dry-run mode dd is still asked for its version, then the copy goes
// through a DryRunner so nothing is written.
func (a *app) perform(d *dd.Dd, o execOptions) error {
	input, _ := d.Get(dd.KeyInput)
	output, _ := d.Get(dd.KeyOutput)
	if err := dd.ValidateTarget(input, output); err != nil {
		return err
	}

	dryRun := a.cfg.DryRun && !o.execute
	if !dryRun && os.Getenv(allowWriteEnv) != "1" {
		return fmt.Errorf("execute mode is protected; set %s=1 to enable", allowWriteEnv)
	}

	a.ui.Printf("%s %s\n", d.Binary(), strings.Join(d.Args(), " "))

	if dryRun {
		v, err := d.Check()
		if err != nil {
			return err
		}
		a.journal(dd.JournalEntry{Phase: dd.PhasePlan, Binary: d.Binary(), Args: d.Args(), Version: v.String(), DryRun: true})
		if _, err := d.WithRunner(&dd.DryRunner{VersionOutput: v.Raw}).Spawn(); err != nil {
			return err
		}
		a.ui.Println("dry-run: nothing was written; pass --execute to run dd")
		return nil
	}

	if strings.HasPrefix(output, "/dev/") && !o.yes {
		ok, err := a.ui.Confirm(fmt.Sprintf("This will overwrite %s. Continue?", output))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("copy cancelled by user")
		}
	}

	out, err := d.Spawn()
	if err != nil {
		a.journal(dd.JournalEntry{Phase: dd.PhaseSpawnFailed, Binary: d.Binary(), Args: d.Args(), Err: err})
		return err
	}
	a.journal(dd.JournalEntry{Phase: dd.PhaseSpawnSuccess, Binary: d.Binary(), Args: d.Args()})

	if out != "" {
		a.ui.Printf("%s", out)
	}
	return nil
}

func (a *app) journal(e dd.JournalEntry) {
	if a.cfg.Journal == "" {
		return
	}
	if err := dd.AppendJournal(a.cfg.Journal, e); err != nil {
		a.logger.Warn("cannot write journal", "file", a.cfg.Journal, "err", err)
	}
}
