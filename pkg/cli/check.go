package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the configured dd binary is usable",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			d := a.prepare(a.cfg.NewDd())
			v, err := d.Check()
			if err != nil {
				return err
			}
			a.ui.Printf("%s: %s (%s) %s\n", d.Binary(), v.Program, v.Package, v)
			return nil
		},
	}
}
