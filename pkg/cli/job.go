package cli

import (
	"github.com/spf13/cobra"

	"github.com/woliveiras/godd/pkg/job"
)

func newRunCmd(a *app) *cobra.Command {
	var o execOptions

	cmd := &cobra.Command{
		Use:     "run <job.yaml>",
		Short:   "Run a copy described in a YAML job file",
		Example: "  godd run flash-sd.yaml\n  GODD_ALLOW_WRITE=1 godd run flash-sd.yaml --execute",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			j, err := job.Load(args[0])
			if err != nil {
				return err
			}

			d := j.Build(a.cfg.Binary)
			if j.MinVersion == "" {
				a.cfg.ApplyMinVersion(d)
			}
			return a.perform(a.prepare(d), o)
		},
	}
	o.register(cmd)

	return cmd
}
