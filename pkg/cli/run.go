package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woliveiras/godd/pkg/config"
	"github.com/woliveiras/godd/pkg/dd"
)

// Version is the godd version (set via -ldflags).
var Version = "dev"

// allowWriteEnv must be "1" before godd runs dd for real.
const allowWriteEnv = "GODD_ALLOW_WRITE"

// app carries the state shared by all commands of one invocation.
type app struct {
	ui      UI
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *log.Logger
	// runner replaces the process runner for every dd call. Tests only.
	runner dd.Runner
}

// Run is the main entrypoint for the CLI. args includes the program name,
// as in os.Args.
func Run(args []string) error {
	return run(context.Background(), args, NewStdUI())
}

// run is the internal implementation that allows injecting a custom UI.
func run(ctx context.Context, args []string, ui UI) error {
	if len(args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	root := newRootCmd(&app{ui: ui})
	root.SetArgs(args[1:])

	return fang.Execute(ctx, root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "godd",
		Short: "Plan and run dd copies safely",
		Long: `godd builds a dd command line from flags or a YAML job file, checks
the dd binary with --version, and runs the copy.

Copies are dry-run by default: godd prints the exact dd command and stops.
Pass --execute (and set GODD_ALLOW_WRITE=1) to actually write.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/godd/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newCopyCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// init loads the configuration and wires the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	dd.SetLogger(a.logger)

	if a.ui == nil {
		a.ui = newUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if cfg.File != "" {
		a.logger.Debug("config loaded", "file", cfg.File)
	}
	return nil
}

// ExitCode maps an error returned by Run to a process exit status. A failed
// dd run exits with dd's own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var execErr *dd.ExecutionError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}
