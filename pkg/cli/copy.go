package cli

import (
	"github.com/spf13/cobra"

	"github.com/woliveiras/godd/pkg/dd"
)

// copyFlagOrder is the order in which copy flags become dd operands.
var copyFlagOrder = []string{
	dd.KeyInput,
	dd.KeyOutput,
	dd.KeyBlockSize,
	dd.KeyInputBlock,
	dd.KeyOutBlock,
	dd.KeyConvBlock,
	dd.KeyCount,
	dd.KeySkip,
	dd.KeySeek,
	dd.KeyConv,
	dd.KeyIFlag,
	dd.KeyOFlag,
	dd.KeyStatus,
}

type copyOptions struct {
	input, output      string
	bs, ibs, obs, cbs  string
	count, skip, seek  uint64
	conv, iflag, oflag []string
	status             string
	exec               execOptions
}

func newCopyCmd(a *app) *cobra.Command {
	var o copyOptions

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy data with dd",
		Example: `  godd copy --if raspios.img --of /dev/sdc --bs 4M --conv fsync --status progress
  GODD_ALLOW_WRITE=1 godd copy --if raspios.img --of /dev/sdc --bs 4M --execute`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.prepare(a.cfg.NewDd())
			flags := cmd.Flags()
			for _, name := range copyFlagOrder {
				if !flags.Changed(name) {
					continue
				}
				o.apply(d, name)
			}
			return a.perform(d, o.exec)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.input, dd.KeyInput, "", "read from this file instead of stdin")
	f.StringVar(&o.output, dd.KeyOutput, "", "write to this file instead of stdout")
	f.StringVar(&o.bs, dd.KeyBlockSize, "", "read and write up to this many bytes at a time (e.g. 4M)")
	f.StringVar(&o.ibs, dd.KeyInputBlock, "", "read up to this many bytes at a time")
	f.StringVar(&o.obs, dd.KeyOutBlock, "", "write this many bytes at a time")
	f.StringVar(&o.cbs, dd.KeyConvBlock, "", "convert this many bytes at a time")
	f.Uint64Var(&o.count, dd.KeyCount, 0, "copy only this many input blocks")
	f.Uint64Var(&o.skip, dd.KeySkip, 0, "skip this many input blocks")
	f.Uint64Var(&o.seek, dd.KeySeek, 0, "skip this many output blocks")
	f.StringSliceVar(&o.conv, dd.KeyConv, nil, "conversion flags, comma separated")
	f.StringSliceVar(&o.iflag, dd.KeyIFlag, nil, "input flags, comma separated")
	f.StringSliceVar(&o.oflag, dd.KeyOFlag, nil, "output flags, comma separated")
	f.StringVar(&o.status, dd.KeyStatus, "", "stderr reporting level: none, noxfer or progress")
	o.exec.register(cmd)
	_ = cmd.MarkFlagRequired(dd.KeyInput)

	return cmd
}

func (o *copyOptions) apply(d *dd.Dd, name string) {
	switch name {
	case dd.KeyInput:
		d.Input(o.input)
	case dd.KeyOutput:
		d.Output(o.output)
	case dd.KeyBlockSize:
		d.BS(o.bs)
	case dd.KeyInputBlock:
		d.IBS(o.ibs)
	case dd.KeyOutBlock:
		d.OBS(o.obs)
	case dd.KeyConvBlock:
		d.CBS(o.cbs)
	case dd.KeyCount:
		d.Count(o.count)
	case dd.KeySkip:
		d.Skip(o.skip)
	case dd.KeySeek:
		d.Seek(o.seek)
	case dd.KeyConv:
		d.Conv(o.conv...)
	case dd.KeyIFlag:
		d.IFlag(o.iflag...)
	case dd.KeyOFlag:
		d.OFlag(o.oflag...)
	case dd.KeyStatus:
		d.Status(o.status)
	}
}
