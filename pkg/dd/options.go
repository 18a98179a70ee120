package dd

import (
	"fmt"
	"strings"
)

// Operand keys understood by dd.
const (
	KeyInput      = "if"
	KeyOutput     = "of"
	KeyBlockSize  = "bs"
	KeyConvBlock  = "cbs"
	KeyInputBlock = "ibs"
	KeyOutBlock   = "obs"
	KeyCount      = "count"
	KeySeek       = "seek"
	KeySkip       = "skip"
	KeyStatus     = "status"
	KeyConv       = "conv"
	KeyIFlag      = "iflag"
	KeyOFlag      = "oflag"
)

// Arg is a single key=value operand.
type Arg struct {
	Key   string
	Value string
}

func (a Arg) String() string { return a.Key + "=" + a.Value }

// Set stores key=value. Setting a key that is already present replaces its
// value in place, so the operand keeps its original position and dd never
// sees two conflicting values for the same key. No validation is done: a bad
// value only surfaces when dd rejects it.
func (d *Dd) Set(key string, value any) *Dd {
	v := fmt.Sprint(value)
	for i := range d.args {
		if d.args[i].Key == key {
			d.args[i].Value = v
			return d
		}
	}
	d.args = append(d.args, Arg{Key: key, Value: v})
	return d
}

// Get returns the value currently set for key.
func (d *Dd) Get(key string) (string, bool) {
	for _, a := range d.args {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Args returns the operands as dd expects them on its command line, in the
// order they were first set.
func (d *Dd) Args() []string {
	out := make([]string, 0, len(d.args))
	for _, a := range d.args {
		out = append(out, a.String())
	}
	return out
}

// Input sets the input file (if=).
func (d *Dd) Input(path string) *Dd { return d.Set(KeyInput, path) }

// Output sets the output file (of=).
func (d *Dd) Output(path string) *Dd { return d.Set(KeyOutput, path) }

// BS sets the block size, e.g. "4M".
func (d *Dd) BS(size string) *Dd { return d.Set(KeyBlockSize, size) }

func (d *Dd) CBS(size string) *Dd { return d.Set(KeyConvBlock, size) }

func (d *Dd) IBS(size string) *Dd { return d.Set(KeyInputBlock, size) }

func (d *Dd) OBS(size string) *Dd { return d.Set(KeyOutBlock, size) }

// Count copies only n input blocks.
func (d *Dd) Count(n uint64) *Dd { return d.Set(KeyCount, n) }

// Seek skips n blocks at the start of the output.
func (d *Dd) Seek(n uint64) *Dd { return d.Set(KeySeek, n) }

// Skip skips n blocks at the start of the input.
func (d *Dd) Skip(n uint64) *Dd { return d.Set(KeySkip, n) }

// Status sets the stderr reporting level: none, noxfer or progress.
func (d *Dd) Status(level string) *Dd { return d.Set(KeyStatus, level) }

// Conv sets the conversion flags, e.g. Conv("notrunc", "fsync").
func (d *Dd) Conv(flags ...string) *Dd { return d.Set(KeyConv, strings.Join(flags, ",")) }

func (d *Dd) IFlag(flags ...string) *Dd { return d.Set(KeyIFlag, strings.Join(flags, ",")) }

func (d *Dd) OFlag(flags ...string) *Dd { return d.Set(KeyOFlag, strings.Join(flags, ",")) }
