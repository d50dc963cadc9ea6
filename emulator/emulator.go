// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/acc20/cpu"
	"github.com/ezrec/acc20/internal"
	"github.com/ezrec/acc20/io"
)

var _emulator_defines = map[string]string{
	"OPCODE_SHIFT": fmt.Sprintf("%v", cpu.OPCODE_SHIFT),
}

func init() {
	for op := cpu.OP_LDA; op <= cpu.OP_HLT; op++ {
		_emulator_defines["OP_"+op.String()] = fmt.Sprintf("%v", int(op))
	}
}

// Emulator state. CPU + program listing + tape.
type Emulator struct {
	Verbose  bool         // If set, traces every event and tick.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape  io.Tape  // Tape IO channel, used by OUT, and by INP unless fed.
	Queue io.Queue // Input values given by Feed.

	SnapshotPath string         // If set, RAM is written here after every tick.
	Log          *logrus.Logger // Trace destination.

	loading bool
}

var _ cpu.Observer = (*Emulator)(nil)

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		Log:     logrus.StandardLogger(),
	}

	emu.Cpu = cpu.NewCpu(emu)
	emu.Cpu.Input = &emu.Tape
	emu.Cpu.Output = &emu.Tape

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// load resets the machine and fills memory from image.
func (emu *Emulator) load(image []cpu.Word) (err error) {
	emu.Cpu.Reset()

	emu.loading = true
	for addr, word := range image {
		err = emu.Cpu.Memory.Set(addr, word.Signed())
		if err != nil {
			break
		}
	}
	emu.loading = false
	if err != nil {
		return
	}

	err = emu.snapshot()
	return
}

// Reset the machine, and load the program image into memory.
func (emu *Emulator) Reset() (err error) {
	err = emu.load(emu.Program.Binary())
	return
}

// Restore resets the machine, and loads memory from a snapshot file
// instead of the program image. Cells missing from the file are zero.
func (emu *Emulator) Restore(path string) (err error) {
	snap := &io.Snapshot{Width: cpu.WORD_BITS}
	err = snap.ReadFile(path)
	if err != nil {
		return
	}

	if len(snap.Cells) > cpu.RAM_SIZE {
		err = ErrSnapshotSize
		return
	}

	image := make([]cpu.Word, len(snap.Cells))
	for addr, cell := range snap.Cells {
		var bits [cpu.WORD_BITS]cpu.Bit
		for n := range bits {
			bits[n].Set(int(cell >> n))
		}
		image[addr] = cpu.WordFromBits(bits)
	}

	err = emu.load(image)
	return
}

// Feed replaces the tape input with a fixed list of values.
func (emu *Emulator) Feed(values ...int) {
	emu.Queue = io.Queue{Data: values}
	emu.Cpu.Input = &emu.Queue
}

// Line returns the source line for the instruction at PC, or nil.
func (emu *Emulator) Line() *cpu.Line {
	return emu.Program.Debug(emu.Cpu.Pc.Get())
}

// LineNo returns the current line number for the instruction at PC.
func (emu *Emulator) LineNo() int {
	line := emu.Line()
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Snapshot returns the current contents of memory.
func (emu *Emulator) Snapshot() (snap *io.Snapshot) {
	snap = &io.Snapshot{
		Width: cpu.WORD_BITS,
		Cells: make([]uint32, len(emu.Cpu.Memory.Cell)),
	}
	for n, word := range emu.Cpu.Memory.Cell {
		for bit, b := range word.Bits() {
			snap.Cells[n] |= uint32(b) << bit
		}
	}

	return
}

// snapshot writes memory to SnapshotPath, if set.
func (emu *Emulator) snapshot() (err error) {
	if len(emu.SnapshotPath) == 0 {
		return
	}

	err = emu.Snapshot().WriteFile(emu.SnapshotPath)
	return
}

// Observe traces machine events.
func (emu *Emulator) Observe(ev cpu.Event) {
	if !emu.Verbose || emu.loading {
		return
	}

	entry := emu.Log.WithFields(logrus.Fields{
		"tick":  emu.Cpu.Ticks,
		"event": ev.Kind.String(),
	})

	switch ev.Kind {
	case cpu.EVENT_REGISTER:
		entry.Infof("%v <- %d", ev.Name, ev.Value.Signed())
	case cpu.EVENT_MEMORY:
		entry.Infof("[%d] <- %d", ev.Address, ev.Value.Signed())
	default:
		entry.Infof("%d", ev.Value.Signed())
	}
}

// Tick performs a single fetch, decode and execute cycle.
// Returns done once the program has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	outcome := emu.Cpu.Tick()
	switch outcome.State {
	case cpu.HALT:
		done = true
	case cpu.FAULT:
		err = errors.Join(ErrFault, outcome.Err)
	}

	if emu.Verbose {
		emu.Log.WithFields(logrus.Fields{
			"tick":    emu.Cpu.Ticks,
			"line":    lineno,
			"pc":      emu.Cpu.Pc.Get(),
			"acc":     emu.Cpu.Acc.Get(),
			"outcome": outcome.State.String(),
		}).Info(cpu.MakeDecoded(emu.Cpu.Cir.Word()))
	}

	serr := emu.snapshot()
	if err == nil {
		err = serr
	}

	return
}
