package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/acc20/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"RAM_SIZE":     fmt.Sprintf("%d", RAM_SIZE),
	"VARIABLE_TOP": fmt.Sprintf("%d", VARIABLE_TOP),
	"WORD_BITS":    fmt.Sprintf("%d", WORD_BITS),
	"WORD_MIN":     fmt.Sprintf("%d", WORD_MIN),
	"WORD_MAX":     fmt.Sprintf("%d", WORD_MAX),
}

// Latch is a one-slot holding register between two pipeline stages.
type Latch struct {
	Valid bool
	Word  Word
}

// Cpu is the control unit. It owns every register, the memory, the bus
// and the ALU, and drives the fetch, decode and execute stages.
// Only one instruction is in flight at a time.
type Cpu struct {
	Pc  *Register // Program counter.
	Mar *Register // Memory address register.
	Mdr *Register // Memory data register.
	Cir *Register // Current instruction register.
	Acc *Register // Accumulator.

	Memory Memory
	Bus    Bus
	Alu    Alu

	Fetched Latch       // Output of FETCH, consumed by DECODE.
	Decoded Instruction // Output of DECODE, consumed by EXECUTE.

	Input  Channel // Source for INP.
	Output Channel // Sink for OUT.

	Ticks int // Completed ticks.

	observer Observer
	outcome  Outcome // Sticky HALT or FAULT.
}

// NewCpu creates a control unit that reports state changes to obs.
// obs may be nil.
func NewCpu(obs Observer) (cpu *Cpu) {
	cpu = &Cpu{
		Pc:       NewRegister("PC", obs),
		Mar:      NewRegister("MAR", obs),
		Mdr:      NewRegister("MDR", obs),
		Cir:      NewRegister("CIR", obs),
		Acc:      NewRegister("ACC", obs),
		observer: obs,
	}
	cpu.Memory.observer = obs

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Registers returns the register file in display order.
func (cpu *Cpu) Registers() []*Register {
	return []*Register{cpu.Pc, cpu.Mar, cpu.Mdr, cpu.Cir, cpu.Acc}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for _, reg := range cpu.Registers() {
		text += fmt.Sprintf("% 4s: %020b %8d\n", reg.Name, uint32(reg.Word()), reg.Get())
	}

	fetched := "-"
	if cpu.Fetched.Valid {
		fetched = fmt.Sprintf("%05X", uint32(cpu.Fetched.Word))
	}
	text += fmt.Sprintf("% 4s: %v\n", "F", fetched)
	text += fmt.Sprintf("% 4s: %v\n", "D", cpu.Decoded.String())

	return
}

// Reset the CPU state.
// - Clears the registers, memory, bus and latches.
// - Zeros the tick counter.
// - Rewinds the I/O channels.
// No events are emitted.
func (cpu *Cpu) Reset() {
	for _, reg := range cpu.Registers() {
		reg.data = 0
	}

	cpu.Memory.Reset()
	cpu.Bus.Reset()
	cpu.Fetched = Latch{}
	cpu.Decoded = Instruction{}
	cpu.outcome = Outcome{}
	cpu.Ticks = 0

	for _, channel := range []Channel{cpu.Input, cpu.Output} {
		if channel != nil {
			channel.Rewind()
		}
	}
}

// Outcome returns the sticky terminal outcome, or CONTINUE while running.
func (cpu *Cpu) Outcome() Outcome {
	return cpu.outcome
}

// memoryRead performs the address/response transaction for addr and
// leaves the response in MDR.
func (cpu *Cpu) memoryRead(addr int) (value int, err error) {
	cpu.Mar.Set(addr)
	cpu.Mar.WriteToBus(&cpu.Bus)

	err = cpu.Memory.Respond(&cpu.Bus)
	if err != nil {
		return
	}

	err = cpu.Mdr.ReadFromBus(&cpu.Bus)
	if err != nil {
		return
	}

	value = cpu.Mdr.Get()
	return
}

// memoryWrite performs the address/value transaction storing value at addr.
func (cpu *Cpu) memoryWrite(addr int, value int) (err error) {
	cpu.Mar.Set(addr)
	cpu.Mdr.Set(value)
	cpu.Mar.WriteToBus(&cpu.Bus)
	cpu.Mdr.WriteToBus(&cpu.Bus)

	err = cpu.Memory.Accept(&cpu.Bus)
	return
}

// drained checks that a stage left nothing in transit on the bus.
// Anything left over is dropped.
func (cpu *Cpu) drained() (err error) {
	if cpu.Bus.Len() != 0 {
		err = ErrBusProtocol
		cpu.Bus.Reset()
	}
	return
}

// Fetch loads the instruction at PC into the fetched latch and
// advances PC.
func (cpu *Cpu) Fetch() (err error) {
	defer func() {
		protocol := cpu.drained()
		if err == nil {
			err = protocol
		}
		if err != nil {
			err = errors.Join(ErrFetch, err)
		}
	}()

	value, err := cpu.memoryRead(cpu.Pc.Get())
	if err != nil {
		return
	}

	cpu.Pc.Set(cpu.Pc.Get() + 1)
	cpu.Fetched = Latch{Valid: true, Word: ToUnsigned(value)}

	return
}

// Decode splits the fetched word into opcode and operand.
// It does nothing if the fetched latch is empty.
func (cpu *Cpu) Decode() (err error) {
	if !cpu.Fetched.Valid {
		return
	}

	cpu.Cir.Set(cpu.Fetched.Word.Signed())
	cpu.Decoded = MakeDecoded(cpu.Cir.Word())
	cpu.Fetched = Latch{}

	return
}

// Execute dispatches the decoded instruction.
// It does nothing and continues if the decoded latch is empty.
func (cpu *Cpu) Execute() (outcome Outcome) {
	if !cpu.Decoded.Valid {
		return
	}

	inst := cpu.Decoded
	cpu.Decoded = Instruction{}

	defer func() {
		if outcome.Faulted() {
			outcome.Err = errors.Join(ErrExecute, outcome.Err)
		}
	}()

	if !inst.Opcode.Valid() {
		outcome = makeFault(ErrOpcode(inst.Word()))
		return
	}

	var err error
	switch inst.Opcode {
	case OP_LDA:
		var value int
		value, err = cpu.memoryRead(inst.Operand)
		if err != nil {
			break
		}
		cpu.Acc.Set(value)
	case OP_STA:
		err = cpu.memoryWrite(inst.Operand, cpu.Acc.Get())
	case OP_ADD:
		err = cpu.combine(inst.Operand, cpu.Alu.Add)
	case OP_SUB:
		err = cpu.combine(inst.Operand, cpu.Alu.Sub)
	case OP_AND:
		err = cpu.combine(inst.Operand, cpu.Alu.And)
	case OP_OR:
		err = cpu.combine(inst.Operand, cpu.Alu.Or)
	case OP_XOR:
		err = cpu.combine(inst.Operand, cpu.Alu.Xor)
	case OP_NOT:
		cpu.Acc.Set(cpu.Alu.Not(cpu.Acc.Get()))
	case OP_INP:
		err = cpu.input()
	case OP_OUT:
		err = cpu.output()
	case OP_HLT:
		outcome = Outcome{State: HALT}
		return
	}

	protocol := cpu.drained()
	if err == nil {
		err = protocol
	}
	if err != nil {
		outcome = makeFault(err)
	}

	return
}

// combine loads the word at addr and replaces the accumulator with
// op(ACC, word).
func (cpu *Cpu) combine(addr int, op func(a, b int) int) (err error) {
	value, err := cpu.memoryRead(addr)
	if err != nil {
		return
	}

	cpu.Acc.Set(op(cpu.Acc.Get(), value))
	return
}

// input loads the accumulator from the input channel.
func (cpu *Cpu) input() (err error) {
	if cpu.Input == nil {
		err = ErrInputExhausted
		return
	}

	value, err := cpu.Input.Receive()
	if err != nil {
		err = errors.Join(ErrInputExhausted, err)
		return
	}

	notify(cpu.observer, Event{Kind: EVENT_INPUT, Value: ToUnsigned(value)})
	cpu.Acc.Set(value)
	return
}

// output sends the accumulator to the output channel.
func (cpu *Cpu) output() (err error) {
	value := cpu.Acc.Get()

	notify(cpu.observer, Event{Kind: EVENT_OUTPUT, Value: cpu.Acc.Word()})
	if cpu.Output == nil {
		return
	}

	err = cpu.Output.Send(value)
	if err != nil {
		err = errors.Join(ErrOutput, err)
	}
	return
}

// Tick runs one full fetch, decode and execute cycle.
// Once the machine has halted or faulted, Tick returns the same outcome
// without touching any state.
func (cpu *Cpu) Tick() (outcome Outcome) {
	if !cpu.outcome.Continued() {
		return cpu.outcome
	}

	defer func() {
		cpu.Ticks++
		if !outcome.Continued() {
			cpu.outcome = outcome
		}
	}()

	err := cpu.Fetch()
	if err != nil {
		outcome = makeFault(err)
		return
	}

	err = cpu.Decode()
	if err != nil {
		outcome = makeFault(err)
		return
	}

	outcome = cpu.Execute()
	return
}
