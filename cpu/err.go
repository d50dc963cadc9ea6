package cpu

import (
	"errors"

	"github.com/ezrec/acc20/translate"
)

var f = translate.From

var (
	// Datapath errors
	ErrBusEmpty       = errors.New(f("bus read with no pending write"))
	ErrBusProtocol    = errors.New(f("bus not drained at end of stage"))
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrOutput         = errors.New(f("output failed"))
	ErrFetch          = errors.New(f("fetch"))
	ErrExecute        = errors.New(f("execute"))

	// Assembler errors
	ErrDataSyntax         = errors.New(f("DAT syntax"))
	ErrVariableDuplicate  = errors.New(f("variable duplicated"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrProgramTooLarge    = errors.New(f("program overlaps variables"))
)

type ErrVariableMissing string

func (ev ErrVariableMissing) Error() string {
	return f("variable %v missing", string(ev))
}

// ErrAddress is a memory access outside of the RAM.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of range 0..%d", int(ea), RAM_SIZE-1)
}

func (ea ErrAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrAddress)
	return
}

// ErrOpcode is an instruction word with an undefined opcode.
type ErrOpcode Word

func (eo ErrOpcode) Error() string {
	op, operand := Word(eo).Decode()
	return f("bad opcode 0x%x operand 0x%04x (word 0x%05x)", int(op), operand, uint32(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
