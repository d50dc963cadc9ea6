package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction class held in bits [16,20) of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LDA = Opcode(0x1) // LDA
	OP_STA = Opcode(0x2) // STA
	OP_ADD = Opcode(0x3) // ADD
	OP_SUB = Opcode(0x4) // SUB
	OP_AND = Opcode(0x5) // AND
	OP_OR  = Opcode(0x6) // OR
	OP_NOT = Opcode(0x7) // NOT
	OP_XOR = Opcode(0x8) // XOR
	OP_INP = Opcode(0x9) // INP
	OP_OUT = Opcode(0xa) // OUT
	OP_HLT = Opcode(0xb) // HLT
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"LDA": OP_LDA,
	"STA": OP_STA,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"AND": OP_AND,
	"OR":  OP_OR,
	"NOT": OP_NOT,
	"XOR": OP_XOR,
	"INP": OP_INP,
	"OUT": OP_OUT,
	"HLT": OP_HLT,
}

// Valid returns true if the opcode is one the control unit can execute.
func (op Opcode) Valid() bool {
	return op >= OP_LDA && op <= OP_HLT
}

// Addressed returns true if the opcode reads or writes memory at its operand.
func (op Opcode) Addressed() bool {
	switch op {
	case OP_LDA, OP_STA, OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR:
		return true
	}
	return false
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Valid   bool   // Set when the latch holds an instruction.
	Opcode  Opcode // Instruction class.
	Operand int    // 16-bit address or argument.
}

// MakeDecoded decodes an instruction word into a valid Instruction.
func MakeDecoded(word Word) (inst Instruction) {
	inst.Valid = true
	inst.Opcode, inst.Operand = word.Decode()
	return
}

// Word packs the instruction back into an instruction word.
func (inst Instruction) Word() Word {
	return MakeInstruction(inst.Opcode, inst.Operand)
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	if !inst.Valid {
		return "-"
	}
	if inst.Opcode.Addressed() || inst.Operand != 0 {
		return fmt.Sprintf("%v %d", inst.Opcode, inst.Operand)
	}
	return inst.Opcode.String()
}
