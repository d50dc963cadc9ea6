package cpu

import (
	"cmp"
	"iter"
	"slices"
)

// Line is a line of assembled code with its source location and the
// instruction word generated for it.
type Line struct {
	LineNo int      // Source line number.
	Ip     int      // Memory address of the instruction.
	Words  []string // Source words, after expression evaluation.
	Code   Word     // Packed instruction word.
}

// Program is an assembled memory image: instructions from address 0
// upward, and DAT variables from VARIABLE_TOP downward.
type Program struct {
	Lines     []Line
	Variables map[string]int // Variable name to memory address.
	Data      map[int]Word   // Initial variable contents by address.
}

// Debug returns the source line assembled at ip, or nil.
func (prog *Program) Debug(ip int) *Line {
	for n, line := range prog.Lines {
		if line.Ip == ip {
			return &prog.Lines[n]
		}
	}

	return nil
}

// Codes iterates over the instruction words by address.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(ip int, code Word) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Ip, line.Code) {
				return
			}
		}
	}
}

// Binary returns the full RAM image of the program.
func (prog *Program) Binary() (bins []Word) {
	bins = make([]Word, RAM_SIZE)
	for ip, code := range prog.Codes() {
		bins[ip] = code
	}
	for addr, value := range prog.Data {
		bins[addr] = value
	}

	return
}

// Symbols iterates over the variables in allocation order, which is
// descending address order.
func (prog *Program) Symbols() iter.Seq2[string, int] {
	return func(yield func(name string, addr int) bool) {
		names := make([]string, 0, len(prog.Variables))
		for name := range prog.Variables {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			return cmp.Compare(prog.Variables[b], prog.Variables[a])
		})
		for _, name := range names {
			if !yield(name, prog.Variables[name]) {
				return
			}
		}
	}
}
