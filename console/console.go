// Package console prints the machine state for a human to follow along.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/acc20/cpu"
)

// ansi pens
const (
	ansiOff   = "\x1b[0m"
	ansiName  = "\x1b[1;36m"
	ansiOk    = "\x1b[1;32m"
	ansiFault = "\x1b[1;31m"
	ansiDim   = "\x1b[2m"
)

// Status writes a dump of the registers and variables.
type Status struct {
	Output io.Writer
	Color  bool // If set, decorate with ANSI colour.
}

func (st *Status) pen(ansi string, text string) string {
	if !st.Color {
		return text
	}

	return ansi + text + ansiOff
}

// row formats a single named word.
func (st *Status) row(b *strings.Builder, name string, word cpu.Word) {
	fmt.Fprintf(b, "%v %020b %8d\n", st.pen(ansiName, fmt.Sprintf("%8s", name)), uint32(word), word.Signed())
}

// Print writes the state of c, followed by the variables of prog in
// allocation order. prog may be nil.
func (st *Status) Print(c *cpu.Cpu, prog *cpu.Program) (err error) {
	var b strings.Builder

	outcome := c.Outcome()
	var ansi string
	switch outcome.State {
	case cpu.CONTINUE:
		ansi = ansiDim
	case cpu.HALT:
		ansi = ansiOk
	case cpu.FAULT:
		ansi = ansiFault
	}
	fmt.Fprintf(&b, "tick %d %v\n", c.Ticks, st.pen(ansi, outcome.State.String()))

	for _, reg := range c.Registers() {
		st.row(&b, reg.Name, reg.Word())
	}

	if prog != nil {
		for name, addr := range prog.Symbols() {
			if addr < 0 || addr >= len(c.Memory.Cell) {
				continue
			}
			st.row(&b, name, c.Memory.Cell[addr])
		}
	}

	_, err = io.WriteString(st.Output, b.String())
	return
}

// Listing writes the memory image of prog, one line per used cell.
func (st *Status) Listing(prog *cpu.Program) (err error) {
	var b strings.Builder

	for ip, code := range prog.Codes() {
		var text string
		line := prog.Debug(ip)
		if line != nil {
			text = strings.Join(line.Words, " ")
		}
		fmt.Fprintf(&b, "%v %020b %v\n", st.pen(ansiName, fmt.Sprintf("%02d", ip)), uint32(code), st.pen(ansiDim, text))
	}

	for name, addr := range prog.Symbols() {
		value := prog.Data[addr]
		fmt.Fprintf(&b, "%v %020b %v\n", st.pen(ansiName, fmt.Sprintf("%02d", addr)), uint32(value), st.pen(ansiDim, fmt.Sprintf("DAT %v %d", name, value.Signed())))
	}

	_, err = io.WriteString(st.Output, b.String())
	return
}
