package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/acc20/cpu"
)

func load(t *testing.T, text string) (c *cpu.Cpu, prog *cpu.Program) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	assert.NoError(t, err)

	c = cpu.NewCpu(nil)
	for addr, word := range prog.Binary() {
		err = c.Memory.Set(addr, word.Signed())
		assert.NoError(t, err)
	}
	return
}

func TestStatus_Print(t *testing.T) {
	assert := assert.New(t)

	c, prog := load(t, "DAT x 5\nDAT y -7\nLDA y\nHLT\n")

	buf := &bytes.Buffer{}
	st := &Status{Output: buf}

	err := st.Print(c, prog)
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"tick 0 continue",
		"      PC 00000000000000000000        0",
		"     MAR 00000000000000000000        0",
		"     MDR 00000000000000000000        0",
		"     CIR 00000000000000000000        0",
		"     ACC 00000000000000000000        0",
		"       x 00000000000000000101        5",
		"       y 11111111111111111001       -7",
		"",
	}, "\n"), buf.String())

	c.Tick()
	c.Tick()
	buf.Reset()
	err = st.Print(c, prog)
	assert.NoError(err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal("tick 2 halt", lines[0])
	assert.Equal("      PC 00000000000000000010        2", lines[1])
	assert.Equal("     ACC 11111111111111111001       -7", lines[5])
}

func TestStatus_Print_NoProgram(t *testing.T) {
	assert := assert.New(t)

	c := cpu.NewCpu(nil)
	buf := &bytes.Buffer{}
	st := &Status{Output: buf}

	err := st.Print(c, nil)
	assert.NoError(err)
	assert.Equal(6, strings.Count(buf.String(), "\n"))
}

func TestStatus_Print_Color(t *testing.T) {
	assert := assert.New(t)

	c, prog := load(t, "DAT v 1\nSTA 200\n")
	c.Tick()

	buf := &bytes.Buffer{}
	st := &Status{Output: buf, Color: true}

	err := st.Print(c, prog)
	assert.NoError(err)

	text := buf.String()
	assert.Contains(text, "tick 1 "+ansiFault+"fault"+ansiOff+"\n")
	assert.Contains(text, ansiName+"     ACC"+ansiOff+" 00000000000000000000        0\n")
	assert.Contains(text, ansiName+"       v"+ansiOff)
}

func TestStatus_Listing(t *testing.T) {
	assert := assert.New(t)

	_, prog := load(t, "DAT x 5\nLDA x\nOUT\nHLT\n")

	buf := &bytes.Buffer{}
	st := &Status{Output: buf}

	err := st.Listing(prog)
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"00 00010000000001100011 LDA x",
		"01 10100000000000000000 OUT",
		"02 10110000000000000000 HLT",
		"99 00000000000000000101 DAT x 5",
		"",
	}, "\n"), buf.String())
}
