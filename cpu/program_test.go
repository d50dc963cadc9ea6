package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 2, Ip: 0, Words: []string{"INP"}, Code: MakeInstruction(OP_INP, 0)},
			{LineNo: 3, Ip: 1, Words: []string{"OUT"}, Code: MakeInstruction(OP_OUT, 0)},
			{LineNo: 5, Ip: 2, Words: []string{"HLT"}, Code: MakeInstruction(OP_HLT, 0)},
		},
	}

	for ip, lineno := range []int{2, 3, 5} {
		line := prog.Debug(ip)
		assert.NotNil(line)
		if line != nil {
			assert.Equal(lineno, line.LineNo)
		}
	}
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{LineNo: 1, Ip: 0, Words: []string{"HLT"}, Code: MakeInstruction(OP_HLT, 0)},
		},
	}

	assert.Nil(prog.Debug(-1))
	assert.Nil(prog.Debug(1))
	assert.Nil(prog.Debug(VARIABLE_TOP))
	assert.Nil((&Program{}).Debug(0))
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("DAT x 5\nDAT y -7\nLDA x\nSUB y\nOUT\nHLT\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	image := prog.Binary()
	assert.Equal(RAM_SIZE, len(image))

	expected := make([]Word, RAM_SIZE)
	expected[0] = MakeInstruction(OP_LDA, 99)
	expected[1] = MakeInstruction(OP_SUB, 98)
	expected[2] = MakeInstruction(OP_OUT, 0)
	expected[3] = MakeInstruction(OP_HLT, 0)
	expected[98] = ToUnsigned(-7)
	expected[99] = 5
	assert.Equal(expected, image)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []Line{
			{Ip: 0, Code: 0x90000},
			{Ip: 1, Code: 0xa0000},
			{Ip: 2, Code: 0xb0000},
		},
	}

	var ips []int
	for ip := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, ips)
}

func TestProgram_Symbols(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Variables: map[string]int{"c": 97, "a": 99, "b": 98},
	}

	var names []string
	var addrs []int
	for name, addr := range prog.Symbols() {
		names = append(names, name)
		addrs = append(addrs, addr)
	}
	assert.Equal([]string{"a", "b", "c"}, names)
	assert.Equal([]int{99, 98, 97}, addrs)
}
