package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBit_Set(t *testing.T) {
	assert := assert.New(t)

	var b Bit
	b.Set(1)
	assert.Equal(Bit(1), b)
	b.Set(2)
	assert.Equal(Bit(0), b)
	b.Set(-1)
	assert.Equal(Bit(1), b)
	assert.Equal(Bit(1), MakeBit(0xff))
}

func TestWord_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for v := WORD_MIN; v <= WORD_MAX; v++ {
		if ToSigned(ToUnsigned(v)) != v {
			assert.Equal(v, ToSigned(ToUnsigned(v)))
			break
		}
	}
}

func TestWord_ToUnsigned(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value    int
		expected Word
	}{
		{0, 0},
		{1, 1},
		{-1, 0xfffff},
		{WORD_MAX, 0x7ffff},
		{WORD_MIN, 0x80000},
		{1 << 20, 0},
		{(1 << 20) + 5, 5},
		{-(1 << 20) - 1, 0xfffff},
		{-3 * (1 << 20), 0},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, ToUnsigned(entry.value), "%d", entry.value)
	}
}

func TestWord_ToSigned(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, ToSigned(0))
	assert.Equal(WORD_MAX, ToSigned(0x7ffff))
	assert.Equal(WORD_MIN, ToSigned(0x80000))
	assert.Equal(-1, ToSigned(0xfffff))
	// Bits above the word width are ignored.
	assert.Equal(5, ToSigned(0x100005))
	assert.Equal(-1, Word(0xfffff).Signed())
}

func TestWord_Bits(t *testing.T) {
	assert := assert.New(t)

	w := Word(0x80005)
	bits := w.Bits()
	assert.Equal(Bit(1), bits[0])
	assert.Equal(Bit(0), bits[1])
	assert.Equal(Bit(1), bits[2])
	assert.Equal(Bit(1), bits[19])
	assert.Equal(w, WordFromBits(bits))

	for n := range WORD_BITS {
		single := Word(1) << n
		assert.Equal(Bit(1), single.Bit(n))
		assert.Equal(single, WordFromBits(single.Bits()))
	}
}

func TestWord_Instruction(t *testing.T) {
	assert := assert.New(t)

	w := MakeInstruction(OP_ADD, 98)
	assert.Equal(Word(0x30062), w)

	op, operand := w.Decode()
	assert.Equal(OP_ADD, op)
	assert.Equal(98, operand)

	// Operand is truncated to 16 bits.
	w = MakeInstruction(OP_LDA, 0x12345)
	assert.Equal(Word(0x12345), w)
	op, operand = w.Decode()
	assert.Equal(OP_LDA, op)
	assert.Equal(0x2345, operand)

	// High bits beyond the word are ignored.
	op, operand = Word(0xfb0007).Decode()
	assert.Equal(OP_HLT, op)
	assert.Equal(7, operand)
}

func FuzzWord(f *testing.F) {
	f.Add(0)
	f.Add(-1)
	f.Add(WORD_MAX)
	f.Add(WORD_MIN)
	f.Add(1 << 40)

	f.Fuzz(func(t *testing.T, value int) {
		assert := assert.New(t)

		signed := ToSigned(ToUnsigned(value))
		assert.GreaterOrEqual(signed, WORD_MIN)
		assert.LessOrEqual(signed, WORD_MAX)
		// Congruent modulo 2^20.
		assert.Equal(0, ((value-signed)%(1<<WORD_BITS)+(1<<WORD_BITS))%(1<<WORD_BITS))

		if value >= WORD_MIN && value <= WORD_MAX {
			assert.Equal(value, signed)
		}
	})
}
