package cpu

const (
	WORD_BITS = 20                   // Width of a machine word.
	WORD_MASK = (1 << WORD_BITS) - 1 // Mask of the unsigned word pattern.
	WORD_SIGN = 1 << (WORD_BITS - 1) // Sign bit of a word.
	WORD_MIN  = -WORD_SIGN           // Most negative signed word.
	WORD_MAX  = WORD_SIGN - 1        // Most positive signed word.

	OPCODE_SHIFT = 16                      // Bit position of the opcode nibble.
	OPCODE_MASK  = 0xf                     // Mask of the opcode nibble.
	OPERAND_MASK = (1 << OPCODE_SHIFT) - 1 // Mask of the operand field.
)

// Bit is a single storage cell. It only ever holds 0 or 1.
type Bit uint8

// MakeBit keeps the low bit of value.
func MakeBit(value int) Bit {
	return Bit(value & 1)
}

// Set stores the low bit of value into the cell.
func (b *Bit) Set(value int) {
	*b = MakeBit(value)
}

// Word is the unsigned 20-bit pattern of a machine word.
type Word uint32

// ToUnsigned wraps any integer into the unsigned word range, modulo 2^20.
func ToUnsigned(value int) Word {
	// Two's complement masking is the same as the modulo for negatives.
	return Word(uint64(value) & WORD_MASK)
}

// ToSigned reinterprets an unsigned word pattern as a two's complement value.
func ToSigned(word Word) int {
	value := int(word & WORD_MASK)
	if value >= WORD_SIGN {
		value -= 1 << WORD_BITS
	}
	return value
}

// Signed returns the two's complement interpretation of the word.
func (w Word) Signed() int {
	return ToSigned(w)
}

// Bit returns bit n of the word.
func (w Word) Bit(n int) Bit {
	return MakeBit(int(w >> n))
}

// Bits returns the cells of the word, low bit first.
func (w Word) Bits() (bits [WORD_BITS]Bit) {
	for n := range WORD_BITS {
		bits[n] = w.Bit(n)
	}
	return
}

// WordFromBits assembles a word from its cells, low bit first.
func WordFromBits(bits [WORD_BITS]Bit) (w Word) {
	for n, bit := range bits {
		w |= Word(bit&1) << n
	}
	return
}

// MakeInstruction packs an opcode and operand into an instruction word.
func MakeInstruction(op Opcode, operand int) Word {
	return (Word(op&OPCODE_MASK) << OPCODE_SHIFT) | Word(operand&OPERAND_MASK)
}

// Decode splits an instruction word into its opcode and operand.
// Bits above the word width are ignored.
func (w Word) Decode() (op Opcode, operand int) {
	op = Opcode((w >> OPCODE_SHIFT) & OPCODE_MASK)
	operand = int(w & OPERAND_MASK)
	return
}
