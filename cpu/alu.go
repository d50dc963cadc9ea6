package cpu

// Alu is the arithmetic/logic unit. It holds no state; every operation
// takes and returns signed words and wraps at 20 bits.
//
// The bitwise operations act on the 20-bit unsigned patterns of their
// operands and the result is reinterpreted as signed.
type Alu struct{}

// Add returns a + b.
func (Alu) Add(a, b int) int {
	return ToSigned((ToUnsigned(a) + ToUnsigned(b)) & WORD_MASK)
}

// Sub returns a - b.
func (Alu) Sub(a, b int) int {
	return ToSigned((ToUnsigned(a) - ToUnsigned(b)) & WORD_MASK)
}

// And returns a & b.
func (Alu) And(a, b int) int {
	return ToSigned(ToUnsigned(a) & ToUnsigned(b))
}

// Or returns a | b.
func (Alu) Or(a, b int) int {
	return ToSigned(ToUnsigned(a) | ToUnsigned(b))
}

// Xor returns a ^ b.
func (Alu) Xor(a, b int) int {
	return ToSigned(ToUnsigned(a) ^ ToUnsigned(b))
}

// Not returns the one's complement of a.
func (Alu) Not(a int) int {
	return ToSigned(^ToUnsigned(a) & WORD_MASK)
}
