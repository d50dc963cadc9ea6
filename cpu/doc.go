// Package cpu implements the accumulator machine and its assembler.
//
// The machine has five 20-bit registers (PC, MAR, MDR, CIR, ACC), a
// 100-word memory, an ALU and a FIFO bus. Every memory access is a bus
// transaction: the address goes out through MAR, and data moves through
// MDR. The control unit runs one instruction at a time through the
// fetch, decode and execute stages.
//
// The assembler reads `MNEMONIC [OPERAND]` and `DAT name literal` lines,
// with `$(...)` compile-time expressions.
package cpu
