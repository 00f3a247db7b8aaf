// Package cpu implements the execution engine of the vm16 machine.
//
// The CPU consists of an instruction pointer, an accumulator, eight general
// purpose registers (r1-r8), a stack pointer and a frame pointer, all held as
// 16-bit words in a register file backed by its own memory instance. The
// fetch-decode-execute cycle interprets a big-endian binary instruction
// stream in main memory, and a downward-growing stack at the high end of
// main memory carries a callee-cleans calling convention with
// self-describing frames.
package cpu
