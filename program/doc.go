// Package program prepares vm16 memory images ahead of execution.
//
// Builder hand-encodes opcode and operand byte sequences into a fixed-size
// image; LoadScript drives a Builder from a Starlark script whose predeclared
// constants are the machine's register and opcode names. The CPU itself never
// sees any of this; it only consumes the finished image. There is no symbolic
// assembly language and no label resolution here.
package program
