package program

import (
	"github.com/ekarademir/vm16/cpu"
	"github.com/ekarademir/vm16/memory"
)

// Builder hand-encodes instructions into a memory image. The cursor starts at
// address zero and advances past every emitted byte; Org repositions it.
// Writing past the image end faults with the memory bounds policy.
type Builder struct {
	memory *memory.Memory
	at     int
}

// NewBuilder creates a builder over a zero-filled image of the given size.
func NewBuilder(size int) (bld *Builder) {
	return &Builder{
		memory: memory.New(size),
	}
}

// Image returns a copy of the built memory image.
func (bld *Builder) Image() (image []byte) {
	return bld.memory.Peek(0, bld.memory.ByteLength())
}

// Org moves the encoding cursor to an absolute address.
func (bld *Builder) Org(address uint16) {
	bld.at = int(address)
}

// Byte emits raw data bytes at the cursor.
func (bld *Builder) Byte(values ...byte) {
	for _, value := range values {
		bld.memory.SetByte(bld.at, value)
		bld.at++
	}
}

// Word emits raw big-endian data words at the cursor.
func (bld *Builder) Word(values ...uint16) {
	for _, value := range values {
		bld.memory.SetWord(bld.at, value)
		bld.at += 2
	}
}

// emit encodes an opcode byte followed by its operand bytes.
func (bld *Builder) emit(instruction cpu.Instruction, operands ...byte) {
	bld.Byte(byte(instruction))
	bld.Byte(operands...)
}

// MovLitReg encodes: to <- value.
func (bld *Builder) MovLitReg(value uint16, to cpu.Register) {
	bld.emit(cpu.OP_MOV_LIT_REG, byte(value>>8), byte(value), byte(to))
}

// MovRegReg encodes: to <- from.
func (bld *Builder) MovRegReg(from, to cpu.Register) {
	bld.emit(cpu.OP_MOV_REG_REG, byte(from), byte(to))
}

// MovMemReg encodes: to <- word at address.
func (bld *Builder) MovMemReg(address uint16, to cpu.Register) {
	bld.emit(cpu.OP_MOV_MEM_REG, byte(address>>8), byte(address), byte(to))
}

// MovRegMem encodes: word at address <- from.
func (bld *Builder) MovRegMem(from cpu.Register, address uint16) {
	bld.emit(cpu.OP_MOV_REG_MEM, byte(from), byte(address>>8), byte(address))
}

// AddRegReg encodes: acc <- register1 + register2.
func (bld *Builder) AddRegReg(register1, register2 cpu.Register) {
	bld.emit(cpu.OP_ADD_REG_REG, byte(register1), byte(register2))
}

// JmpNotEq encodes: ip <- address when value differs from acc.
func (bld *Builder) JmpNotEq(value uint16, address uint16) {
	bld.emit(cpu.OP_JMP_NOT_EQ, byte(value>>8), byte(value), byte(address>>8), byte(address))
}

// PshLit encodes a literal push.
func (bld *Builder) PshLit(value uint16) {
	bld.emit(cpu.OP_PSH_LIT, byte(value>>8), byte(value))
}

// PshReg encodes a register push.
func (bld *Builder) PshReg(from cpu.Register) {
	bld.emit(cpu.OP_PSH_REG, byte(from))
}

// Pop encodes a pop into a register.
func (bld *Builder) Pop(to cpu.Register) {
	bld.emit(cpu.OP_POP, byte(to))
}

// CalLit encodes a subroutine call to a literal address.
func (bld *Builder) CalLit(address uint16) {
	bld.emit(cpu.OP_CAL_LIT, byte(address>>8), byte(address))
}

// CalReg encodes a subroutine call to the address held in a register.
func (bld *Builder) CalReg(from cpu.Register) {
	bld.emit(cpu.OP_CAL_REG, byte(from))
}

// Ret encodes a subroutine return.
func (bld *Builder) Ret() {
	bld.emit(cpu.OP_RET)
}

// Noop encodes an explicit no-operation.
func (bld *Builder) Noop() {
	bld.emit(cpu.OP_NOOP)
}
