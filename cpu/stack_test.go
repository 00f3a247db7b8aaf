package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekarademir/vm16/memory"
)

const TWO_BYTES = 2

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	cpu := New(memory.New(256))
	last := cpu.MemoryLength()

	assert.Equal(uint16(last-2), cpu.getRegister(REG_SP),
		"stack starts at the last word-aligned address")

	cpu.push(0x4243)
	assert.Equal(byte(0x42), cpu.memory.GetByte(last-2))
	assert.Equal(byte(0x43), cpu.memory.GetByte(last-1))
	assert.Equal(2, cpu.frameSize, "stack grew two bytes")
	assert.Equal(uint16(last-4), cpu.getRegister(REG_SP),
		"pointer points at the next empty slot")

	value := cpu.pop()
	assert.Equal(uint16(0x4243), value)
	assert.Equal(0, cpu.frameSize, "stack shrank two bytes")
	assert.Equal(uint16(0x4243), cpu.memory.GetWord(last-2),
		"shrinking the stack does not erase the value")
	assert.Equal(uint16(last-2), cpu.getRegister(REG_SP))
}

func TestStack_PopRestoresPushedValue(t *testing.T) {
	assert := assert.New(t)

	cpu := New(memory.New(64))

	for _, value := range []uint16{0x0000, 0x0001, 0x7fff, 0x8000, 0xffff} {
		before := cpu.getRegister(REG_SP)
		frame := cpu.frameSize

		cpu.push(value)
		assert.Equal(value, cpu.pop())

		assert.Equal(before, cpu.getRegister(REG_SP))
		assert.Equal(frame, cpu.frameSize)
	}
}

func TestStack_PushStatePopState(t *testing.T) {
	assert := assert.New(t)

	cpu := New(memory.New(256))
	last := cpu.MemoryLength()

	cpu.setRegister(REG_R1, 0x1111)
	cpu.setRegister(REG_R2, 0x2222)
	cpu.setRegister(REG_R3, 0x3333)
	cpu.setRegister(REG_R4, 0x4444)
	cpu.setRegister(REG_R5, 0x5555)
	cpu.setRegister(REG_R6, 0x6666)
	cpu.setRegister(REG_R7, 0x7777)
	cpu.setRegister(REG_R8, 0x8888)

	cpu.push(0x4242) // Argument 1 for the subroutine
	cpu.push(0x5252) // Argument 2 for the subroutine
	cpu.push(0x0002) // Number of arguments pushed

	stackPointerOffset :=
		1*TWO_BYTES + // Offset to start the stack
			3*TWO_BYTES // Values pushed so far

	assert.Equal(uint16(last-stackPointerOffset), cpu.getRegister(REG_SP))

	cpu.pushState()

	stackPointerOffset =
		1*TWO_BYTES + // Offset to start the stack
			3*TWO_BYTES + // Values pushed so far
			8*TWO_BYTES + // General purpose registers
			1*TWO_BYTES + // Instruction pointer
			1*TWO_BYTES // Frame size

	assert.Equal(uint16(last-stackPointerOffset), cpu.getRegister(REG_SP),
		"stack pointer is moved by the saved frame")
	assert.Equal(cpu.getRegister(REG_SP), cpu.getRegister(REG_FP),
		"frame pointer marks the saved frame")
	assert.Equal(0, cpu.frameSize, "callee starts a fresh frame")

	stackPointer := int(cpu.getRegister(REG_SP))
	assert.Equal(uint16(0x8888), cpu.memory.GetWord(stackPointer+TWO_BYTES*3),
		"register 8 saved to the stack")
	assert.Equal(uint16(0x4444), cpu.memory.GetWord(stackPointer+TWO_BYTES*7),
		"register 4 saved to the stack")

	// Clobber the caller-saved registers inside the "callee".
	cpu.setRegister(REG_R3, 0xdead)
	cpu.setRegister(REG_R5, 0xbeef)

	cpu.popState()

	stackPointerOffset = 1 * TWO_BYTES

	assert.Equal(uint16(last-stackPointerOffset), cpu.getRegister(REG_SP),
		"stack pointer moved back past the discarded arguments")

	assert.Equal(uint16(0x3333), cpu.getRegister(REG_R3))
	assert.Equal(uint16(0x5555), cpu.getRegister(REG_R5))
	assert.Equal(uint16(0x8888), cpu.getRegister(REG_R8))
}

func TestStack_PopStateZeroSizedFrame(t *testing.T) {
	assert := assert.New(t)

	cpu := New(memory.New(256))

	cpu.push(0x0000) // No arguments
	cpu.setRegister(REG_IP, 0x0040)
	cpu.pushState()

	cpu.popState()

	assert.Equal(uint16(0x0040), cpu.getRegister(REG_IP),
		"return address restored")
	assert.Equal(uint16(cpu.MemoryLength()-2), cpu.getRegister(REG_SP))
}
