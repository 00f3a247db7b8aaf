package cpu

// The stack occupies the high end of main memory and grows toward lower
// addresses, one word at a time. push and pop are the only primitives that
// touch the frame size accounting.

// push writes a word at the stack pointer and opens the next slot below it.
func (cpu *Cpu) push(value uint16) {
	stackPointer := cpu.getRegister(REG_SP)
	cpu.memory.SetWord(int(stackPointer), value)
	cpu.setRegister(REG_SP, stackPointer-2)
	cpu.frameSize += 2
}

// pop reclaims the slot above the stack pointer and reads its word. The word
// itself is not erased.
func (cpu *Cpu) pop() uint16 {
	next := cpu.getRegister(REG_SP) + 2
	cpu.setRegister(REG_SP, next)
	cpu.frameSize -= 2

	return cpu.memory.GetWord(int(next))
}

// pushState saves the caller ahead of a subroutine call: the eight general
// purpose registers, the return address, and the size of the frame being
// saved. The frame pointer then marks the saved frame, and the callee starts
// a fresh frame of zero bytes.
func (cpu *Cpu) pushState() {
	for reg := REG_R1; reg <= REG_R8; reg++ {
		cpu.push(cpu.getRegister(reg))
	}

	// ip already points past the call operands; this is the return address.
	cpu.push(cpu.getRegister(REG_IP))

	// +2 accounts for the frame size word itself.
	cpu.push(uint16(cpu.frameSize + 2))

	cpu.setRegister(REG_FP, cpu.getRegister(REG_SP))
	cpu.frameSize = 0
}

// popState unwinds the saved frame on return: rewinds the stack pointer to
// the frame, restores the return address and the general purpose registers in
// reverse push order, then discards the argument words the caller declared
// through the argument count sitting below the frame.
func (cpu *Cpu) popState() {
	frameBase := cpu.getRegister(REG_FP)
	cpu.setRegister(REG_SP, frameBase)

	// Keeps the next pop well formed even when the saved frame is empty.
	cpu.frameSize = 2
	frameSize := cpu.pop()
	cpu.frameSize = int(frameSize)

	cpu.setRegister(REG_IP, cpu.pop())

	for reg := REG_R8; reg >= REG_R1; reg-- {
		cpu.setRegister(reg, cpu.pop())
	}

	argumentCount := cpu.pop()
	for range int(argumentCount) {
		cpu.pop()
	}

	cpu.setRegister(REG_FP, frameBase+frameSize)
}
