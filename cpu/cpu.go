package cpu

import (
	"fmt"
	"log"

	"github.com/ekarademir/vm16/memory"
)

// Cpu is the execution engine. It exclusively owns a main memory holding the
// program, data and the stack, a register file backed by a second memory
// instance, and the byte count of the current stack frame.
type Cpu struct {
	Verbose bool // Set to enable verbose execution tracing.

	Ticks int // Executed instruction counter.

	memory    *memory.Memory // Main memory.
	register  *memory.Memory // Register file backing store.
	frameSize int            // Bytes pushed since the most recent call.
}

// New creates a CPU over a pre-populated main memory. Execution starts at
// address zero; the stack and frame pointers start at the last word-aligned
// address, so the stack grows from the high end of memory toward lower
// addresses.
func New(mem *memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		memory:   mem,
		register: memory.New(REGISTER_COUNT * 2),
	}

	bottomOfStack := uint16(mem.ByteLength() - 2)
	cpu.setRegister(REG_SP, bottomOfStack)
	cpu.setRegister(REG_FP, bottomOfStack)

	return
}

// NewFromImage creates a CPU over a copy of the given memory image.
func NewFromImage(image []byte) (cpu *Cpu) {
	return New(memory.FromBytes(image))
}

// Step runs a single fetch-decode-execute cycle.
func (cpu *Cpu) Step() {
	at := cpu.getRegister(REG_IP)

	instruction := InstructionFromByte(cpu.fetch())
	if cpu.Verbose {
		log.Printf("%04x: %v", at, instruction)
	}

	cpu.execute(instruction)
	cpu.Ticks++
}

// StepN runs count cycles.
func (cpu *Cpu) StepN(count int) {
	for range count {
		cpu.Step()
	}
}

// PeekRegister returns the current value of a register.
func (cpu *Cpu) PeekRegister(reg Register) uint16 {
	return cpu.getRegister(reg)
}

// PeekWord returns the main memory word at address.
func (cpu *Cpu) PeekWord(address uint16) uint16 {
	return cpu.memory.GetWord(int(address))
}

// Peek returns a copy of size bytes of main memory starting at address.
func (cpu *Cpu) Peek(address uint16, size int) []byte {
	return cpu.memory.Peek(int(address), size)
}

// PeekStack returns the live stack region, from the current stack pointer up
// to the top of memory.
func (cpu *Cpu) PeekStack() []byte {
	start := int(cpu.getRegister(REG_SP))

	return cpu.memory.Peek(start, cpu.memory.ByteLength()-start)
}

// MemoryLength returns the main memory length in bytes.
func (cpu *Cpu) MemoryLength() int {
	return cpu.memory.ByteLength()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for reg := REG_IP; reg <= REG_FP; reg++ {
		text += fmt.Sprintf("% 4v: 0x%04X\n", reg, cpu.getRegister(reg))
	}
	text += fmt.Sprintf("stack: [% 02X]\n", cpu.PeekStack())

	return
}

// getRegister reads a register through the register file mapping.
func (cpu *Cpu) getRegister(reg Register) uint16 {
	return cpu.register.GetWord(reg.address())
}

// setRegister writes a register through the register file mapping.
func (cpu *Cpu) setRegister(reg Register, value uint16) {
	cpu.register.SetWord(reg.address(), value)
}

// fetch reads the next instruction stream byte and advances ip by one.
func (cpu *Cpu) fetch() byte {
	next := cpu.getRegister(REG_IP)
	cpu.setRegister(REG_IP, next+1)

	return cpu.memory.GetByte(int(next))
}

// fetch16 reads the next big-endian instruction stream word and advances ip
// by two.
func (cpu *Cpu) fetch16() uint16 {
	next := cpu.getRegister(REG_IP)
	cpu.setRegister(REG_IP, next+2)

	return cpu.memory.GetWord(int(next))
}

// fetchRegisterIndex reads one operand byte reduced modulo the register
// count. A malformed operand byte decodes to some valid register, never to a
// fault.
func (cpu *Cpu) fetchRegisterIndex() Register {
	return Register(cpu.fetch() % REGISTER_COUNT)
}

// execute runs a single decoded instruction. Operand bytes follow the opcode
// in the instruction stream, big-endian. OP_NOOP consumes no operand bytes
// and changes no state.
func (cpu *Cpu) execute(instruction Instruction) {
	switch instruction {
	case OP_MOV_LIT_REG:
		value := cpu.fetch16()
		to := RegisterFromByte(cpu.fetch())
		cpu.setRegister(to, value)
	case OP_MOV_REG_REG:
		from := RegisterFromByte(cpu.fetch())
		to := RegisterFromByte(cpu.fetch())
		cpu.setRegister(to, cpu.getRegister(from))
	case OP_MOV_MEM_REG:
		address := cpu.fetch16()
		to := RegisterFromByte(cpu.fetch())
		cpu.setRegister(to, cpu.memory.GetWord(int(address)))
	case OP_MOV_REG_MEM:
		from := RegisterFromByte(cpu.fetch())
		address := cpu.fetch16()
		cpu.memory.SetWord(int(address), cpu.getRegister(from))
	case OP_ADD_REG_REG:
		// Raw register file addressing; equivalent to the indexed
		// accessors for well-formed operand bytes. The sum wraps on
		// 16-bit overflow.
		register1 := cpu.fetch()
		register2 := cpu.fetch()
		value1 := cpu.register.GetWord(int(register1) * 2)
		value2 := cpu.register.GetWord(int(register2) * 2)
		cpu.setRegister(REG_ACC, value1+value2)
	case OP_JMP_NOT_EQ:
		value := cpu.fetch16()
		address := cpu.fetch16()
		if value != cpu.getRegister(REG_ACC) {
			cpu.setRegister(REG_IP, address)
		}
	case OP_PSH_LIT:
		cpu.push(cpu.fetch16())
	case OP_PSH_REG:
		from := cpu.fetchRegisterIndex()
		cpu.push(cpu.getRegister(from))
	case OP_POP:
		to := cpu.fetchRegisterIndex()
		cpu.setRegister(to, cpu.pop())
	case OP_CAL_LIT:
		address := cpu.fetch16()
		cpu.pushState()
		cpu.setRegister(REG_IP, address)
	case OP_CAL_REG:
		from := cpu.fetchRegisterIndex()
		address := cpu.getRegister(from)
		cpu.pushState()
		cpu.setRegister(REG_IP, address)
	case OP_RET:
		cpu.popState()
	case OP_NOOP:
		// Unassigned opcode bytes decode to noop; nothing to do.
	}
}
