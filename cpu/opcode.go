package cpu

// Instruction is the opcode tag of one machine instruction.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_NOOP        = Instruction(0x00) // noop
	OP_MOV_LIT_REG = Instruction(0x10) // movlr
	OP_MOV_REG_REG = Instruction(0x11) // movrr
	OP_MOV_REG_MEM = Instruction(0x12) // movrm
	OP_MOV_MEM_REG = Instruction(0x13) // movmr
	OP_ADD_REG_REG = Instruction(0x14) // add
	OP_JMP_NOT_EQ  = Instruction(0x15) // jne
	OP_PSH_LIT     = Instruction(0x17) // pshl
	OP_PSH_REG     = Instruction(0x18) // pshr
	OP_POP         = Instruction(0x1a) // pop
	OP_CAL_LIT     = Instruction(0x5e) // call
	OP_CAL_REG     = Instruction(0x5f) // calr
	OP_RET         = Instruction(0x60) // ret
)

// InstructionFromByte converts a raw opcode byte to an instruction tag. The
// conversion is total: any unassigned byte decodes to OP_NOOP.
func InstructionFromByte(value byte) Instruction {
	switch instruction := Instruction(value); instruction {
	case OP_MOV_LIT_REG,
		OP_MOV_REG_REG,
		OP_MOV_REG_MEM,
		OP_MOV_MEM_REG,
		OP_ADD_REG_REG,
		OP_JMP_NOT_EQ,
		OP_PSH_LIT,
		OP_PSH_REG,
		OP_POP,
		OP_CAL_LIT,
		OP_CAL_REG,
		OP_RET:
		return instruction
	default:
		return OP_NOOP
	}
}

// Width returns the number of operand bytes following the opcode byte.
// Instructions are not self-describing on the wire; a decoder needs this
// mapping to walk an instruction stream.
func (in Instruction) Width() int {
	switch in {
	case OP_MOV_LIT_REG, OP_MOV_REG_MEM, OP_MOV_MEM_REG:
		return 3
	case OP_JMP_NOT_EQ:
		return 4
	case OP_MOV_REG_REG, OP_ADD_REG_REG, OP_PSH_LIT, OP_CAL_LIT:
		return 2
	case OP_PSH_REG, OP_POP, OP_CAL_REG:
		return 1
	default:
		return 0
	}
}
