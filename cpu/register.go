package cpu

// Register names one slot of the register file.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_IP   = Register(0)  // ip
	REG_ACC  = Register(1)  // acc
	REG_R1   = Register(2)  // r1
	REG_R2   = Register(3)  // r2
	REG_R3   = Register(4)  // r3
	REG_R4   = Register(5)  // r4
	REG_R5   = Register(6)  // r5
	REG_R6   = Register(7)  // r6
	REG_R7   = Register(8)  // r7
	REG_R8   = Register(9)  // r8
	REG_SP   = Register(10) // sp
	REG_FP   = Register(11) // fp
	REG_NONE = Register(12) // none
)

// REGISTER_COUNT is the number of addressable registers. REG_NONE is not one
// of them; it marks the unrecognized remainder of the byte range.
const REGISTER_COUNT = 12

// RegisterFromByte converts a raw operand byte to a register tag. The
// conversion is total: any byte outside the register set yields REG_NONE.
func RegisterFromByte(value byte) Register {
	if value >= REGISTER_COUNT {
		return REG_NONE
	}

	return Register(value)
}

// address returns the register file offset of the register. Each register is
// one word wide. REG_NONE maps just past the file, so touching it faults in
// the backing memory.
func (reg Register) address() int {
	return int(reg) * 2
}
