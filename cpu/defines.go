package cpu

import (
	"fmt"
	"iter"
	"maps"
)

var _cpu_defines = map[string]string{
	"REG_IP":  fmt.Sprintf("%d", REG_IP),
	"REG_ACC": fmt.Sprintf("%d", REG_ACC),
	"REG_R1":  fmt.Sprintf("%d", REG_R1),
	"REG_R2":  fmt.Sprintf("%d", REG_R2),
	"REG_R3":  fmt.Sprintf("%d", REG_R3),
	"REG_R4":  fmt.Sprintf("%d", REG_R4),
	"REG_R5":  fmt.Sprintf("%d", REG_R5),
	"REG_R6":  fmt.Sprintf("%d", REG_R6),
	"REG_R7":  fmt.Sprintf("%d", REG_R7),
	"REG_R8":  fmt.Sprintf("%d", REG_R8),
	"REG_SP":  fmt.Sprintf("%d", REG_SP),
	"REG_FP":  fmt.Sprintf("%d", REG_FP),

	"OP_NOOP":        fmt.Sprintf("%#02x", int(OP_NOOP)),
	"OP_MOV_LIT_REG": fmt.Sprintf("%#02x", int(OP_MOV_LIT_REG)),
	"OP_MOV_REG_REG": fmt.Sprintf("%#02x", int(OP_MOV_REG_REG)),
	"OP_MOV_REG_MEM": fmt.Sprintf("%#02x", int(OP_MOV_REG_MEM)),
	"OP_MOV_MEM_REG": fmt.Sprintf("%#02x", int(OP_MOV_MEM_REG)),
	"OP_ADD_REG_REG": fmt.Sprintf("%#02x", int(OP_ADD_REG_REG)),
	"OP_JMP_NOT_EQ":  fmt.Sprintf("%#02x", int(OP_JMP_NOT_EQ)),
	"OP_PSH_LIT":     fmt.Sprintf("%#02x", int(OP_PSH_LIT)),
	"OP_PSH_REG":     fmt.Sprintf("%#02x", int(OP_PSH_REG)),
	"OP_POP":         fmt.Sprintf("%#02x", int(OP_POP)),
	"OP_CAL_LIT":     fmt.Sprintf("%#02x", int(OP_CAL_LIT)),
	"OP_CAL_REG":     fmt.Sprintf("%#02x", int(OP_CAL_REG)),
	"OP_RET":         fmt.Sprintf("%#02x", int(OP_RET)),
}

// Defines yields the named register and opcode constants by name, for program
// scripts and the command line surface.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
