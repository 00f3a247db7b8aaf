package program

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekarademir/vm16/cpu"
)

func TestBuilder_Encoding(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(32)
	bld.MovLitReg(0x1234, cpu.REG_R1)
	bld.MovRegReg(cpu.REG_R1, cpu.REG_R2)
	bld.PshReg(cpu.REG_R2)
	bld.Ret()

	image := bld.Image()
	assert.Equal([]byte{
		0x10, 0x12, 0x34, 0x02,
		0x11, 0x02, 0x03,
		0x18, 0x03,
		0x60,
	}, image[:10])
	assert.Equal(32, len(image), "image keeps the full memory size")
}

func TestBuilder_OrgAndData(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(64)
	bld.Org(0x10)
	bld.Word(0xbeef)
	bld.Byte(0x42, 0x43)

	image := bld.Image()
	assert.Equal([]byte{0xbe, 0xef, 0x42, 0x43}, image[0x10:0x14])
	assert.Equal(byte(0), image[0])
}

func TestBuilder_JmpNotEqOperandOrder(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(16)
	bld.JmpNotEq(0x0003, 0x0100)

	assert.Equal([]byte{0x15, 0x00, 0x03, 0x01, 0x00}, bld.Image()[:5])
}

func TestBuilder_ImageIsACopy(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(8)
	bld.Byte(0x42)

	image := bld.Image()
	image[0] = 0xff

	assert.Equal(byte(0x42), bld.Image()[0])
}

func TestBuilder_FaultsPastImageEnd(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(4)
	bld.Org(0x03)

	assert.Panics(func() { bld.Word(0x1234) })
}

// The built image runs: a program that adds two literals.
func TestBuilder_BuildsRunnableImage(t *testing.T) {
	assert := assert.New(t)

	bld := NewBuilder(64)
	bld.MovLitReg(0x1234, cpu.REG_R1)
	bld.MovLitReg(0xabcd, cpu.REG_R2)
	bld.AddRegReg(cpu.REG_R1, cpu.REG_R2)

	vm := cpu.NewFromImage(bld.Image())
	vm.StepN(3)

	assert.Equal(uint16(0xbe01), vm.PeekRegister(cpu.REG_ACC))
}
