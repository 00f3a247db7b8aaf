package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_WordOperations(t *testing.T) {
	assert := assert.New(t)

	mem := New(10)
	mem.SetWord(8, 0x4243)

	assert.Equal(uint16(0x4243), mem.GetWord(8))
	assert.Equal(byte(0x42), mem.GetByte(8), "most significant byte first")
	assert.Equal(byte(0x43), mem.GetByte(9))
}

func TestMemory_ByteOperations(t *testing.T) {
	assert := assert.New(t)

	mem := New(10)
	mem.SetByte(8, 0x42)

	assert.Equal(byte(0x42), mem.GetByte(8))
}

func TestMemory_ZeroInitialized(t *testing.T) {
	assert := assert.New(t)

	mem := New(16)
	for offset := range 16 {
		assert.Equal(byte(0), mem.GetByte(offset))
	}
	assert.Equal(16, mem.ByteLength())
}

func TestMemory_FromBytes_Copies(t *testing.T) {
	assert := assert.New(t)

	image := []byte{0x10, 0x12, 0x34}
	mem := FromBytes(image)

	image[0] = 0xff
	assert.Equal(byte(0x10), mem.GetByte(0), "memory owns its buffer")
	assert.Equal(uint16(0x1234), mem.GetWord(1))
}

func TestMemory_Peek(t *testing.T) {
	assert := assert.New(t)

	mem := New(8)
	mem.SetWord(2, 0x1234)

	data := mem.Peek(2, 4)
	assert.Equal([]byte{0x12, 0x34, 0, 0}, data)

	data[0] = 0xff
	assert.Equal(byte(0x12), mem.GetByte(2), "peek returns a copy")
}

func TestMemory_ByteOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := New(10)
	assert.Panics(func() { mem.GetByte(10) })
	assert.Panics(func() { mem.SetByte(10, 0x42) })
	assert.NotPanics(func() { mem.SetByte(9, 0x42) })
}

func TestMemory_WordOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := New(10)
	assert.Panics(func() { mem.GetWord(9) }, "second byte would be past the end")
	assert.Panics(func() { mem.SetWord(9, 0x4243) })
	assert.NotPanics(func() { mem.SetWord(8, 0x4243) })
}

func TestMemory_PeekOutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := New(10)
	assert.Panics(func() { mem.Peek(8, 3) }, "no bounds relaxation for inspection")
	assert.NotPanics(func() { mem.Peek(8, 2) })
}

func TestMemory_OutOfBoundsError(t *testing.T) {
	assert := assert.New(t)

	mem := New(4)

	defer func() {
		fault := recover()
		assert.NotNil(fault)

		err, ok := fault.(ErrOutOfBounds)
		assert.True(ok)
		assert.Equal(7, err.Offset)
		assert.Equal(4, err.Size)
	}()

	mem.GetByte(7)
}
