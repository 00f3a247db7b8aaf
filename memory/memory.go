package memory

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
)

// Memory is a fixed-size byte buffer with byte and big-endian word accessors.
// The length is set at construction and never changes.
type Memory struct {
	inner []byte
}

// New allocates a zero-filled memory of the given size in bytes.
func New(size int) (mem *Memory) {
	return &Memory{
		inner: make([]byte, size),
	}
}

// FromBytes allocates a memory holding a copy of the given image.
func FromBytes(image []byte) (mem *Memory) {
	return &Memory{
		inner: slices.Clone(image),
	}
}

// ByteLength returns the fixed buffer length.
func (mem *Memory) ByteLength() int {
	return len(mem.inner)
}

// GetByte reads the byte at offset.
func (mem *Memory) GetByte(offset int) (value byte) {
	if offset >= len(mem.inner) {
		panic(ErrOutOfBounds{Offset: offset, Width: 1, Size: len(mem.inner)})
	}

	return mem.inner[offset]
}

// SetByte writes the byte at offset.
func (mem *Memory) SetByte(offset int, value byte) {
	if offset >= len(mem.inner) {
		panic(ErrOutOfBounds{Offset: offset, Width: 1, Size: len(mem.inner)})
	}

	mem.inner[offset] = value
}

// GetWord reads the big-endian word at offset and offset+1.
func (mem *Memory) GetWord(offset int) (value uint16) {
	if offset >= len(mem.inner)-1 {
		panic(ErrOutOfBounds{Offset: offset, Width: 2, Size: len(mem.inner)})
	}

	return binary.BigEndian.Uint16(mem.inner[offset:])
}

// SetWord writes the big-endian word at offset and offset+1.
func (mem *Memory) SetWord(offset int, value uint16) {
	if offset >= len(mem.inner)-1 {
		panic(ErrOutOfBounds{Offset: offset, Width: 2, Size: len(mem.inner)})
	}

	binary.BigEndian.PutUint16(mem.inner[offset:], value)
}

// Peek returns a copy of size bytes starting at offset, for inspection only.
// The same bounds policy applies as for the other accessors.
func (mem *Memory) Peek(offset int, size int) (data []byte) {
	if offset+size > len(mem.inner) {
		panic(ErrOutOfBounds{Offset: offset + size - 1, Width: 1, Size: len(mem.inner)})
	}

	return slices.Clone(mem.inner[offset : offset+size])
}

// String returns the buffer contents as hex bytes.
func (mem *Memory) String() (text string) {
	cells := make([]string, 0, len(mem.inner))
	for _, cell := range mem.inner {
		cells = append(cells, fmt.Sprintf("%#02x", cell))
	}

	return "MEMORY: " + strings.Join(cells, ", ")
}
