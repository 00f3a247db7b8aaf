// Package emulator wires a vm16 CPU to a pristine memory image and drives it
// through the CPU's public surface only: stepping, resetting, and read-only
// inspection for presentation.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ekarademir/vm16/cpu"
	"github.com/ekarademir/vm16/internal"
	"github.com/ekarademir/vm16/program"
)

// DEFAULT_MEMORY_SIZE is the default main memory size: the full 16-bit
// address space.
const DEFAULT_MEMORY_SIZE = 256 * 256

var _emulator_defines = map[string]string{
	"DEFAULT_MEMORY_SIZE": fmt.Sprintf("%v", DEFAULT_MEMORY_SIZE),
}

// Emulator state: the pristine program image and the live CPU.
type Emulator struct {
	Verbose  bool // If set, enables verbose execution tracing.
	*cpu.Cpu      // Live CPU over a copy of the image.

	image []byte
}

// New creates an emulator over a memory image. The image is copied; the
// caller's buffer stays untouched by execution.
func New(image []byte) (emu *Emulator) {
	emu = &Emulator{
		image: slices.Clone(image),
	}
	emu.Reset()

	return
}

// NewFromScript creates an emulator from a program-building script.
func NewFromScript(src io.Reader, name string, size int) (emu *Emulator, err error) {
	image, err := program.LoadScript(src, name, size)
	if err != nil {
		return
	}

	emu = New(image)
	return
}

// Defines returns an iterator over all of the named constants.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Reset discards the live CPU and restarts from the pristine image.
func (emu *Emulator) Reset() {
	emu.Cpu = cpu.NewFromImage(emu.image)
	emu.Cpu.Verbose = emu.Verbose
}

// Step runs a single instruction.
func (emu *Emulator) Step() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Step()
}

// StepN runs count instructions.
func (emu *Emulator) StepN(count int) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.StepN(count)
}

// Disassemble renders the instruction at the current instruction pointer,
// with its raw operand bytes.
func (emu *Emulator) Disassemble() string {
	at := emu.PeekRegister(cpu.REG_IP)
	instruction := cpu.InstructionFromByte(emu.Peek(at, 1)[0])

	width := instruction.Width()
	if width == 0 {
		return fmt.Sprintf("%04x: %v", at, instruction)
	}

	return fmt.Sprintf("%04x: %v % 02x", at, instruction, emu.Peek(at+1, width))
}
