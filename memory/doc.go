// Package memory implements the flat addressable byte store of the vm16
// machine. One instance serves as main memory, a second, much smaller one
// backs the CPU register file.
//
// Words are two bytes, stored big-endian. Every access is bounds checked
// against the fixed buffer length; an out-of-range byte or word address is a
// fatal fault, never a clamped or wrapped one.
package memory
