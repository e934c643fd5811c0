package vm

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Execution and load errors. Stack and memory violations reuse the error
// values of the retrogolib CHIP-8 package so that callers can match them
// with errors.Is independent of the emulator in use.
var (
	ErrUnalignedPC       = errors.New("unaligned program counter")
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrImageTooLarge     = errors.New("program image too large")
	ErrStackOverflow     = chip8.ErrStackOverflow
	ErrStackUnderflow    = chip8.ErrStackUnderflow
	ErrMemoryOutOfBounds = chip8.ErrMemoryOutOfBounds
)

// Fault describes an invalid machine state detected while executing an
// instruction. A run can not continue after a fault.
type Fault struct {
	PC     uint16 // address of the faulting instruction
	Opcode uint16 // instruction word, zero if it could not be fetched
	Err    error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("execution fault at $%03X (opcode $%04X): %v", f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// LoadError describes a program image that could not be read or placed
// into memory.
type LoadError struct {
	Path string // source of the image, empty for in-memory images
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading program image: %v", e.Err)
	}
	return fmt.Sprintf("loading program image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
