package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction word.
type Instruction struct {
	Op     Op
	Opcode uint16

	ins *chip8.Instruction
}

// X returns the first register operand.
func (i Instruction) X() uint8 {
	return uint8((i.Opcode & 0x0F00) >> 8)
}

// Y returns the second register operand.
func (i Instruction) Y() uint8 {
	return uint8((i.Opcode & 0x00F0) >> 4)
}

// N returns the low nibble.
func (i Instruction) N() uint8 {
	return uint8(i.Opcode & 0x000F)
}

// KK returns the low byte.
func (i Instruction) KK() uint8 {
	return uint8(i.Opcode & 0x00FF)
}

// Addr returns the 12-bit address operand.
func (i Instruction) Addr() uint16 {
	return i.Opcode & 0x0FFF
}

// Name returns the lowercase mnemonic, or an empty string for words that
// do not decode.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsJump returns true if the instruction transfers control to its address operand.
func (i Instruction) IsJump() bool {
	return i.Op == OpJp || i.Op == OpCall
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	return chip8.SkipInstructions.Contains(i.Name())
}

// String formats the instruction in assembler syntax, for example
// "ld V0, $05". Words that do not decode are formatted as data.
func (i Instruction) String() string {
	if i.ins == nil {
		return fmt.Sprintf(".word $%04X", i.Opcode)
	}

	if params := i.params(); params != "" {
		return fmt.Sprintf("%s %s", i.ins.Name, params)
	}
	return i.ins.Name
}

func (i Instruction) params() string {
	switch i.Op {
	case OpJp, OpCall:
		return fmt.Sprintf("$%03X", i.Addr())
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte:
		return fmt.Sprintf("V%X, $%02X", i.X(), i.KK())
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", i.X(), i.Y())
	case OpShr, OpShl:
		// the operand is read from Vy, so both registers are shown
		return fmt.Sprintf("V%X, V%X", i.X(), i.Y())
	case OpLdI:
		return fmt.Sprintf("I, $%03X", i.Addr())
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X(), i.Y(), i.N())
	case OpAddI:
		return fmt.Sprintf("I, V%X", i.X())
	case OpLdB:
		return fmt.Sprintf("B, V%X", i.X())
	case OpStore:
		return fmt.Sprintf("[I], V%X", i.X())
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", i.X())
	default:
		return "" // cls, ret
	}
}
