package vm

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Op identifies an implemented CHIP-8 operation.
type Op int

// Implemented operations.
const (
	OpInvalid Op = iota
	OpCls        // 00E0 CLS
	OpRet        // 00EE RET
	OpJp         // 1nnn JP addr
	OpCall       // 2nnn CALL addr
	OpSeByte     // 3xkk SE Vx, byte
	OpSneByte    // 4xkk SNE Vx, byte
	OpSeReg      // 5xy0 SE Vx, Vy
	OpLdByte     // 6xkk LD Vx, byte
	OpAddByte    // 7xkk ADD Vx, byte
	OpLdReg      // 8xy0 LD Vx, Vy
	OpOr         // 8xy1 OR Vx, Vy
	OpAnd        // 8xy2 AND Vx, Vy
	OpXor        // 8xy3 XOR Vx, Vy
	OpAddReg     // 8xy4 ADD Vx, Vy
	OpSub        // 8xy5 SUB Vx, Vy
	OpShr        // 8xy6 SHR Vx, Vy
	OpSubn       // 8xy7 SUBN Vx, Vy
	OpShl        // 8xyE SHL Vx, Vy
	OpSneReg     // 9xy0 SNE Vx, Vy
	OpLdI        // Annn LD I, addr
	OpDrw        // Dxyn DRW Vx, Vy, nibble
	OpAddI       // Fx1E ADD I, Vx
	OpLdB        // Fx33 LD B, Vx
	OpStore      // Fx55 LD [I], Vx
	OpLoad       // Fx65 LD Vx, [I]
)

// pattern maps an opcode mask and value to an operation.
type pattern struct {
	info chip8.OpcodeInfo
	op   Op
	ins  *chip8.Instruction
}

// patterns maps the first nibble of an instruction word to the patterns that
// share it, ordered from the most specific mask to the least specific one.
// The masks and values are taken from the retrogolib opcode definitions.
var patterns = [16][]pattern{
	0x0: {
		{chip8.Opcode00E0, OpCls, chip8.ClsInst},
		{chip8.Opcode00EE, OpRet, chip8.RetInst},
	},
	0x1: {
		{chip8.Opcode1000, OpJp, chip8.JpInst},
	},
	0x2: {
		{chip8.Opcode2000, OpCall, chip8.CallInst},
	},
	0x3: {
		{chip8.Opcode3000, OpSeByte, chip8.SeInst},
	},
	0x4: {
		{chip8.Opcode4000, OpSneByte, chip8.SneInst},
	},
	0x5: {
		{chip8.Opcode5000, OpSeReg, chip8.SeInst},
	},
	0x6: {
		{chip8.Opcode6000, OpLdByte, chip8.LdInst},
	},
	0x7: {
		{chip8.Opcode7000, OpAddByte, chip8.AddInst},
	},
	0x8: {
		{chip8.Opcode8000, OpLdReg, chip8.LdInst},
		{chip8.Opcode8001, OpOr, chip8.OrInst},
		{chip8.Opcode8002, OpAnd, chip8.AndInst},
		{chip8.Opcode8003, OpXor, chip8.XorInst},
		{chip8.Opcode8004, OpAddReg, chip8.AddInst},
		{chip8.Opcode8005, OpSub, chip8.SubInst},
		{chip8.Opcode8006, OpShr, chip8.ShrInst},
		{chip8.Opcode8007, OpSubn, chip8.SubnInst},
		{chip8.Opcode800E, OpShl, chip8.ShlInst},
	},
	0x9: {
		{chip8.Opcode9000, OpSneReg, chip8.SneInst},
	},
	0xA: {
		{chip8.OpcodeA000, OpLdI, chip8.LdInst},
	},
	0xD: {
		{chip8.OpcodeD000, OpDrw, chip8.DrwInst},
	},
	0xF: {
		{chip8.OpcodeF01E, OpAddI, chip8.AddInst},
		{chip8.OpcodeF033, OpLdB, chip8.LdInst},
		{chip8.OpcodeF055, OpStore, chip8.LdInst},
		{chip8.OpcodeF065, OpLoad, chip8.LdInst},
	},
}

// Decode matches an instruction word against the opcode patterns and
// returns the decoded instruction. It returns false for words that do not
// encode an implemented operation.
func Decode(word uint16) (Instruction, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, p := range patterns[firstNibble] {
		if word&p.info.Mask == p.info.Value {
			return Instruction{Op: p.op, Opcode: word, ins: p.ins}, true
		}
	}
	return Instruction{Opcode: word}, false
}
