package vm

import "fmt"

// instructionSize is the size of an instruction word in bytes.
const instructionSize = 2

// Current decodes the instruction at the program counter without executing it.
func (m *Machine) Current() (Instruction, error) {
	word, err := m.fetch(m.pc)
	if err != nil {
		return Instruction{}, err
	}
	ins, ok := Decode(word)
	if !ok {
		return ins, &Fault{PC: m.pc, Opcode: word, Err: ErrUnknownOpcode}
	}
	return ins, nil
}

// Step executes exactly one instruction. On failure a *Fault is returned and
// the machine state is left as it was before the call.
func (m *Machine) Step() error {
	address := m.pc
	word, err := m.fetch(address)
	if err != nil {
		return err
	}

	ins, ok := Decode(word)
	if !ok {
		return &Fault{PC: address, Opcode: word, Err: ErrUnknownOpcode}
	}

	m.pc += instructionSize
	if err := m.execute(ins); err != nil {
		m.pc = address
		return &Fault{PC: address, Opcode: word, Err: err}
	}
	return nil
}

// fetch reads the big-endian instruction word at the given address.
func (m *Machine) fetch(address uint16) (uint16, error) {
	if address%instructionSize != 0 {
		return 0, &Fault{PC: address, Err: ErrUnalignedPC}
	}
	if int(address)+instructionSize > MemorySize {
		return 0, &Fault{
			PC:  address,
			Err: fmt.Errorf("%w: fetching from $%04X", ErrMemoryOutOfBounds, address),
		}
	}
	return uint16(m.memory[address])<<8 | uint16(m.memory[address+1]), nil
}

// checkIndexRange verifies that size bytes starting at I are inside memory.
func (m *Machine) checkIndexRange(size int) error {
	if int(m.i)+size > MemorySize {
		return fmt.Errorf("%w: %d bytes at I=$%04X", ErrMemoryOutOfBounds, size, m.i)
	}
	return nil
}

// execute runs a decoded instruction. The program counter already points to
// the next instruction. All checks happen before any state is modified.
func (m *Machine) execute(ins Instruction) error {
	x, y := ins.X(), ins.Y()

	switch ins.Op {
	case OpCls:
		m.display.Clear()

	case OpRet:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case OpJp:
		m.pc = ins.Addr()

	case OpCall:
		if m.sp >= StackDepth {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.Addr()

	case OpSeByte:
		m.skipIf(m.v[x] == ins.KK())
	case OpSneByte:
		m.skipIf(m.v[x] != ins.KK())
	case OpSeReg:
		m.skipIf(m.v[x] == m.v[y])
	case OpSneReg:
		m.skipIf(m.v[x] != m.v[y])

	case OpLdByte:
		m.v[x] = ins.KK()
	case OpAddByte:
		m.v[x] += ins.KK() // wraps, VF is not affected

	case OpLdReg:
		m.v[x] = m.v[y]
	case OpOr:
		m.v[x] |= m.v[y]
	case OpAnd:
		m.v[x] &= m.v[y]
	case OpXor:
		m.v[x] ^= m.v[y]

	case OpAddReg:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.v[x] = uint8(sum)
		m.v[FlagRegister] = boolToFlag(sum > 0xFF)

	case OpSub:
		noBorrow := m.v[x] >= m.v[y]
		m.v[x] -= m.v[y]
		m.v[FlagRegister] = boolToFlag(noBorrow)

	case OpSubn:
		noBorrow := m.v[y] >= m.v[x]
		m.v[x] = m.v[y] - m.v[x]
		m.v[FlagRegister] = boolToFlag(noBorrow)

	case OpShr:
		carry := m.v[y] & 0x01
		m.v[x] = m.v[y] >> 1
		m.v[FlagRegister] = carry

	case OpShl:
		carry := (m.v[y] >> 7) & 0x01
		m.v[x] = m.v[y] << 1
		m.v[FlagRegister] = carry

	case OpLdI:
		m.i = ins.Addr()

	case OpDrw:
		return m.draw(m.v[x], m.v[y], int(ins.N()))

	case OpAddI:
		m.i += uint16(m.v[x]) // 16-bit wrap, no flag

	case OpLdB:
		if err := m.checkIndexRange(3); err != nil {
			return err
		}
		value := m.v[x]
		m.memory[m.i] = value / 100
		m.memory[m.i+1] = (value % 100) / 10
		m.memory[m.i+2] = value % 10

	case OpStore:
		count := int(x) + 1
		if err := m.checkIndexRange(count); err != nil {
			return err
		}
		copy(m.memory[m.i:], m.v[:count])

	case OpLoad:
		count := int(x) + 1
		if err := m.checkIndexRange(count); err != nil {
			return err
		}
		copy(m.v[:count], m.memory[m.i:])

	default:
		return ErrUnknownOpcode
	}

	return nil
}

// draw XORs an n byte sprite read from memory at I into the frame buffer at
// the given coordinates. Pixels that cross an edge wrap to the opposite side.
// VF is not updated on collision.
func (m *Machine) draw(x, y uint8, rows int) error {
	if err := m.checkIndexRange(rows); err != nil {
		return err
	}

	for row := range rows {
		line := m.memory[int(m.i)+row]
		for col := range 8 {
			if line&(0x80>>col) != 0 {
				m.display.flip(int(x)+col, int(y)+row)
			}
		}
	}
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += instructionSize
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
