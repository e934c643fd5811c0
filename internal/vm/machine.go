package vm

import "fmt"

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the complete address space.
	MemorySize = 0x1000

	// ProgramStart is the address that program images are loaded to and
	// where execution begins after a reset.
	ProgramStart = 0x200

	// MaxImageSize is the largest program image that fits into memory.
	MaxImageSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// StackDepth is the number of return addresses the call stack can hold.
	StackDepth = 16

	// FlagRegister is the register that receives carry, borrow and shift-out bits.
	FlagRegister = 0xF
)

// Machine holds the state of a CHIP-8 virtual machine. It is not safe for
// concurrent use.
type Machine struct {
	memory  [MemorySize]byte
	v       [RegisterCount]uint8
	i       uint16
	pc      uint16
	stack   [StackDepth]uint16
	sp      int
	delay   uint16
	sound   uint16
	display FrameBuffer
}

// New returns a machine with all state zeroed.
func New() *Machine {
	return &Machine{}
}

// Load clears the memory and copies the program image to ProgramStart.
// Images that do not fit into memory are rejected and leave the memory
// unchanged.
func (m *Machine) Load(image []byte) error {
	if len(image) > MaxImageSize {
		return &LoadError{
			Err: fmt.Errorf("%w: %d bytes exceeds %d bytes of program memory",
				ErrImageTooLarge, len(image), MaxImageSize),
		}
	}

	m.memory = [MemorySize]byte{}
	copy(m.memory[ProgramStart:], image)
	return nil
}

// Reset zeroes registers, timers and the call stack and sets the program
// counter to the program entry point. Memory and display are kept.
func (m *Machine) Reset() {
	m.v = [RegisterCount]uint8{}
	m.i = 0
	m.delay = 0
	m.sound = 0
	m.stack = [StackDepth]uint16{}
	m.sp = 0
	m.pc = ProgramStart
}

// TickTimers decrements the delay and sound timer if they are not zero.
// The driver is expected to call it at a fixed cadence.
func (m *Machine) TickTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// Display returns a copy of the frame buffer.
func (m *Machine) Display() FrameBuffer {
	return m.display
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.i
}

// SP returns the number of return addresses on the call stack.
func (m *Machine) SP() int {
	return m.sp
}

// Register returns the value of register Vx. Only the low nibble of x is used.
func (m *Machine) Register(x uint8) uint8 {
	return m.v[x&0xF]
}

// Registers returns a copy of all general purpose registers.
func (m *Machine) Registers() [RegisterCount]uint8 {
	return m.v
}

// Memory returns the byte at the given address.
func (m *Machine) Memory(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("%w: address $%04X", ErrMemoryOutOfBounds, address)
	}
	return m.memory[address], nil
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint16 {
	return m.delay
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() uint16 {
	return m.sound
}
