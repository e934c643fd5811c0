// Package vm implements the CHIP-8 virtual machine core.
//
// # Machine State
//
// A Machine owns the complete mutable state of one emulated program run:
//
//	0x000-0x1FF: reserved interpreter area (not used by the core)
//	0x200-0xFFF: program image and working memory
//
// plus 16 8-bit registers V0-VF, the index register I, the program counter,
// a 16 entry call stack, the delay and sound timers and a 64x32 monochrome
// frame buffer. VF doubles as the carry, borrow and shift-out flag.
//
// # Execution
//
// Step fetches the big-endian instruction word at the program counter,
// decodes it into an Instruction and executes it. Invalid states such as an
// unaligned program counter, a call stack overflow or an unknown opcode are
// returned as *Fault values; a faulting Step leaves the machine unchanged.
//
// # Usage Example
//
//	m := vm.New()
//	if err := m.Load(image); err != nil {
//		return fmt.Errorf("loading image: %w", err)
//	}
//	m.Reset()
//
//	for range 2000 {
//		if err := m.Step(); err != nil {
//			return fmt.Errorf("executing: %w", err)
//		}
//	}
//	display := m.Display()
//
// # Limitations
//
//   - Timers are passive counters, TickTimers has to be called by the driver
//   - Keypad, random number, timer and font instructions are not implemented
//   - DRW does not report sprite collisions in VF
package vm
