package runner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/set"
)

// Disassemble writes a linear listing of the program image as it is placed
// in memory. Targets of jumps and calls are marked with labels.
func Disassemble(image []byte, w io.Writer) error {
	targets := set.New[uint16]()
	for offset := 0; offset+1 < len(image); offset += 2 {
		ins, ok := vm.Decode(uint16(image[offset])<<8 | uint16(image[offset+1]))
		if ok && ins.IsJump() {
			targets.Add(ins.Addr())
		}
	}

	buf := bufio.NewWriter(w)
	for offset := 0; offset < len(image); offset += 2 {
		address := uint16(vm.ProgramStart + offset)
		if targets.Contains(address) {
			fmt.Fprintf(buf, "label_%03X:\n", address)
		}

		if offset+1 >= len(image) {
			fmt.Fprintf(buf, "%03X: %02X    .byte $%02X\n", address, image[offset], image[offset])
			break
		}

		word := uint16(image[offset])<<8 | uint16(image[offset+1])
		ins, _ := vm.Decode(word)
		fmt.Fprintf(buf, "%03X: %04X  %s\n", address, word, ins)
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
