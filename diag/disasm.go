package diag

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// Disassemble decodes code as a sequence of x86 instructions starting at
// pc, returning one formatted line per instruction. It is a caller-invoked
// sanity check on bytes about to be deposited into a writable region before
// the region transitions to executable — never part of the mandatory
// allocate/protect/call path. mode64 selects 64- vs 32-bit decoding.
//
// This is explicitly not a JIT compiler or a general-purpose disassembler
// product; it exists only so a caller of this library can eyeball what it's
// about to make executable.
func Disassemble(code []byte, pc uint64, mode64 bool) ([]string, error) {
	mode := 32
	if mode64 {
		mode = 64
	}
	var lines []string
	for off := 0; off < len(code); {
		inst, err := x86asm.Decode(code[off:], mode)
		if err != nil {
			return lines, fmt.Errorf("pagemem/diag: decode at +%#x: %w", off, err)
		}
		lines = append(lines, fmt.Sprintf("%#08x: %s", pc+uint64(off), x86asm.GNUSyntax(inst, pc+uint64(off), nil)))
		off += inst.Len
	}
	return lines, nil
}

// String renders lines as a single newline-joined block, for callers that
// just want to log or print the result of Disassemble.
func String(lines []string) string {
	return strings.Join(lines, "\n")
}
