// Package emit implements Akarin's output stage: turning a flat instruction
// list into one of three textual/binary forms (spec.md §4.4). Grounded on
// original_source/src/emitter.c's emitter_t capability interface
// (emit/end function pointers dispatched over a small set of concrete
// emitters) and on the teacher's lang/compiler/asm.go for the Go idiom of a
// small writer-wrapping struct with write/writef helpers and a sticky error
// field, used here for the pseudo-assembly emitter.
package emit

import "github.com/YuukiARIA/akarin/lang/inst"

// Emitter is the capability every output form implements: append one
// instruction, and signal no more will come.
type Emitter interface {
	Emit(in inst.Instruction) error
	End() error
}
