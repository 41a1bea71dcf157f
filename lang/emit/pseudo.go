package emit

import (
	"fmt"
	"io"

	"github.com/YuukiARIA/akarin/lang/inst"
	"github.com/YuukiARIA/akarin/lang/label"
)

// pseudoIndent is the fixed column the CLI's -p flag documents ("8-space
// indent", spec.md §6).
const pseudoIndent = "        "

// pseudoEmitter formats instructions as indented mnemonic text (spec.md
// §4.4: "PUSH 42", "JMP L7", "L3:" with labels flush-left), in the style of
// the teacher's lang/compiler/asm.go Dasm writer: a small struct wrapping an
// io.Writer with write/writef helpers and a sticky error.
type pseudoEmitter struct {
	w   io.Writer
	err error
}

// NewPseudo returns an emitter producing the pseudo-assembly listing.
func NewPseudo(w io.Writer) Emitter {
	return &pseudoEmitter{w: w}
}

func (e *pseudoEmitter) Emit(in inst.Instruction) error {
	switch {
	case in.Op == inst.LABEL:
		e.writef("L%d:\n", label.ResolvedID(in.LabelOp))
	case in.Op.HasLabelOperand():
		e.writef(pseudoIndent+"%s L%d\n", in.Op, label.ResolvedID(in.LabelOp))
	case in.Op.HasIntOperand():
		e.writef(pseudoIndent+"%s %d\n", in.Op, in.IntOperand)
	default:
		e.writef(pseudoIndent+"%s\n", in.Op)
	}
	return e.err
}

func (e *pseudoEmitter) End() error { return e.err }

func (e *pseudoEmitter) writef(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
