package emit

import (
	"io"

	"github.com/YuukiARIA/akarin/lang/inst"
	"github.com/YuukiARIA/akarin/lang/label"
)

// opcodePrefixes holds each opcode's fixed S/T/L prefix digits (spec.md
// §3's encoding table), grounded on original_source/src/emitter_ws.c's
// ws_emit switch. Opcodes absent from the map (currently only NOP) have no
// Whitespace encoding.
var opcodePrefixes = map[inst.Opcode]string{
	inst.PUSH:  "SS",
	inst.COPY:  "STS",
	inst.SLIDE: "STL",
	inst.DUP:   "SLS",
	inst.POP:   "SLL",
	inst.SWAP:  "SLT",
	inst.ADD:   "TSSS",
	inst.SUB:   "TSST",
	inst.MUL:   "TSSL",
	inst.DIV:   "TSTS",
	inst.MOD:   "TSTT",
	inst.STORE: "TTS",
	inst.LOAD:  "TTT",
	inst.PUTC:  "TLSS",
	inst.PUTI:  "TLST",
	inst.GETC:  "TLTS",
	inst.GETI:  "TLTT",
	inst.LABEL: "LSS",
	inst.CALL:  "LST",
	inst.JMP:   "LSL",
	inst.JZ:    "LTS",
	inst.JNEG:  "LTT",
	inst.RET:   "LTL",
	inst.HALT:  "LLL",
}

// digitSubst maps a canonical digit ('S', 'T', 'L') to its substitution
// string in the output stream.
type digitSubst struct {
	s, t, l string
}

// wsEmitter is the shared implementation behind both the Whitespace and
// Symbolic emitters (spec.md §4.4: "Symbolic: same as Whitespace but with
// the three characters chosen as the literals 'S', 'T', 'L'"). subst picks
// the output alphabet; strict suppresses the trailing newline End() would
// otherwise add.
type wsEmitter struct {
	w      io.Writer
	subst  digitSubst
	strict bool
	err    error
}

// NewWhitespace returns an emitter producing real Whitespace source:
// space/tab/newline substituted for S/T/L. strict suppresses the trailing
// newline End() would otherwise append, matching a byte-exact binary image.
func NewWhitespace(w io.Writer, strict bool) Emitter {
	return &wsEmitter{w: w, subst: digitSubst{s: " ", t: "\t", l: "\n"}, strict: strict}
}

// NewWhitespaceWith returns a Whitespace emitter with caller-chosen
// substitution strings for S/T/L, for debugging output that needs to stay
// visually distinguishable while keeping the real encoding shape.
func NewWhitespaceWith(w io.Writer, space, tab, newline string, strict bool) Emitter {
	return &wsEmitter{w: w, subst: digitSubst{s: space, t: tab, l: newline}, strict: strict}
}

// NewSymbolic returns an emitter that writes the literal characters
// 'S'/'T'/'L' in place of space/tab/newline, for human inspection.
func NewSymbolic(w io.Writer, strict bool) Emitter {
	return &wsEmitter{w: w, subst: digitSubst{s: "S", t: "T", l: "L"}, strict: strict}
}

func (e *wsEmitter) Emit(in inst.Instruction) error {
	if e.err != nil {
		return e.err
	}
	prefix, ok := opcodePrefixes[in.Op]
	if !ok {
		return nil // NOP has no Whitespace encoding (spec.md §4.4).
	}
	e.writeDigits([]byte(prefix))

	switch {
	case in.Op.HasIntOperand():
		e.writeDigits(signedDigits(in.IntOperand))
	case in.Op.HasLabelOperand():
		e.writeDigits(unsignedDigits(uint64(label.ResolvedID(in.LabelOp))))
	}
	return e.err
}

func (e *wsEmitter) End() error {
	if e.err == nil && !e.strict {
		_, e.err = io.WriteString(e.w, "\n")
	}
	return e.err
}

func (e *wsEmitter) writeDigits(digits []byte) {
	if e.err != nil {
		return
	}
	for _, d := range digits {
		var s string
		switch d {
		case 'S':
			s = e.subst.s
		case 'T':
			s = e.subst.t
		case 'L':
			s = e.subst.l
		}
		if _, err := io.WriteString(e.w, s); err != nil {
			e.err = err
			return
		}
	}
}
