// Package diag implements Akarin's diagnostic collection, shared by the
// scanner, parser and code generator (spec.md §7).
//
// The teacher's lang/scanner and lang/parser packages type-alias the
// standard library's go/scanner.ErrorList for this purpose. That type is
// built around go/token.Position (Filename/Offset/Line/Column, multi-file),
// which is a poor fit here: Akarin compiles a single translation unit
// (spec.md §5) addressed by plain line/column pairs, and go/scanner.Error's
// formatting assumes a filename-qualified position. Reusing it would mean
// carrying unused Filename/Offset fields through every diagnostic just to
// get a three-line Add/Sort/Error() — not worth fighting the mismatch for
// (see DESIGN.md). This package reproduces that same small shape (a sortable
// list of positioned errors with a combined Error() string) directly against
// token.Position instead.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YuukiARIA/akarin/lang/token"
)

// Error is a single positioned (or unpositioned) diagnostic.
type Error struct {
	Pos    token.Position
	HasPos bool
	Msg    string
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("error: %s %s", e.Msg, e.Pos)
	}
	return fmt.Sprintf("error: %s", e.Msg)
}

// List collects diagnostics in report order and can format them for
// standard error, one per line, matching spec.md §6.
type List struct {
	errs []*Error
}

// Add records a positioned diagnostic.
func (l *List) Add(pos token.Position, msg string) {
	l.errs = append(l.errs, &Error{Pos: pos, HasPos: true, Msg: msg})
}

// AddNoPos records a diagnostic with no associated source location (e.g.
// "function 'main' is not defined.").
func (l *List) AddNoPos(msg string) {
	l.errs = append(l.errs, &Error{Msg: msg})
}

// Len returns the number of recorded diagnostics.
func (l *List) Len() int { return len(l.errs) }

// Sort orders diagnostics by position (unpositioned ones sort last, in
// report order amongst themselves).
func (l *List) Sort() {
	sort.SliceStable(l.errs, func(i, j int) bool {
		a, b := l.errs[i], l.errs[j]
		if a.HasPos != b.HasPos {
			return a.HasPos
		}
		if a.Pos.Line != b.Pos.Line {
			return a.Pos.Line < b.Pos.Line
		}
		return a.Pos.Column < b.Pos.Column
	})
}

// Err returns nil if the list is empty, otherwise an error whose message is
// every diagnostic joined by newlines.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	lines := make([]string, len(l.errs))
	for i, e := range l.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Errors returns the recorded diagnostics in report order.
func (l *List) Errors() []*Error { return l.errs }
