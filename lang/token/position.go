package token

import "fmt"

// Position is a 1-based line and column in a single source file. Akarin
// compiles a single translation unit (spec.md §5), so unlike the teacher's
// FileSet/Pos machinery there is no need to track multiple files.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("(line:%d,column:%d)", p.Line, p.Column)
}

// Value carries everything the scanner produces for one token: its kind, the
// raw source text (used for identifiers and diagnostics), the decoded
// integer value (for INTEGER and CHAR literals) and its starting position.
type Value struct {
	Kind   Kind
	Text   string
	Int    int64
	Pos    Position
}
