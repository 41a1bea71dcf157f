package ast

import (
	"fmt"
	"io"
	"strings"
)

var unaryOpNames = [...]string{POSITIVE: "+", NEGATIVE: "-", NOT: "!"}
var binaryOpNames = [...]string{
	ADD: "+", SUB: "-", MUL: "*", DIV: "/", MOD: "%",
	EQ: "==", NEQ: "!=", AND: "&", OR: "|",
	LT: "<", LE: "<=", GT: ">", GE: ">=",
}

// Dump writes an indented tree representation of n to w, for the -d flag.
// GROUP nodes render as a bare label line (spec.md §3: a labelled
// passthrough used only for pretty-printing), modeled after
// original_source's node_dump_tree.
func Dump(w io.Writer, n *Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, label(n))
	for _, c := range n.Children {
		dump(w, c, depth+1)
	}
}

func label(n *Node) string {
	switch n.NType {
	case GROUP:
		return n.Name
	case INTEGER:
		return fmt.Sprintf("INTEGER %d", n.Value)
	case IDENT:
		return fmt.Sprintf("IDENT %s", n.Name)
	case UNARY:
		return fmt.Sprintf("UNARY %s", unaryOpNames[n.Uop])
	case BINARY:
		return fmt.Sprintf("BINARY %s", binaryOpNames[n.Bop])
	default:
		return n.NType.String()
	}
}
