// Package maincmd wires Akarin's CLI (spec.md §6) on top of
// github.com/mna/mainer, adapted from the teacher's internal/maincmd. Unlike
// the teacher's subcommand dispatch (parse/resolve/tokenize via a
// reflection-built command table), Akarin's CLI is flag-only: one input
// file (or stdin) in, one of four output forms out. There is no command
// table to build, so this package is a single Cmd rather than a family of
// per-command files.
package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"github.com/YuukiARIA/akarin/lang/ast"
	"github.com/YuukiARIA/akarin/lang/codegen"
	"github.com/YuukiARIA/akarin/lang/diag"
	"github.com/YuukiARIA/akarin/lang/emit"
	"github.com/YuukiARIA/akarin/lang/parser"
)

const binName = "akarin"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [options] [input-file]
Run '%[1]s -h' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [options] [input-file]

Compiles a small imperative language to Whitespace. Reads the named
input file, or standard input if none is given.

Valid options are:
       -h   Print this help and exit.
       -s   Emit a symbolic S/T/L listing instead of real whitespace.
       -p   Emit a pseudo-mnemonic listing instead of real whitespace.
       -d   Pretty-print the parsed AST instead of generating code.
`, binName)
)

// Cmd holds the parsed flags and positional arguments of one invocation.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help     bool `flag:"h"`
	Symbolic bool `flag:"s"`
	Pseudo   bool `flag:"p"`
	DumpAST  bool `flag:"d"`

	args []string
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

// Validate enforces the CLI's shape: at most one input file, at most one of
// -s/-p/-d.
func (c *Cmd) Validate() error {
	if c.Help {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("at most one input file may be given")
	}
	outputModes := 0
	for _, set := range []bool{c.Symbolic, c.Pseudo, c.DumpAST} {
		if set {
			outputModes++
		}
	}
	if outputModes > 1 {
		return fmt.Errorf("-s, -p and -d are mutually exclusive")
	}
	return nil
}

// Main runs the compiler end to end, per spec.md §6's exit-status contract:
// 0 on success, 1 if any error was reported or the input file could not be
// opened.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	}

	src, err := c.readSource(stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "error: %s\n", err)
		return mainer.Failure
	}

	if err := c.run(src, stdio); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

func (c *Cmd) readSource(stdio mainer.Stdio) ([]byte, error) {
	if len(c.args) == 1 {
		return os.ReadFile(c.args[0])
	}
	return io.ReadAll(stdio.Stdin)
}

// run parses, optionally dumps the AST, otherwise generates code and emits
// it in the selected output form. Output is only written once both the
// parser and the generator report zero errors (spec.md §7).
func (c *Cmd) run(src []byte, stdio mainer.Stdio) error {
	prog, p := parser.ParseProgram(src)

	if c.DumpAST {
		ast.Dump(stdio.Stdout, prog)
		printDiagnostics(stdio.Stderr, p.Errors())
		if p.ErrorCount() > 0 {
			return fmt.Errorf("%d error(s)", p.ErrorCount())
		}
		return nil
	}

	instrs, g := codegen.Generate(prog)
	printDiagnostics(stdio.Stderr, p.Errors())
	printDiagnostics(stdio.Stderr, g.Errors())
	if n := p.ErrorCount() + g.ErrorCount(); n > 0 {
		return fmt.Errorf("%d error(s)", n)
	}

	em := c.newEmitter(stdio.Stdout)
	for _, in := range instrs {
		if err := em.Emit(in); err != nil {
			return err
		}
	}
	return em.End()
}

func (c *Cmd) newEmitter(w io.Writer) emit.Emitter {
	switch {
	case c.Symbolic:
		return emit.NewSymbolic(w, false)
	case c.Pseudo:
		return emit.NewPseudo(w)
	default:
		return emit.NewWhitespace(w, false)
	}
}

func printDiagnostics(w io.Writer, errs []*diag.Error) {
	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
}
