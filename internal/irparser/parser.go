package irparser

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"tacfg/internal/ir"
)

var irParser = participle.MustBuild[File](
	participle.Lexer(irLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse reads filename and builds a CFG from its contents, per the grammar
// of spec §6. A syntax error, a bad literal or an out-of-order block label
// is returned as a wrapped error naming the offending file, so a CLI caller
// can print it and exit non-zero (spec §7). A branch to a label with no
// block, or an instruction after a block's branch, is not reported as an
// error: it panics in ir's construction checks (CFG.Block, BasicBlock.Append).
func Parse(filename string) (*ir.CFG, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "irparser: reading %s", filename)
	}
	return ParseString(filename, string(source))
}

// ParseString parses source (attributed to filename for error messages)
// into a CFG.
func ParseString(filename, source string) (*ir.CFG, error) {
	file, err := irParser.ParseString(filename, source)
	if err != nil {
		return nil, errors.Wrapf(err, "irparser: parsing %s", filename)
	}
	cfg, err := build(file)
	if err != nil {
		return nil, errors.Wrapf(err, "irparser: building CFG from %s", filename)
	}
	return cfg, nil
}

// ReportFatal writes a caret-style diagnostic for err to stderr and exits
// with status 1. This is the only place in the repository that uses
// github.com/fatih/color, and only against stderr — stdout stays free for
// byte-exact golden comparison (spec §6).
func ReportFatal(source string, err error) {
	perr, ok := errors.Cause(err).(participle.Error)
	if !ok {
		color.New(color.FgRed).Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}

	pos := perr.Position()
	lines := strings.Split(source, "\n")
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "fatal: syntax error at %s:%d:%d: %s\n",
		pos.Filename, pos.Line, pos.Column, perr.Message())
	if pos.Line > 0 && pos.Line <= len(lines) {
		fmt.Fprintln(os.Stderr, lines[pos.Line-1])
		fmt.Fprintln(os.Stderr, strings.Repeat(" ", pos.Column-1)+"^")
	}
	os.Exit(1)
}
