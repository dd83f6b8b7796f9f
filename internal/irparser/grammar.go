// Package irparser is the external collaborator named in spec §6: a
// line-oriented textual IR reader built on github.com/alecthomas/participle/v2,
// grounded on kanso-lang-kanso/grammar/{lexer,parser,shared}.go's stateful
// lexer plus struct-tag grammar pattern.
package irparser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// irLexer tokenizes the textual IR. Unlike the teacher's lexer, newlines are
// a significant token here (NL) rather than folded into Whitespace, since
// the grammar is line-oriented (spec §6).
var irLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `;[^\n]*`, nil},
		{"NL", `\r?\n`, nil},
		{"Label", `\.[0-9]+`, nil},
		{"Reg", `%[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},
		{"Arrow", `<-`, nil},
		{"Punct", `[:,+]`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_]*`, nil},
		{"Whitespace", `[ \t]+`, nil},
	},
})

// File is the root of a parsed IR program: a sequence of labeled blocks in
// file order (spec §6 requires labels 0,1,2,… in order; build checks this).
type File struct {
	Blocks []*Block `@@*`
}

// Block is one LABEL ':' NL followed by its straight-line instructions.
type Block struct {
	Label string         `@Label ":" NL`
	Insts []*Instruction `@@*`
}

// Instruction is one of the four statement shapes in spec §6's grammar.
type Instruction struct {
	Def   *DefInst   `  @@`
	Print *PrintInst `| @@`
	Br    *BrInst    `| @@`
}

// DefInst is `REG '<-' operation NL`.
type DefInst struct {
	Reg string    `@Reg "<-"`
	Op  Operation `@@ NL`
}

// PrintInst is `'PRINT' operation NL`.
type PrintInst struct {
	Op Operation `"PRINT" @@ NL`
}

// BrInst is either `'BR' LABEL NL` (Uncond) or
// `'BR' value ',' LABEL ',' LABEL NL` (Cond); the leading value/LABEL token
// disambiguates the two with a single token of lookahead.
type BrInst struct {
	Uncond *UncondTarget `"BR" @@`
	Cond   *CondTarget   `| "BR" @@`
}

// UncondTarget is the tail of an unconditional branch.
type UncondTarget struct {
	Target string `@Label NL`
}

// CondTarget is the tail of a conditional branch.
type CondTarget struct {
	Value Operand `@@ ","`
	Then  string  `@Label ","`
	Else  string  `@Label NL`
}

// Operation is `value ('+' value)?`.
type Operation struct {
	Lhs Operand  `@@`
	Rhs *Operand `[ "+" @@ ]`
}

// Operand is `REG | INT`.
type Operand struct {
	Reg *string `  @Reg`
	Int *string `| @Int`
}
