package regexgen

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar structs for the pattern language. Precedence low to high:
// alternation, sequence, postfix quantifier, atom. These only mirror the
// surface syntax; group numbering and all validation happen when the
// compiler lowers them into nodes.

type patAlternation struct {
	First *patSequence   `parser:"@@"`
	Rest  []*patSequence `parser:"( Pipe @@ )*"`
}

type patSequence struct {
	Pos   lexer.Position
	Items []*patQuantified `parser:"@@*"`
}

type patQuantified struct {
	Atom  *patAtom  `parser:"@@"`
	Quant *patQuant `parser:"@@?"`
}

type patAtom struct {
	Pos       lexer.Position
	Class     *string         `parser:"@Class"`
	Backref   *string         `parser:"| @Backref"`
	Increment *string         `parser:"| @Increment"`
	Array     *string         `parser:"| @Array"`
	Group     *patAlternation `parser:"| GroupOpen @@ GroupClose"`
	Bracket   *patBracket     `parser:"| @@"`
	Escaped   *string         `parser:"| @Escaped"`
	Char      *string         `parser:"| @Char"`
}

type patBracket struct {
	Pos     lexer.Position
	Negated bool            `parser:"BracketOpen @Caret?"`
	Members []*patSetMember `parser:"@@+ BracketClose"`
}

type patSetMember struct {
	Pos   lexer.Position
	Range *string `parser:"@Range"`
	Char  *string `parser:"| @SetChar | @Caret"`
}

// patQuant admits a superset of the legal forms ({n}, {n,m}, {n:z}, {:z});
// the compiler rejects the empty and mixed combinations.
type patQuant struct {
	Pos lexer.Position
	Min *string      `parser:"BraceOpen @Number?"`
	Max *patQuantMax `parser:"@@?"`
	Pad *patQuantPad `parser:"@@? BraceClose"`
}

type patQuantMax struct {
	Value string `parser:"Comma @Number"`
}

type patQuantPad struct {
	Value string `parser:"Colon @Number"`
}

var patternParser = participle.MustBuild[patAlternation](
	participle.Lexer(patternLexer),
)
