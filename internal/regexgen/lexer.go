package regexgen

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// patternLexer tokenizes the pattern language. Bracket expressions and
// quantifier braces carry their own token rules, so the lexer pushes a
// state on '[' and '{' and pops on the matching close. Rule order matters
// within each state. A backslash followed by anything without a rule here
// (an unknown escape, or a trailing lone backslash) fails to lex and is
// reported with its offset.
var patternLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Class", Pattern: `\\[dwsDWS]`, Action: nil},
		{Name: "Increment", Pattern: `\\i[+-]?`, Action: nil},
		{Name: "Array", Pattern: `\\a[+-]?`, Action: nil},
		{Name: "Backref", Pattern: `\\[1-9]`, Action: nil},
		{Name: "Escaped", Pattern: `\\[\\\[\](){}|^$.+*?/tnr-]`, Action: nil},
		{Name: "BracketOpen", Pattern: `\[`, Action: lexer.Push("Bracket")},
		{Name: "GroupOpen", Pattern: `\(`, Action: nil},
		{Name: "GroupClose", Pattern: `\)`, Action: nil},
		{Name: "BraceOpen", Pattern: `\{`, Action: lexer.Push("Brace")},
		{Name: "Pipe", Pattern: `\|`, Action: nil},
		{Name: "Char", Pattern: `[^\\]`, Action: nil},
	},
	"Bracket": {
		{Name: "BracketClose", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "Range", Pattern: `[^\]\\-]-[^\]\\]`, Action: nil},
		{Name: "Caret", Pattern: `\^`, Action: nil},
		{Name: "SetChar", Pattern: `[^\]]`, Action: nil},
	},
	"Brace": {
		{Name: "BraceClose", Pattern: `\}`, Action: lexer.Pop()},
		{Name: "Number", Pattern: `[0-9]+`, Action: nil},
		{Name: "Comma", Pattern: `,`, Action: nil},
		{Name: "Colon", Pattern: `:`, Action: nil},
	},
})
