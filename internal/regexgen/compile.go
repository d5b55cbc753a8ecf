package regexgen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
)

// CompileError is the only error class this package produces. Offset is
// the byte offset of the offending token in the pattern, or -1 for
// construction errors with no position (bad increment seed, missing
// array values).
type CompileError struct {
	Offset int
	Msg    string
}

func (e *CompileError) Error() string {
	if e.Offset < 0 {
		return e.Msg
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

func errAt(offset int, format string, args ...any) *CompileError {
	return &CompileError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// compiler lowers the grammar structs into nodes. Group indices are
// assigned the moment a group is entered, so outer groups number lower
// than nested ones and numbering follows opening order left to right.
type compiler struct {
	nextGroup int
	incrDir   int // direction of the first increment token, 0 until seen
	usesArray bool
}

// Compile parses and validates a pattern. The returned Pattern is
// immutable; any number of generators may share it.
func Compile(pattern string) (*Pattern, error) {
	cst, err := patternParser.ParseString("", pattern)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &CompileError{Offset: perr.Position().Offset, Msg: perr.Message()}
		}
		return nil, &CompileError{Offset: -1, Msg: err.Error()}
	}
	c := &compiler{nextGroup: 1}
	root, err := c.alternation(cst)
	if err != nil {
		return nil, err
	}
	if c.incrDir == 0 {
		c.incrDir = 1
	}
	return &Pattern{
		src:       pattern,
		root:      root,
		groups:    c.nextGroup - 1,
		incrDir:   c.incrDir,
		usesArray: c.usesArray,
	}, nil
}

func (c *compiler) alternation(alt *patAlternation) (*node, error) {
	branches := append([]*patSequence{alt.First}, alt.Rest...)
	if len(branches) == 1 {
		return c.sequence(branches[0])
	}
	n := &node{kind: nAlt}
	for _, br := range branches {
		if len(br.Items) == 0 {
			return nil, errAt(br.Pos.Offset, "empty alternation branch")
		}
		item, err := c.sequence(br)
		if err != nil {
			return nil, err
		}
		n.items = append(n.items, item)
	}
	return n, nil
}

func (c *compiler) sequence(seq *patSequence) (*node, error) {
	n := &node{kind: nSeq}
	for _, item := range seq.Items {
		child, err := c.quantified(item)
		if err != nil {
			return nil, err
		}
		n.items = append(n.items, child)
	}
	if len(n.items) == 1 {
		return n.items[0], nil
	}
	return n, nil
}

func (c *compiler) quantified(q *patQuantified) (*node, error) {
	body, err := c.atom(q.Atom)
	if err != nil {
		return nil, err
	}
	if q.Quant == nil {
		return body, nil
	}
	return c.quantifier(body, q.Quant)
}

func (c *compiler) quantifier(body *node, q *patQuant) (*node, error) {
	if q.Pad != nil && q.Max != nil {
		return nil, errAt(q.Pos.Offset, "quantifier cannot combine ',max' with ':width'")
	}
	if q.Pad == nil && q.Min == nil {
		return nil, errAt(q.Pos.Offset, "quantifier needs a count")
	}

	min := 1
	if q.Min != nil {
		v, err := strconv.Atoi(*q.Min)
		if err != nil {
			return nil, errAt(q.Pos.Offset, "quantifier bound %s out of range", *q.Min)
		}
		min = v
	}

	if q.Pad != nil {
		pad, err := strconv.Atoi(q.Pad.Value)
		if err != nil {
			return nil, errAt(q.Pos.Offset, "pad width %s out of range", q.Pad.Value)
		}
		switch body.kind {
		case nIncrement:
			body.pad = pad
			return body, nil
		case nCharSet:
			return &node{kind: nQuant, body: body, min: min, max: min, pad: pad}, nil
		}
		return nil, errAt(q.Pos.Offset, "':width' form requires a character class, bracket set, or increment token")
	}

	max := min
	if q.Max != nil {
		v, err := strconv.Atoi(q.Max.Value)
		if err != nil {
			return nil, errAt(q.Pos.Offset, "quantifier bound %s out of range", q.Max.Value)
		}
		max = v
	}
	if min > max {
		return nil, errAt(q.Pos.Offset, "invalid quantifier range {%d,%d}", min, max)
	}
	return &node{kind: nQuant, body: body, min: min, max: max}, nil
}

func (c *compiler) atom(a *patAtom) (*node, error) {
	switch {
	case a.Class != nil:
		return &node{kind: nCharSet, set: classSet((*a.Class)[1])}, nil

	case a.Backref != nil:
		index := int((*a.Backref)[1] - '0')
		if index >= c.nextGroup {
			return nil, errAt(a.Pos.Offset, "backreference \\%d has no group opened before it", index)
		}
		return &node{kind: nBackref, index: index}, nil

	case a.Increment != nil:
		dir := 1
		if len(*a.Increment) == 3 && (*a.Increment)[2] == '-' {
			dir = -1
		}
		if c.incrDir == 0 {
			c.incrDir = dir
		}
		return &node{kind: nIncrement, dir: dir}, nil

	case a.Array != nil:
		dir := 0
		if len(*a.Array) == 3 {
			if (*a.Array)[2] == '+' {
				dir = 1
			} else {
				dir = -1
			}
		}
		c.usesArray = true
		return &node{kind: nArray, dir: dir}, nil

	case a.Group != nil:
		index := c.nextGroup
		c.nextGroup++
		body, err := c.alternation(a.Group)
		if err != nil {
			return nil, err
		}
		return &node{kind: nGroup, index: index, body: body}, nil

	case a.Bracket != nil:
		return c.bracket(a.Bracket)

	case a.Escaped != nil:
		return &node{kind: nLiteral, ch: unescape(rune((*a.Escaped)[1]))}, nil

	default:
		return &node{kind: nLiteral, ch: []rune(*a.Char)[0]}, nil
	}
}

func (c *compiler) bracket(b *patBracket) (*node, error) {
	var chars []rune
	for _, m := range b.Members {
		if m.Range != nil {
			rs := []rune(*m.Range)
			lo, hi := rs[0], rs[2]
			if lo > hi {
				return nil, errAt(m.Pos.Offset, "reversed range %c-%c", lo, hi)
			}
			chars = append(chars, rangeSet(lo, hi)...)
		} else {
			chars = append(chars, []rune(*m.Char)[0])
		}
	}
	set := bracketSet(chars, b.Negated)
	if len(set) == 0 {
		return nil, errAt(b.Pos.Offset, "character set is empty after negation")
	}
	return &node{kind: nCharSet, set: set}, nil
}

func unescape(r rune) rune {
	switch r {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	}
	return r
}
