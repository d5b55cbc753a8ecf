// Package regexgen compiles a compact, regex-like pattern language into a
// tree and evaluates it to produce random strings. Patterns support
// character classes, bracket expressions with ranges and negation,
// quantifiers, capturing groups with backreferences, alternation, and two
// stateful tokens: \i (a counter advancing once per generated string) and
// \a (a cursor over a caller-supplied value list).
package regexgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Pattern is a compiled pattern. It is immutable and may back any number
// of generators concurrently.
type Pattern struct {
	src       string
	root      *node
	groups    int
	incrDir   int
	usesArray bool
}

func (p *Pattern) String() string { return p.src }

// Generator produces strings from a compiled pattern. It owns mutable
// state (the counter, the array cursor, and the per-call capture table),
// so calls to Generate on one instance must not overlap.
type Generator struct {
	pat      *Pattern
	rng      *rand.Rand
	captures []string

	counter int64
	pad     int // default pad width taken from the seed's leading zeros

	values []string
	cursor int

	counterHit bool
	cursorHit  bool
}

// Generator builds a generator over the pattern. increment seeds the \i
// counter and must be a base-10 integer when non-empty; its leading-zero
// width becomes the default pad width for increment tokens without their
// own {:z}. values feeds the \a token and must be non-empty when the
// pattern uses one.
func (p *Pattern) Generator(increment string, values []string) (*Generator, error) {
	g := &Generator{
		pat:      p,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		captures: make([]string, p.groups),
	}
	if increment != "" {
		v, err := strconv.ParseInt(increment, 10, 64)
		if err != nil {
			return nil, &CompileError{Offset: -1, Msg: fmt.Sprintf("initial increment %q is not an integer", increment)}
		}
		g.counter = v
		g.pad = leadingZeroWidth(increment)
	}
	if p.usesArray {
		if len(values) == 0 {
			return nil, &CompileError{Offset: -1, Msg: `pattern uses \a but no array values were supplied`}
		}
		g.values = append([]string(nil), values...)
	}
	return g, nil
}

// New compiles pattern and builds a generator in one step.
func New(pattern, increment string, values []string) (*Generator, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Generator(increment, values)
}

// Reseed replaces the random source, for reproducible output.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate returns the next string. It cannot fail: everything that could
// go wrong was rejected when the generator was constructed. Captures are
// rebuilt on every call; the counter and cursor each advance once per call
// in which their token rendered.
func (g *Generator) Generate() string {
	for i := range g.captures {
		g.captures[i] = ""
	}
	g.counterHit = false
	g.cursorHit = false

	var b strings.Builder
	g.walk(g.pat.root, &b)

	if g.counterHit {
		g.counter += int64(g.pat.incrDir)
	}
	if g.cursorHit {
		g.cursor++
	}
	return b.String()
}

func (g *Generator) walk(n *node, b *strings.Builder) {
	switch n.kind {
	case nLiteral:
		b.WriteRune(n.ch)

	case nCharSet:
		b.WriteRune(n.set[g.rng.Intn(len(n.set))])

	case nSeq:
		for _, item := range n.items {
			g.walk(item, b)
		}

	case nAlt:
		g.walk(n.items[g.rng.Intn(len(n.items))], b)

	case nGroup:
		var sub strings.Builder
		g.walk(n.body, &sub)
		s := sub.String()
		// recorded before later siblings run, so a backreference further
		// right in the same call sees the value
		g.captures[n.index-1] = s
		b.WriteString(s)

	case nBackref:
		// a group skipped by alternation this call reads as ""
		b.WriteString(g.captures[n.index-1])

	case nQuant:
		if n.pad > 0 {
			g.padded(n, b)
			return
		}
		count := n.min
		if n.max > n.min {
			count = n.min + g.rng.Intn(n.max-n.min+1)
		}
		for i := 0; i < count; i++ {
			g.walk(n.body, b)
		}

	case nIncrement:
		g.counterHit = true
		v := g.counter + int64(g.pat.incrDir)
		pad := n.pad
		if pad == 0 {
			pad = g.pad
		}
		if pad > 0 {
			fmt.Fprintf(b, "%0*d", pad, v)
		} else {
			b.WriteString(strconv.FormatInt(v, 10))
		}

	case nArray:
		switch n.dir {
		case 0:
			b.WriteString(g.values[g.rng.Intn(len(g.values))])
		case 1:
			g.cursorHit = true
			b.WriteString(g.values[g.cursor%len(g.values)])
		case -1:
			g.cursorHit = true
			b.WriteString(g.values[len(g.values)-1-g.cursor%len(g.values)])
		}
	}
}

// padded handles the {n:z} form: exactly min draws from the body's set,
// left-padded with zeros to the pad width. Overlong results are kept as is.
func (g *Generator) padded(n *node, b *strings.Builder) {
	var raw strings.Builder
	for i := 0; i < n.min; i++ {
		g.walk(n.body, &raw)
	}
	s := raw.String()
	if w := utf8.RuneCountInString(s); w < n.pad {
		b.WriteString(strings.Repeat("0", n.pad-w))
	}
	b.WriteString(s)
}

// leadingZeroWidth reports the pad width implied by a zero-padded seed
// such as "0042" (width 4), or 0 when the seed carries no leading zero.
func leadingZeroWidth(s string) int {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' {
		return len(digits)
	}
	return 0
}
