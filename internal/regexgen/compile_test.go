package regexgen

import (
	"reflect"
	"testing"
)

func mustCompile(t *testing.T, pattern string) *Pattern {
	t.Helper()
	p, err := Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return p
}

func TestGroupNumbering(t *testing.T) {
	// indices follow opening order, so outer groups number lower than
	// nested ones
	p := mustCompile(t, "((a)(b))(c)")
	if p.groups != 4 {
		t.Fatalf("want 4 groups got %d", p.groups)
	}
	root := p.root
	if root.kind != nSeq || len(root.items) != 2 {
		t.Fatalf("unexpected root %+v", root)
	}
	outer := root.items[0]
	if outer.kind != nGroup || outer.index != 1 {
		t.Fatalf("outer group: %+v", outer)
	}
	inner := outer.body
	if inner.kind != nSeq || inner.items[0].index != 2 || inner.items[1].index != 3 {
		t.Fatalf("nested groups: %+v", inner)
	}
	if root.items[1].index != 4 {
		t.Fatalf("trailing group: %+v", root.items[1])
	}
}

func TestBackrefInsideOwnGroup(t *testing.T) {
	// group 1 is open to the left of the backreference, which is enough
	mustCompile(t, `(a\1)`)
}

func TestCompileIdempotent(t *testing.T) {
	const pattern = `(\d\d)[a-f]{2,3}\1|x\i+|\a`
	a := mustCompile(t, pattern)
	b := mustCompile(t, pattern)
	if !reflect.DeepEqual(a.root, b.root) {
		t.Fatalf("tree differs between compilations of %q", pattern)
	}
	if a.groups != b.groups || a.incrDir != b.incrDir || a.usesArray != b.usesArray {
		t.Fatalf("metadata differs between compilations of %q", pattern)
	}
}

func TestCompileLiterals(t *testing.T) {
	// stray '}' ']' '.' '-' etc. outside their context are plain text
	for _, pattern := range []string{"", "a-z", "]", "a}b", "x.y,z:", "()", "a{3}b"} {
		mustCompile(t, pattern)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []string{
		`(a`, `a)`, `[ab`, `a{2`, // unbalanced delimiters
		`a|`, `|a`, `a||b`, `(|b)`, // empty alternation branch
		`a{3,1}`, `a{}`, `a{,3}`, `a{2,3:4}`, // bad quantifier
		`a{1:3}`, `(ab){1:3}`, `(a)\1{1:3}`, `\a{:3}`, // pad form on the wrong atom
		`\1`, `(a)\2`, `\2(a)`, // undefined backreference
		`[z-a]`, `[^ -~]`, `[]a`, // bad bracket set
		`{3}`, // quantifier with nothing to repeat
	}
	for _, pattern := range tests {
		_, err := Compile(pattern)
		if err == nil {
			t.Errorf("compile %q: expected error", pattern)
			continue
		}
		if _, ok := err.(*CompileError); !ok {
			t.Errorf("compile %q: want CompileError got %T", pattern, err)
		}
	}
}

func TestCompileErrorOffsets(t *testing.T) {
	tests := []struct {
		pattern string
		offset  int
	}{
		{`(a)\2`, 3},
		{`ab{3,1}`, 2},
		{`x[z-a]`, 2},
	}
	for _, tt := range tests {
		_, err := Compile(tt.pattern)
		ce, ok := err.(*CompileError)
		if !ok {
			t.Fatalf("compile %q: want CompileError got %v", tt.pattern, err)
		}
		if ce.Offset != tt.offset {
			t.Fatalf("compile %q: want offset %d got %d (%s)", tt.pattern, tt.offset, ce.Offset, ce.Msg)
		}
	}
}

func TestPatternString(t *testing.T) {
	const pattern = `\d{3}`
	if got := mustCompile(t, pattern).String(); got != pattern {
		t.Fatalf("want %q got %q", pattern, got)
	}
}
