package regexgen

import (
	"slices"
	"testing"
)

func TestClassSetSizes(t *testing.T) {
	// negations complement against printable ASCII (95 characters)
	tests := []struct {
		class byte
		size  int
	}{
		{'d', 10},
		{'w', 63},
		{'s', 4},
		{'D', 85},
		{'W', 32},
		{'S', 94},
	}
	for _, tt := range tests {
		set := classSet(tt.class)
		if len(set) != tt.size {
			t.Errorf(`\%c: want %d characters got %d`, tt.class, tt.size, len(set))
		}
		if !slices.IsSorted(set) {
			t.Errorf(`\%c: set is not ascending`, tt.class)
		}
	}
}

func TestClassSetMembership(t *testing.T) {
	if !slices.Contains(classSet('w'), '_') {
		t.Error(`'_' missing from \w`)
	}
	if slices.Contains(classSet('W'), '_') {
		t.Error(`'_' present in \W`)
	}
	if slices.Contains(classSet('S'), ' ') {
		t.Error(`' ' present in \S`)
	}
	if !slices.Contains(classSet('s'), '\n') {
		t.Error(`'\n' missing from \s`)
	}
}

func TestBracketSetDedup(t *testing.T) {
	set := bracketSet([]rune("abacab"), false)
	if string(set) != "abc" {
		t.Fatalf("got %q", string(set))
	}
}

func TestBracketSetNegatedEmpty(t *testing.T) {
	set := bracketSet(rangeSet(universeLo, universeHi), true)
	if len(set) != 0 {
		t.Fatalf("want empty set, got %d characters", len(set))
	}
}

func TestBracketSetNegation(t *testing.T) {
	set := bracketSet([]rune{'a', 'b'}, true)
	if len(set) != 93 {
		t.Fatalf("want 93 characters got %d", len(set))
	}
	if slices.Contains(set, 'a') || slices.Contains(set, 'b') {
		t.Fatal("negated set still contains its members")
	}
	if !slices.Contains(set, ' ') || !slices.Contains(set, '~') {
		t.Fatal("negated set is missing universe bounds")
	}
}
