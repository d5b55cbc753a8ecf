package regexgen

import "slices"

// Negation universe: printable ASCII.
const (
	universeLo = 0x20
	universeHi = 0x7e
)

// classSet returns the candidate characters for a \d \w \s shorthand or
// its upper-case negation. Sets are in ascending order so draws are
// reproducible under a fixed seed.
func classSet(class byte) []rune {
	switch class {
	case 'd':
		return rangeSet('0', '9')
	case 'w':
		set := rangeSet('0', '9')
		set = append(set, rangeSet('A', 'Z')...)
		set = append(set, '_')
		return append(set, rangeSet('a', 'z')...)
	case 's':
		return []rune{'\t', '\n', '\r', ' '}
	case 'D', 'W', 'S':
		return negateSet(classSet(class + 'a' - 'A'))
	}
	return nil
}

func rangeSet(lo, hi rune) []rune {
	set := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		set = append(set, r)
	}
	return set
}

// negateSet complements a set against the printable ASCII universe.
func negateSet(set []rune) []rune {
	member := make(map[rune]bool, len(set))
	for _, r := range set {
		member[r] = true
	}
	out := make([]rune, 0, universeHi-universeLo+1)
	for r := rune(universeLo); r <= universeHi; r++ {
		if !member[r] {
			out = append(out, r)
		}
	}
	return out
}

// bracketSet expands the members of a bracket expression into a concrete
// candidate list. Members may repeat and ranges may overlap; the result is
// deduplicated and ascending.
func bracketSet(chars []rune, negated bool) []rune {
	if negated {
		return negateSet(chars)
	}
	member := make(map[rune]bool, len(chars))
	for _, r := range chars {
		member[r] = true
	}
	out := make([]rune, 0, len(member))
	for r := range member {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
