package regexgen

type nodeKind int

const (
	nLiteral nodeKind = iota
	nCharSet          // class shorthand or bracket expression, pre-resolved
	nGroup
	nBackref
	nQuant
	nSeq
	nAlt
	nIncrement
	nArray
)

// node is the compiled form shared by the compiler and the generator.
// Trees are immutable after Compile and safe to share between generators.
type node struct {
	kind nodeKind

	ch    rune    // nLiteral
	set   []rune  // nCharSet, ascending
	index int     // nGroup, nBackref
	body  *node   // nGroup, nQuant
	items []*node // nSeq, nAlt

	min, max int // nQuant
	pad      int // nQuant pad form, nIncrement; 0 = unpadded
	dir      int // nIncrement, nArray: +1 ascending, -1 descending, 0 random (array only)
}
