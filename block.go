package mdpdf

// Document is the parsed, ordered representation of one Markdown source.
// It is built once per conversion, consumed once by the renderer, and
// never mutated afterwards.
type Document struct {
	Title  string
	Author string
	Blocks []Block
}

// Block is one structural unit of the parsed document. Blocks preserve
// source order.
type Block interface {
	block()
}

// Heading is an ATX heading with level 1-6.
type Heading struct {
	Level int
	Spans []Span
}

// Paragraph is a logical paragraph; consecutive source lines are joined
// with single spaces before inline formatting.
type Paragraph struct {
	Spans []Span
}

// BulletList holds consecutive bullet items in source order.
type BulletList struct {
	Items [][]Span
}

// NumberedList holds consecutive numbered items in source order.
type NumberedList struct {
	Items [][]Span
}

// CodeBlock holds the raw lines of a fenced code block, in original order
// and whitespace. Lang is the optional fence language tag; it is carried
// for completeness but not used for highlighting.
type CodeBlock struct {
	Lines []string
	Lang  string
}

// Rule is a horizontal rule. It renders as a vertical gap.
type Rule struct{}

// Spacer is an explicit vertical gap, in points.
type Spacer struct {
	Height float64
}

func (Heading) block()      {}
func (Paragraph) block()    {}
func (BulletList) block()   {}
func (NumberedList) block() {}
func (CodeBlock) block()    {}
func (Rule) block()         {}
func (Spacer) block()       {}
