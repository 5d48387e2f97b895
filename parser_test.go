package mdpdf

import (
	"reflect"
	"testing"
)

// codeBlocks extracts the CodeBlock elements from a parsed document.
func codeBlocks(doc *Document) []CodeBlock {
	var out []CodeBlock
	for _, b := range doc.Blocks {
		if cb, ok := b.(CodeBlock); ok {
			out = append(out, cb)
		}
	}
	return out
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "no level-1 heading falls back to default",
			markdown: "## Only a section\n\nwords\n",
			want:     DefaultTitle,
		},
		{
			name:     "first level-1 heading wins",
			markdown: "## early section\n\n# One\n\n# Two\n",
			want:     "One",
		},
		{
			name:     "markers are stripped from the title",
			markdown: "# The *Big* Plan\n",
			want:     "The Big Plan",
		},
		{
			name:     "heading inside code fence is not a title",
			markdown: "```\n# not a title\n```\n",
			want:     DefaultTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.markdown)
			if doc.Title != tt.want {
				t.Errorf("Title = %q, want %q", doc.Title, tt.want)
			}
		})
	}
}

func TestParseHeadingAndParagraph(t *testing.T) {
	doc := Parse("# Title\n\nSome *text* here.")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}

	h, ok := doc.Blocks[0].(Heading)
	if !ok {
		t.Fatalf("first block is %T, want Heading", doc.Blocks[0])
	}
	if h.Level != 1 || spanText(h.Spans) != "Title" {
		t.Errorf("heading = level %d %q, want level 1 %q", h.Level, spanText(h.Spans), "Title")
	}

	p, ok := doc.Blocks[1].(Paragraph)
	if !ok {
		t.Fatalf("second block is %T, want Paragraph", doc.Blocks[1])
	}
	var italic *Span
	for i := range p.Spans {
		if p.Spans[i].Kind == SpanItalic {
			italic = &p.Spans[i]
		}
	}
	if italic == nil || italic.Text != "text" {
		t.Errorf("paragraph spans = %+v, want an italic span %q", p.Spans, "text")
	}
}

func TestParseBulletList(t *testing.T) {
	doc := Parse("- a\n- b\n- c\n")

	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %+v", len(doc.Blocks), doc.Blocks)
	}
	list, ok := doc.Blocks[0].(BulletList)
	if !ok {
		t.Fatalf("block is %T, want BulletList", doc.Blocks[0])
	}
	if len(list.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(list.Items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := spanText(list.Items[i]); got != want {
			t.Errorf("item %d = %q, want %q", i, got, want)
		}
	}
}

func TestParseListFlushing(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []Block
	}{
		{
			name:     "blank line closes a bullet list",
			markdown: "- a\n- b\n\n- c\n",
			want: []Block{
				BulletList{Items: [][]Span{spansOf("a"), spansOf("b")}},
				BulletList{Items: [][]Span{spansOf("c")}},
			},
		},
		{
			name:     "numbered item closes a bullet list",
			markdown: "- a\n1. b\n",
			want: []Block{
				BulletList{Items: [][]Span{spansOf("a")}},
				NumberedList{Items: [][]Span{spansOf("b")}},
			},
		},
		{
			name:     "bullet item closes a numbered list",
			markdown: "1. a\n2. b\n- c\n",
			want: []Block{
				NumberedList{Items: [][]Span{spansOf("a"), spansOf("b")}},
				BulletList{Items: [][]Span{spansOf("c")}},
			},
		},
		{
			name:     "heading closes a pending list",
			markdown: "- a\n# Done\n",
			want: []Block{
				BulletList{Items: [][]Span{spansOf("a")}},
				Heading{Level: 1, Spans: spansOf("Done")},
			},
		},
		{
			name:     "end of input flushes a pending list",
			markdown: "1. only",
			want: []Block{
				NumberedList{Items: [][]Span{spansOf("only")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.markdown)
			if !reflect.DeepEqual(doc.Blocks, tt.want) {
				t.Errorf("blocks = %+v, want %+v", doc.Blocks, tt.want)
			}
		})
	}
}

func TestParseCodeBlock(t *testing.T) {
	doc := Parse("```go\nfunc main() {\n\tprintln(\"hi\")\n}\n```\n")

	blocks := codeBlocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("got %d code blocks, want 1", len(blocks))
	}
	cb := blocks[0]
	if cb.Lang != "go" {
		t.Errorf("Lang = %q, want %q", cb.Lang, "go")
	}
	wantLines := []string{"func main() {", "\tprintln(\"hi\")", "}"}
	if !reflect.DeepEqual(cb.Lines, wantLines) {
		t.Errorf("Lines = %q, want %q", cb.Lines, wantLines)
	}
}

func TestParseUnterminatedFence(t *testing.T) {
	doc := Parse("intro\n\n```\nline1\nline2")

	blocks := codeBlocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("got %d code blocks, want 1", len(blocks))
	}
	wantLines := []string{"line1", "line2"}
	if !reflect.DeepEqual(blocks[0].Lines, wantLines) {
		t.Errorf("Lines = %q, want %q", blocks[0].Lines, wantLines)
	}
}

func TestParseFenceHidesMarkers(t *testing.T) {
	doc := Parse("```\n# not a heading\n- not a bullet\n---\n```\n")

	for _, b := range doc.Blocks {
		switch b.(type) {
		case Heading, BulletList, Rule:
			t.Fatalf("marker line inside fence produced %T", b)
		}
	}
	blocks := codeBlocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("got %d code blocks, want 1", len(blocks))
	}
	wantLines := []string{"# not a heading", "- not a bullet", "---"}
	if !reflect.DeepEqual(blocks[0].Lines, wantLines) {
		t.Errorf("Lines = %q, want %q", blocks[0].Lines, wantLines)
	}
}

func TestParseParagraphContinuation(t *testing.T) {
	doc := Parse("one\ntwo\nthree\n\nfour\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}
	first, ok := doc.Blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("first block is %T, want Paragraph", doc.Blocks[0])
	}
	if got := spanText(first.Spans); got != "one two three" {
		t.Errorf("first paragraph = %q, want %q", got, "one two three")
	}
}

func TestParseParagraphStopsAtStructure(t *testing.T) {
	doc := Parse("text before\n- item\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(doc.Blocks), doc.Blocks)
	}
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Errorf("first block is %T, want Paragraph", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[1].(BulletList); !ok {
		t.Errorf("second block is %T, want BulletList", doc.Blocks[1])
	}
}

func TestParseRule(t *testing.T) {
	doc := Parse("above\n\n---\n\nbelow\n")

	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(doc.Blocks), doc.Blocks)
	}
	if _, ok := doc.Blocks[1].(Rule); !ok {
		t.Errorf("middle block is %T, want Rule", doc.Blocks[1])
	}
}

func TestParseDeterministic(t *testing.T) {
	markdown := "# T\n\npara one\n\n- a\n- b\n\n1. x\n\n```\ncode\n```\n\n---\n\nend\n"

	first := Parse(markdown)
	second := Parse(markdown)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated parses of identical input differ")
	}
}

// spansOf builds the span sequence for a plain text run.
func spansOf(text string) []Span {
	return []Span{{Text: text, Kind: SpanPlain}}
}
