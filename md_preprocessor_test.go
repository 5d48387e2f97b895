package mdpdf

import (
	"context"
	"reflect"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "crlf", content: "a\r\nb", want: "a\nb"},
		{name: "bare cr", content: "a\rb", want: "a\nb"},
		{name: "mixed", content: "a\r\nb\rc\nd", want: "a\nb\nc\nd"},
		{name: "already clean", content: "a\nb", want: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLineEndings(tt.content); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "three newlines", content: "a\n\n\nb", want: "a\n\nb"},
		{name: "many newlines", content: "a\n\n\n\n\n\nb", want: "a\n\nb"},
		{name: "two newlines untouched", content: "a\n\nb", want: "a\n\nb"},
		{name: "whitespace-only lines", content: "a\n \n\t\n  \nb", want: "a\n \nb"},
		{name: "fenced blanks untouched", content: "```\na\n\n\n\nb\n```", want: "```\na\n\n\n\nb\n```"},
		{name: "compression resumes after fence", content: "```\nx\n```\na\n\n\n\nb", want: "```\nx\n```\na\n\nb"},
		{name: "unterminated fence untouched", content: "```\na\n\n\n\nb", want: "```\na\n\n\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compressBlankLines(tt.content); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown(t *testing.T) {
	p := linePreprocessor{}
	got := p.PreprocessMarkdown(context.Background(), "a\r\n\r\n\r\nb\r\n")
	want := "a\n\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessMarkdownKeepsFencedBlanks(t *testing.T) {
	p := linePreprocessor{}
	doc := Parse(p.PreprocessMarkdown(context.Background(), "```\na\n\n\n\nb\n```"))

	blocks := codeBlocks(doc)
	if len(blocks) != 1 {
		t.Fatalf("code blocks = %d, want 1", len(blocks))
	}
	want := []string{"a", "", "", "", "b"}
	if !reflect.DeepEqual(blocks[0].Lines, want) {
		t.Errorf("lines = %q, want %q", blocks[0].Lines, want)
	}
}
