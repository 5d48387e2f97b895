package mdpdf

import (
	"regexp"
	"strings"
)

// SpanKind tags a styled sub-run of text within a paragraph, heading, or
// list item.
type SpanKind int

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span is a text fragment with a single style applied. Text is carried
// verbatim: the renderer never interprets span content as markup, so
// literal &, < and > in source text cannot become structural output.
type Span struct {
	Text string
	Kind SpanKind
}

// Inline marker patterns, matched greedily and non-nested.
var (
	boldStarPattern    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern  = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderPattern = regexp.MustCompile(`_(.+?)_`)
	inlineCodePattern  = regexp.MustCompile("`([^`]+)`")
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// formatInline splits a raw text run into styled spans. Inline code is
// extracted first so backtick content is sealed off before the emphasis
// passes run: `do_this_now` must stay one code span, not be split on the
// underscores inside it. Then bold, italic, and links, each pass rewriting
// only still-plain spans, so text captured by an earlier marker is never
// reinterpreted by a later one. Link URLs are discarded; only the label
// survives, rendered underlined.
func formatInline(raw string) []Span {
	spans := []Span{{Text: raw, Kind: SpanPlain}}
	spans = applyMarker(spans, inlineCodePattern, SpanCode)
	spans = applyMarker(spans, boldStarPattern, SpanBold)
	spans = applyMarker(spans, boldUnderPattern, SpanBold)
	spans = applyMarker(spans, italicStarPattern, SpanItalic)
	spans = applyMarker(spans, italicUnderPattern, SpanItalic)
	spans = applyMarker(spans, linkPattern, SpanLink)
	return compactSpans(spans)
}

// applyMarker splits out submatch 1 of every pattern occurrence in each
// plain span as a span of the given kind. Styled spans pass through.
func applyMarker(spans []Span, pattern *regexp.Regexp, kind SpanKind) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Kind != SpanPlain {
			out = append(out, sp)
			continue
		}
		rest := sp.Text
		for {
			loc := pattern.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			if pre := rest[:loc[0]]; pre != "" {
				out = append(out, Span{Text: pre, Kind: SpanPlain})
			}
			out = append(out, Span{Text: rest[loc[2]:loc[3]], Kind: kind})
			rest = rest[loc[1]:]
		}
		if rest != "" {
			out = append(out, Span{Text: rest, Kind: SpanPlain})
		}
	}
	return out
}

// compactSpans drops empty spans and merges adjacent spans of equal kind.
func compactSpans(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Kind == sp.Kind {
			out[n-1].Text += sp.Text
			continue
		}
		out = append(out, sp)
	}
	return out
}

// spanText joins the raw text of a span sequence, with all markers removed.
func spanText(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
