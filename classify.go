package mdpdf

import (
	"regexp"
	"strings"
)

// lineKind tags the classification of a single source line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineRule
	lineHeading
	lineBullet
	lineNumbered
	lineText
)

// lineInfo is the tagged result of classifying one line.
type lineInfo struct {
	kind  lineKind
	level int    // heading level, 1-6
	text  string // heading, item, or paragraph payload
}

// Precompiled line patterns.
var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	numberedPattern = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	rulePattern     = regexp.MustCompile(`^[-*_]{3,}$`)
	fenceTagPattern = regexp.MustCompile("^```(\\w+)?")
)

// classifyLine resolves one line to its tagged classification. Matchers run
// in fixed priority order: blank, rule, heading, bullet, numbered, then
// paragraph text. A line matching several patterns resolves by this order.
// Fence state takes precedence over everything here and is handled by the
// caller via isFence before classifyLine is consulted.
func classifyLine(line string) lineInfo {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineInfo{kind: lineBlank}
	}
	if rulePattern.MatchString(trimmed) {
		return lineInfo{kind: lineRule}
	}
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return lineInfo{kind: lineHeading, level: len(m[1]), text: strings.TrimSpace(m[2])}
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return lineInfo{kind: lineBullet, text: strings.TrimSpace(m[1])}
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		return lineInfo{kind: lineNumbered, text: strings.TrimSpace(m[1])}
	}
	return lineInfo{kind: lineText, text: trimmed}
}

// isFence reports whether the line opens or closes a fenced code block.
func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// fenceLang extracts the optional language tag from a fence-open line.
func fenceLang(line string) string {
	m := fenceTagPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return ""
	}
	return m[1]
}

// continuesParagraph reports whether the line extends the paragraph being
// accumulated: it must be non-blank and not itself classify as a fence,
// rule, heading, bullet, or numbered item.
func continuesParagraph(line string) bool {
	if isFence(line) {
		return false
	}
	return classifyLine(line).kind == lineText
}
