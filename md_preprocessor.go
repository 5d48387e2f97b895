package mdpdf

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled normalization patterns.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// markdownPreprocessor normalizes raw Markdown before parsing.
type markdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// linePreprocessor applies line-level normalization. Order matters:
// line endings first, then blank-line compression. Neither transformation
// changes how any line classifies.
type linePreprocessor struct{}

func (linePreprocessor) PreprocessMarkdown(_ context.Context, content string) string {
	content = normalizeLineEndings(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one, tracking fence
// state line by line so fenced code is copied through untouched: every line
// inside a fence must survive in original order and whitespace.
func compressBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	blanks := 0
	for _, line := range lines {
		if isFence(line) {
			inFence = !inFence
			blanks = 0
			out = append(out, line)
			continue
		}
		if !inFence && strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
