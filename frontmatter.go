package mdpdf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ndottil/mdpdf/internal/yamlutil"
)

// metadataKeyPattern matches a "key:" mapping line, the shape a real front
// matter block opens with. A leading --- followed by anything else is a
// horizontal rule or document content, not metadata.
var metadataKeyPattern = regexp.MustCompile(`^[A-Za-z_][\w-]*\s*:`)

// frontMatterDelim opens and closes a YAML front matter block.
const frontMatterDelim = "---"

// frontMatter holds the metadata keys recognized from a leading YAML block.
// Unknown keys are ignored.
type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// splitFrontMatter detects a leading --- delimited YAML block, parses it,
// and returns the metadata plus the remaining content. The second line must
// look like a metadata mapping; otherwise the leading --- is document
// content (usually a horizontal rule) and the input is returned unchanged.
// An opening delimiter that is never closed is likewise not front matter.
func splitFrontMatter(content string) (frontMatter, string, error) {
	var fm frontMatter

	lines := strings.Split(content, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return fm, content, nil
	}
	if !metadataKeyPattern.MatchString(strings.TrimSpace(lines[1])) {
		return fm, content, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != frontMatterDelim {
			continue
		}
		body := strings.Join(lines[1:i], "\n")
		rest := strings.Join(lines[i+1:], "\n")
		if err := yamlutil.Unmarshal([]byte(body), &fm); err != nil {
			return fm, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
		return fm, rest, nil
	}

	return fm, content, nil
}
