package mdpdf

import "strings"

// DefaultTitle is used when neither front matter nor a level-1 heading
// provides one.
const DefaultTitle = "Untitled Document"

// codeBlockGap is the vertical gap emitted around fenced code blocks, in
// points.
const codeBlockGap = 6.0

// parserState carries the two list buffers and the fence buffer across the
// line-by-line pass. It is an explicit value local to Parse; nothing is
// shared between invocations.
type parserState struct {
	blocks   []Block
	bullets  [][]Span
	numbered [][]Span
	inFence  bool
	fence    []string
	fenceTag string
}

// Parse scans Markdown source line by line and builds the document model.
// Classification priority is fixed: fence state first (inside a fence every
// line is raw code text), then blank, rule, heading, bullet, numbered, and
// finally paragraph with lookahead. The document title is the text of the
// first level-1 heading, or DefaultTitle when none exists.
func Parse(markdown string) *Document {
	st := &parserState{}
	lines := strings.Split(markdown, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isFence(line) {
			if st.inFence {
				st.closeFence()
			} else {
				st.flushLists()
				st.inFence = true
				st.fenceTag = fenceLang(line)
			}
			continue
		}
		if st.inFence {
			st.fence = append(st.fence, line)
			continue
		}

		info := classifyLine(line)
		switch info.kind {
		case lineBlank:
			st.flushLists()
		case lineRule:
			st.flushLists()
			st.blocks = append(st.blocks, Rule{})
		case lineHeading:
			st.flushLists()
			st.blocks = append(st.blocks, Heading{Level: info.level, Spans: formatInline(info.text)})
		case lineBullet:
			st.flushNumbered()
			st.bullets = append(st.bullets, formatInline(info.text))
		case lineNumbered:
			st.flushBullets()
			st.numbered = append(st.numbered, formatInline(info.text))
		default:
			st.flushLists()
			parts := []string{info.text}
			for i+1 < len(lines) && continuesParagraph(lines[i+1]) {
				i++
				parts = append(parts, strings.TrimSpace(lines[i]))
			}
			st.blocks = append(st.blocks, Paragraph{Spans: formatInline(strings.Join(parts, " "))})
		}
	}

	// Unterminated fence: the buffered lines still become a code block.
	if st.inFence {
		st.closeFence()
	}
	st.flushLists()

	return &Document{Title: documentTitle(st.blocks), Blocks: st.blocks}
}

// closeFence emits the buffered lines as one code block, framed by spacers,
// and clears the fence state.
func (st *parserState) closeFence() {
	st.blocks = append(st.blocks,
		Spacer{Height: codeBlockGap},
		CodeBlock{Lines: st.fence, Lang: st.fenceTag},
		Spacer{Height: codeBlockGap},
	)
	st.fence = nil
	st.fenceTag = ""
	st.inFence = false
}

// flushBullets emits the pending bullet buffer as a completed list block.
func (st *parserState) flushBullets() {
	if len(st.bullets) == 0 {
		return
	}
	st.blocks = append(st.blocks, BulletList{Items: st.bullets})
	st.bullets = nil
}

// flushNumbered emits the pending numbered buffer as a completed list block.
func (st *parserState) flushNumbered() {
	if len(st.numbered) == 0 {
		return
	}
	st.blocks = append(st.blocks, NumberedList{Items: st.numbered})
	st.numbered = nil
}

func (st *parserState) flushLists() {
	st.flushBullets()
	st.flushNumbered()
}

// documentTitle returns the text of the first level-1 heading in source
// order, or DefaultTitle.
func documentTitle(blocks []Block) string {
	for _, b := range blocks {
		if h, ok := b.(Heading); ok && h.Level == 1 {
			return spanText(h.Spans)
		}
	}
	return DefaultTitle
}
