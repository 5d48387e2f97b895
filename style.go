package mdpdf

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Styler defines one text style used by the renderer: font family, fpdf
// style letters ("B", "I", "U" combinations), size and leading in points,
// ink and background colors, and vertical space around the element.
type Styler struct {
	Font        string
	Style       string
	Size        float64
	Spacing     float64 // added to Size to form the line height
	Color       RGB
	Fill        RGB
	SpaceBefore float64
	SpaceAfter  float64
}

// lineHeight is the vertical advance for one written line of this style.
func (s Styler) lineHeight() float64 {
	return s.Size + s.Spacing
}

// StyleSheet maps every block kind to its visual style.
type StyleSheet struct {
	Title      Styler
	Headings   [6]Styler
	Body       Styler
	ListItem   Styler
	CodeBlock  Styler
	InlineCode Styler

	Accent     RGB     // level-1 heading underline
	ListIndent float64 // points
	CodeIndent float64 // points, left and right
	RuleGap    float64 // vertical gap for horizontal rules, points
	TitleGap   float64 // gap between title element and content, points
}

// DefaultStyleSheet returns the built-in styles: six heading levels with
// decreasing size and distinguishing color, justified 10pt body text,
// shaded monospaced code.
func DefaultStyleSheet() StyleSheet {
	var (
		inkTitle = RGB{0x1a, 0x1a, 0x2e}
		inkH1    = RGB{0x16, 0x21, 0x3e}
		inkH2    = RGB{0x0f, 0x34, 0x60}
		inkH3    = RGB{0x53, 0x34, 0x83}
		accent   = RGB{0xe9, 0x45, 0x60}
		ink      = RGB{0, 0, 0}
		gray4    = RGB{0x30, 0x30, 0x30}
		gray5    = RGB{0x50, 0x50, 0x50}
		gray6    = RGB{0x70, 0x70, 0x70}
		codeBg   = RGB{0xf5, 0xf5, 0xf5}
		inlineBg = RGB{0xf0, 0xf0, 0xf0}
		white    = RGB{0xff, 0xff, 0xff}
	)

	return StyleSheet{
		Title: Styler{Font: "Helvetica", Style: "B", Size: 24, Spacing: 6,
			Color: inkTitle, Fill: white, SpaceAfter: 30},
		Headings: [6]Styler{
			{Font: "Helvetica", Style: "B", Size: 18, Spacing: 4, Color: inkH1, Fill: white, SpaceBefore: 20, SpaceAfter: 12},
			{Font: "Helvetica", Style: "B", Size: 14, Spacing: 3, Color: inkH2, Fill: white, SpaceBefore: 16, SpaceAfter: 8},
			{Font: "Helvetica", Style: "B", Size: 12, Spacing: 3, Color: inkH3, Fill: white, SpaceBefore: 12, SpaceAfter: 6},
			{Font: "Helvetica", Style: "B", Size: 11, Spacing: 2, Color: gray4, Fill: white, SpaceBefore: 10, SpaceAfter: 5},
			{Font: "Helvetica", Style: "B", Size: 10, Spacing: 2, Color: gray5, Fill: white, SpaceBefore: 9, SpaceAfter: 4},
			{Font: "Helvetica", Style: "BI", Size: 10, Spacing: 2, Color: gray6, Fill: white, SpaceBefore: 8, SpaceAfter: 4},
		},
		Body: Styler{Font: "Helvetica", Size: 10, Spacing: 4, Color: ink,
			Fill: white, SpaceBefore: 6, SpaceAfter: 6},
		ListItem: Styler{Font: "Helvetica", Size: 10, Spacing: 4, Color: ink,
			Fill: white, SpaceBefore: 2, SpaceAfter: 2},
		CodeBlock: Styler{Font: "Courier", Size: 8, Spacing: 2, Color: ink,
			Fill: codeBg},
		InlineCode: Styler{Font: "Courier", Size: 9, Spacing: 4, Color: ink,
			Fill: inlineBg},

		Accent:     accent,
		ListIndent: 20,
		CodeIndent: 20,
		RuleGap:    12,
		TitleGap:   20,
	}
}
