package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf [flags] <input.md> [output.pdf]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.md      Markdown file to convert")
	fmt.Fprintln(w, "  output.pdf    Output path (default: input with .pdf extension)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>         Document title (\"\" = auto from front matter or first H1)")
	fmt.Fprintln(w, "      --author <s>        Document author metadata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>     Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>   Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>        Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show runtime details")
	fmt.Fprintln(w, "      --version           Show version and exit")
}
