package main

import (
	"os"

	flag "github.com/spf13/pflag"

	mdpdf "github.com/ndottil/mdpdf"
)

// cliFlags holds all flags for the mdpdf command.
type cliFlags struct {
	title       string
	author      string
	pageSize    string
	orientation string
	margin      float64
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command line flags and returns the positional args:
// <input.md> [output.pdf].
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdpdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from front matter or first H1)")
	fs.StringVar(&f.author, "author", "", "document author metadata")
	fs.StringVarP(&f.pageSize, "page-size", "p", mdpdf.PageSizeLetter, "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", mdpdf.OrientationPortrait, "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", mdpdf.DefaultMargin, "page margin in inches (0.25-3.0)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show runtime details")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
