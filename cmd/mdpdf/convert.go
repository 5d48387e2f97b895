package main

import (
	"context"
	"errors"
	"fmt"

	"os"

	mdpdf "github.com/ndottil/mdpdf"
	"github.com/ndottil/mdpdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")
)

// filePermissions for generated output: rw-r--r--.
const filePermissions = 0o644

// runConvert reads the input file, runs the conversion pipeline, and writes
// the output atomically. The output path defaults to the input path with
// its extension replaced by .pdf.
func runConvert(ctx context.Context, args []string, flags *cliFlags) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	inputPath := args[0]
	outputPath := fileutil.ReplaceExt(inputPath, ".pdf")
	if len(args) > 1 {
		outputPath = args[1]
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if !flags.quiet {
		fmt.Println("Input: ", inputPath)
		fmt.Println("Output:", outputPath)
	}

	svc := mdpdf.New()
	pdfBytes, err := svc.Convert(ctx, mdpdf.Input{
		Markdown: string(raw),
		Title:    flags.title,
		Author:   flags.author,
		Page: &mdpdf.PageSettings{
			Size:        flags.pageSize,
			Orientation: flags.orientation,
			Margin:      flags.margin,
		},
	})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(outputPath, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	if !flags.quiet {
		fmt.Printf("Generated %s (%d bytes)\n", outputPath, len(pdfBytes))
	}
	return nil
}
