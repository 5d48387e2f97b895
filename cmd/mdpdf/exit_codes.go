package main

import (
	"errors"

	mdpdf "github.com/ndottil/mdpdf"
)

// Exit codes for the mdpdf CLI.
// Follows Unix conventions: 0=success, 1=general failure, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Missing input, generation or write failure
	ExitUsage   = 2 // Invalid flags or validation
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, mdpdf.ErrEmptyMarkdown) ||
		errors.Is(err, mdpdf.ErrInvalidPageSize) ||
		errors.Is(err, mdpdf.ErrInvalidOrientation) ||
		errors.Is(err, mdpdf.ErrInvalidMargin) {
		return ExitUsage
	}

	// Everything else, including missing input files and rendering
	// failures, is a general failure (exit 1).
	return ExitGeneral
}
