package mdpdf

import (
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-PDF pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor markdownPreprocessor
	renderer     pdfRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStyleSheet).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{styles: DefaultStyleSheet()},
		preprocessor: linePreprocessor{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		s.renderer = newFpdfRenderer(s.cfg.styles)
	}

	return s
}

// Convert runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation between stages.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fm, content, err := splitFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("reading front matter: %w", err)
	}

	doc := Parse(content)
	applyMetadata(doc, fm, input)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdfBytes, err := s.renderer.Render(ctx, doc, input.Page)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	return pdfBytes, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}

// applyMetadata resolves title and author precedence: an explicit Input
// value wins over front matter, which wins over what Parse derived from the
// first level-1 heading.
func applyMetadata(doc *Document, fm frontMatter, input Input) {
	if fm.Title != "" {
		doc.Title = fm.Title
	}
	if input.Title != "" {
		doc.Title = input.Title
	}
	doc.Author = fm.Author
	if input.Author != "" {
		doc.Author = input.Author
	}
}
