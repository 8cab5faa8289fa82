// Package extract defines the text-extraction collaborator boundary. PDF
// and image OCR extractors live outside this module; the pipeline only
// depends on the interface.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/healthlens/healthlens/internal/common"
)

// Extractor produces the raw text of a lab report document.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// PlainText extracts text from already-textual report files (.txt, .text,
// or anything a text editor could open). It is the only extractor shipped
// with the CLI.
type PlainText struct{}

// NewPlainText creates a plain-text extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract reads the file's contents. Binary report formats are rejected so
// the pipeline is not fed PDF bytes as if they were text.
func (p *PlainText) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".png", ".jpg", ".jpeg", ".docx":
		return "", fmt.Errorf("%w: %s requires an external extractor", common.ErrExtractionFailed, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	return string(data), nil
}
