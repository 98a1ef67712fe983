package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text. The extraction engine never sees
// the binary document; it receives the text this stage produces.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "TXT"
	Method     string // "pdf-text" | "txt-passthrough"
	Duration   time.Duration
	Warnings   []string
}
