package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/utilibill/bills-tracker/constants"
)

// FileExtractor extracts plain text from bill documents on disk. PDFs use the
// embedded text layer; .txt files pass through unchanged. A corrupt file is a
// per-document error and the caller skips that document.
type FileExtractor struct {
	Log *slog.Logger
}

func NewFileExtractor(log *slog.Logger) *FileExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &FileExtractor{Log: log}
}

func (e *FileExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}
	start := time.Now()
	format := constants.MapExtToFormat(filepath.Ext(path))
	switch format {
	case "PDF":
		res, err := extractPDF(path)
		if err != nil {
			e.Log.Error("extract.failed", "path", path, "error", err)
			return res, err
		}
		res.Duration = time.Since(start)
		e.Log.Info("extract.ok", "path", path, "pages", res.Pages, "bytes", len(res.Text))
		return res, nil
	case "TXT":
		b, err := os.ReadFile(path)
		if err != nil {
			e.Log.Error("extract.failed", "path", path, "error", err)
			return TextExtractionResult{}, fmt.Errorf("read text file: %w", err)
		}
		return TextExtractionResult{
			Text:       string(b),
			Pages:      1,
			SourceType: "TXT",
			Method:     "txt-passthrough",
			Duration:   time.Since(start),
		}, nil
	default:
		return TextExtractionResult{}, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
}

func extractPDF(path string) (TextExtractionResult, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	rc, err := r.GetPlainText()
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return TextExtractionResult{}, fmt.Errorf("read pdf text: %w", err)
	}
	return TextExtractionResult{
		Text:       buf.String(),
		Pages:      r.NumPage(),
		SourceType: "PDF",
		Method:     "pdf-text",
	}, nil
}
