package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextSource extracts plain text from a previously generated report file.
// Implementations concatenate pages with a trailing newline per page, the
// same shape the field patterns and the rating scan expect.
type TextSource interface {
	Extract(ctx context.Context, r io.ReaderAt, size int64) (string, error)
}

// PDFSource reads text out of PDF files. Layout and table structure are
// lost; downstream parsing works on the flattened text stream.
type PDFSource struct{}

func (PDFSource) Extract(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	rd, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= rd.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := rd.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
