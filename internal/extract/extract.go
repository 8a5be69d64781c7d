package extract

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/ledongthuc/pdf"

	"jobapp-backend/internal/shared/telemetry"
)

// ErrEmptyDocument is returned when the payload has no bytes to parse.
var ErrEmptyDocument = errors.New("empty document")

// Text extracts plain text from PDF bytes using github.com/ledongthuc/pdf.
func Text(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BestEffortText never fails past this boundary: extraction errors are logged
// and collapse to an empty string, which callers treat as "no resume text".
func BestEffortText(ctx context.Context, data []byte) string {
	text, err := Text(ctx, data)
	if err != nil {
		telemetry.Warn("extract.failed", map[string]any{
			"size_bytes": len(data),
			"error":      err.Error(),
		})
		return ""
	}
	return text
}
