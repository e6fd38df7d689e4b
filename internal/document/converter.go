package document

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextConverter is the default Converter. It dispatches on the file
// extension and returns *ConvertError on any failure.
type TextConverter struct{}

// NewConverter creates a new document converter.
func NewConverter() *TextConverter {
	return &TextConverter{}
}

// Supported reports whether the extension (without dot, any case) is handled.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case "txt", "md", "pdf", "docx", "pptx", "xlsx":
		return true
	}
	return false
}

// Convert extracts the text content of f.
func (c *TextConverter) Convert(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ConvertError{Filename: f.Name, Cause: err}
	}

	var (
		text string
		err  error
	)
	switch f.Ext() {
	case "txt", "md":
		text, err = plainText(f.Data)
	case "pdf":
		text, err = pdfText(f.Data)
	case "docx":
		text, err = docxText(f.Data)
	case "pptx":
		text, err = pptxText(f.Data)
	case "xlsx":
		text, err = xlsxText(f.Data)
	default:
		err = fmt.Errorf("tipe file .%s tidak didukung", f.Ext())
	}
	if err != nil {
		return "", &ConvertError{Filename: f.Name, Cause: err}
	}
	return strings.TrimSpace(text), nil
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file teks bukan UTF-8 yang valid")
	}
	return string(data), nil
}
