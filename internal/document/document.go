// Package document converts uploaded files into plain text. The supported
// format set is fixed (txt, md, pdf, docx, pptx, xlsx), discriminated by
// filename extension; anything else is a conversion failure, never a silent
// skip.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// File is an opaque upload: a name and its binary payload.
type File struct {
	Name string
	Data []byte
}

// Ext returns the lower-cased extension without the dot.
func (f File) Ext() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
}

// Converter turns a file into UTF-8 text or fails with a *ConvertError.
type Converter interface {
	Convert(ctx context.Context, f File) (string, error)
}

// ConvertError carries the filename alongside the cause so batch failures
// can be reported per file.
type ConvertError struct {
	Filename string
	Cause    error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("gagal memproses %s: %v", e.Filename, e.Cause)
}

func (e *ConvertError) Unwrap() error { return e.Cause }
