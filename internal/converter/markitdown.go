// Package converter adapts the markitdown engine to the document.Converter
// port.
package converter

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	markitdown "github.com/nicholasgasior/markitdown-go"
)

// MarkItDown converts documents to markdown using the markitdown engine.
type MarkItDown struct {
	engine *markitdown.MarkItDown
}

// New creates a converter with the engine's built-in format support.
func New() *MarkItDown {
	return &MarkItDown{
		engine: markitdown.New(),
	}
}

// Convert converts content to markdown. The filename hint drives format
// dispatch; the detected MIME type covers files whose extension alone is
// ambiguous (e.g. .doc vs .docx containers).
func (m *MarkItDown) Convert(content []byte, filename string) (string, error) {
	info := markitdown.StreamInfo{
		Filename:  filename,
		Extension: strings.ToLower(filepath.Ext(filename)),
		MIMEType:  mimetype.Detect(content).String(),
	}

	result, err := m.engine.ConvertReader(bytes.NewReader(content), info)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", fmt.Errorf("converter returned no result")
	}

	return result.Markdown, nil
}
