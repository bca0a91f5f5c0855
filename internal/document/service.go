// Package document implements the upload validation and conversion
// pipeline sitting between the HTTP boundary and the conversion engine.
package document

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/docdrip/backend/internal/models"
)

// Upload is a caller-owned file resource. The service reads Content and
// always resets it to the start before returning; it never closes it.
type Upload struct {
	Filename string
	Content  io.ReadSeeker
}

// Converter turns raw document bytes into markdown. The filename is a hint
// for format detection. Implementations live outside this package.
type Converter interface {
	Convert(content []byte, filename string) (string, error)
}

// Service validates and processes document uploads. Stateless apart from
// the immutable registry; safe for concurrent use.
type Service struct {
	registry  Registry
	converter Converter
}

// NewService creates a document service backed by the given registry and
// converter.
func NewService(registry Registry, converter Converter) *Service {
	return &Service{
		registry:  registry,
		converter: converter,
	}
}

// Registry returns the format registry the service was built with.
func (s *Service) Registry() Registry {
	return s.registry
}

// Validate checks filename presence and extension support without reading
// any content. It never returns an error for expected bad input.
func (s *Service) Validate(u *Upload) models.ValidationResponse {
	if u == nil || u.Filename == "" {
		msg := "File must be provided with a valid filename."
		return models.ValidationResponse{
			IsValid: false,
			Error:   &msg,
		}
	}

	filename := u.Filename
	supported := s.registry.IsSupported(extensionOf(filename))

	var errMsg *string
	if !supported {
		msg := fmt.Sprintf(
			"Unsupported file format. Supported formats: %s",
			strings.Join(s.registry.Extensions(), ", "),
		)
		errMsg = &msg
	}

	return models.ValidationResponse{
		IsValid:           supported,
		Filename:          &filename,
		IsSupportedFormat: &supported,
		Error:             errMsg,
	}
}

// Process runs the full pipeline: presence and extension checks, content
// read with guaranteed stream reset, empty and size checks, conversion,
// metadata assembly. Failures are either *InvalidInputError or
// *ConversionError.
func (s *Service) Process(u *Upload) (*models.ConvertResponse, error) {
	if u == nil || u.Filename == "" {
		return nil, &InvalidInputError{Message: "Valid file with filename must be provided."}
	}

	// Extension is checked before any byte is read, so content known
	// invalid by name alone costs no I/O.
	ext := extensionOf(u.Filename)
	if !s.registry.IsSupported(ext) {
		return nil, &InvalidInputError{Message: fmt.Sprintf(
			"Unsupported file format: %s. Supported formats: %s",
			ext, strings.Join(s.registry.Extensions(), ", "),
		)}
	}

	content, err := readAndReset(u.Content)
	if err != nil {
		return nil, &ConversionError{
			Message: fmt.Sprintf("Error reading file: %v", err),
			Err:     err,
		}
	}

	if len(content) == 0 {
		return nil, &InvalidInputError{Message: "File content is empty."}
	}

	if int64(len(content)) > s.registry.MaxFileSizeBytes() {
		return nil, &InvalidInputError{Message: fmt.Sprintf(
			"File size (%d bytes) exceeds maximum allowed size (%d bytes).",
			len(content), s.registry.MaxFileSizeBytes(),
		)}
	}

	text, err := s.converter.Convert(content, u.Filename)
	if err != nil {
		return nil, &ConversionError{
			Message: fmt.Sprintf("Error during conversion: %v", err),
			Err:     err,
		}
	}

	markdown := strings.TrimSpace(text)
	if markdown == "" {
		return nil, &ConversionError{Message: "Conversion resulted in empty content."}
	}

	metadata, err := s.fileMetadata(u)
	if err != nil {
		return nil, &ConversionError{
			Message: fmt.Sprintf("Error reading file: %v", err),
			Err:     err,
		}
	}

	return &models.ConvertResponse{
		Markdown: markdown,
		Metadata: metadata,
	}, nil
}

// fileMetadata re-reads the (reset) stream to measure size and derives the
// metadata snapshot. Support is checked against the same registry and
// normalization as Process.
func (s *Service) fileMetadata(u *Upload) (models.FileMetadata, error) {
	content, err := readAndReset(u.Content)
	if err != nil {
		return models.FileMetadata{}, err
	}

	size := int64(len(content))
	ext := extensionOf(u.Filename)

	return models.FileMetadata{
		Filename:      u.Filename,
		SizeBytes:     size,
		SizeMB:        math.Round(float64(size)/(1024*1024)*100) / 100,
		FileExtension: strings.TrimPrefix(ext, "."),
		IsSupported:   s.registry.IsSupported(ext),
	}, nil
}

// readAndReset reads r to the end and seeks back to the start on every exit
// path, keeping the upload re-readable downstream. A reset failure after a
// clean read is reported; it never masks a read failure.
func readAndReset(r io.ReadSeeker) (data []byte, err error) {
	if r == nil {
		return nil, fmt.Errorf("upload has no content stream")
	}

	defer func() {
		if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil && err == nil {
			err = fmt.Errorf("reset stream: %w", seekErr)
		}
	}()

	return io.ReadAll(r)
}
