package document

import (
	"sort"
	"strings"
)

// DefaultMaxFileSize is the upload size ceiling in bytes (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// defaultExtensions is the fixed set of formats the conversion engine
// accepts. Dot-prefixed and lowercase.
var defaultExtensions = []string{
	".pdf", ".docx", ".doc", ".txt", ".md", ".html", ".htm",
	".xlsx", ".xls", ".pptx", ".ppt", ".rtf",
}

// Registry holds the supported extension set and the size limit. It is an
// immutable value constructed once and shared read-only across requests.
type Registry struct {
	extensions  map[string]struct{}
	sorted      []string
	maxFileSize int64
}

// NewRegistry builds a registry from the given dot-prefixed extensions and
// size limit. Extensions are normalized to lowercase; lookups normalize the
// input rather than varying the stored set.
func NewRegistry(extensions []string, maxFileSize int64) Registry {
	set := make(map[string]struct{}, len(extensions))
	sorted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = normalizeExtension(ext)
		if ext == "" {
			continue
		}
		if _, ok := set[ext]; ok {
			continue
		}
		set[ext] = struct{}{}
		sorted = append(sorted, ext)
	}
	sort.Strings(sorted)

	return Registry{
		extensions:  set,
		sorted:      sorted,
		maxFileSize: maxFileSize,
	}
}

// DefaultRegistry returns the registry used in production.
func DefaultRegistry() Registry {
	return NewRegistry(defaultExtensions, DefaultMaxFileSize)
}

// IsSupported reports whether the extension is in the registry.
// The check is case-insensitive and accepts the extension with or without
// the leading dot.
func (r Registry) IsSupported(ext string) bool {
	_, ok := r.extensions[normalizeExtension(ext)]
	return ok
}

// Extensions returns the supported extensions in lexicographic order.
// The returned slice is a copy.
func (r Registry) Extensions() []string {
	out := make([]string, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (r Registry) MaxFileSizeBytes() int64 {
	return r.maxFileSize
}

// MaxFileSizeMB returns the upload size limit in mebibytes.
func (r Registry) MaxFileSizeMB() float64 {
	return float64(r.maxFileSize) / (1024 * 1024)
}

// normalizeExtension lowercases ext and ensures a leading dot. Empty input
// stays empty.
func normalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// extensionOf derives the dot-prefixed lowercase extension from a filename,
// splitting on the final dot. Returns "" when the name has no dot.
func extensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}
