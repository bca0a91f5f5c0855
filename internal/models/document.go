package models

// FileMetadata is a derived snapshot of an uploaded file. SizeMB is
// SizeBytes / 1,048,576 rounded to two decimal places. FileExtension is the
// lowercase suffix after the final dot, without the dot, empty if none.
type FileMetadata struct {
	Filename      string  `json:"filename"`
	SizeBytes     int64   `json:"size_bytes"`
	SizeMB        float64 `json:"size_mb"`
	FileExtension string  `json:"file_extension"`
	IsSupported   bool    `json:"is_supported"`
}

// ConvertResponse is the result of a successful document conversion.
type ConvertResponse struct {
	Markdown string       `json:"markdown"`
	Metadata FileMetadata `json:"metadata"`
}

// ValidationResponse describes the outcome of a lightweight pre-check.
// Filename, IsSupportedFormat and Error are null when not applicable.
type ValidationResponse struct {
	IsValid           bool    `json:"is_valid"`
	Filename          *string `json:"filename"`
	IsSupportedFormat *bool   `json:"is_supported_format"`
	Error             *string `json:"error"`
}

// SupportedFormatsResponse lists the accepted extensions and the upload
// size ceiling.
type SupportedFormatsResponse struct {
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSizeMB    float64  `json:"max_file_size_mb"`
}

// OperationalStatus is the response of the API version probe.
type OperationalStatus struct {
	Operational bool `json:"operational"`
}
