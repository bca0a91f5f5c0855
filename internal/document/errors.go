package document

import "errors"

// InvalidInputError marks caller-correctable problems: missing file,
// unsupported format, empty or oversized content. The API layer maps it to
// a 400 response.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// ConversionError marks server-side faults: read failures, converter
// errors, empty conversion output. The API layer maps it to a 500 response.
type ConversionError struct {
	Message string
	Err     error
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsConversionFailure reports whether err is a ConversionError.
func IsConversionFailure(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}
