package services

import (
	"errors"
	"fmt"
)

// Parse error kinds. Every failure returned by DocumentParser and the
// extractors matches exactly one of these with errors.Is.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrCorruptFile       = errors.New("corrupt file")
	ErrEmptyContent      = errors.New("empty content")
	ErrExtraction        = errors.New("extraction failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var parseErrorKinds = []error{
	ErrEmptyInput,
	ErrInvalidFormat,
	ErrCorruptFile,
	ErrEmptyContent,
	ErrExtraction,
	ErrUnsupportedFormat,
}

// ParseError is the single error type produced by document extraction.
// Message is safe to show to clients; Err keeps the library cause for logs.
type ParseError struct {
	Kind     error
	Filename string
	Message  string
	Err      error
}

func newParseError(kind error, filename, message string, cause error) *ParseError {
	return &ParseError{Kind: kind, Filename: filename, Message: message, Err: cause}
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Detail is the diagnostic form of the error, including filename and cause.
func (e *ParseError) Detail() string {
	detail := e.Message
	if e.Filename != "" {
		detail = fmt.Sprintf("%s (file %q)", detail, e.Filename)
	}
	if e.Err != nil {
		detail = fmt.Sprintf("%s: %v", detail, e.Err)
	}
	return detail
}

// IsParseError reports whether err belongs to the document parsing taxonomy.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseErrorKind returns the kind sentinel of err, or nil if err is not a parse error.
func ParseErrorKind(err error) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	for _, kind := range parseErrorKinds {
		if pe.Kind == kind {
			return kind
		}
	}
	return nil
}
