package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

type stubPDFReader struct {
	text   string
	err    error
	panic  any
	called bool
}

func (s *stubPDFReader) ReadText(data []byte) (string, error) {
	s.called = true
	if s.panic != nil {
		panic(s.panic)
	}
	return s.text, s.err
}

func TestPDFParserExtractsText(t *testing.T) {
	parser := NewPDFParserService(nil)

	text, err := parser.ExtractText(buildPDF("web infrastructure engineer", "Go and Kubernetes"))
	require.NoError(t, err)

	assert.Contains(t, text, "web infrastructure engineer")
	assert.Contains(t, text, "Go and Kubernetes")
	assert.Equal(t, text, norm.NFC.String(text))
}

func TestPDFParserEmptyInput(t *testing.T) {
	reader := &stubPDFReader{text: "unused"}
	parser := NewPDFParserService(reader)

	_, err := parser.ExtractText(nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "no text extracted")
	assert.False(t, reader.called)
}

func TestPDFParserRejectsMissingHeader(t *testing.T) {
	reader := &stubPDFReader{text: "unused"}
	parser := NewPDFParserService(reader)

	_, err := parser.ExtractText([]byte("Not a PDF file"))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), "header")
	assert.False(t, reader.called, "layout reader must not run without a PDF header")
}

func TestPDFParserCorruptFile(t *testing.T) {
	t.Run("library", func(t *testing.T) {
		parser := NewPDFParserService(nil)

		_, err := parser.ExtractText([]byte("%PDF-1.4\nthis is not a real document"))
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrCorruptFile)
		assert.NotErrorIs(t, err, ErrExtraction)
	})

	t.Run("reader", func(t *testing.T) {
		parser := NewPDFParserService(&stubPDFReader{err: ErrMalformedPDF})

		_, err := parser.ExtractText([]byte("%PDF- broken"))
		assert.ErrorIs(t, err, ErrCorruptFile)
		assert.Contains(t, err.Error(), "corrupt PDF file")
	})
}

func TestPDFParserUnexpectedFailure(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		parser := NewPDFParserService(&stubPDFReader{err: errors.New("out of memory")})

		_, err := parser.ExtractText([]byte("%PDF- content"))
		assert.ErrorIs(t, err, ErrExtraction)
		assert.NotErrorIs(t, err, ErrCorruptFile)
	})

	t.Run("panic", func(t *testing.T) {
		parser := NewPDFParserService(&stubPDFReader{panic: "index out of range"})

		_, err := parser.ExtractText([]byte("%PDF- content"))
		assert.ErrorIs(t, err, ErrExtraction)
	})
}

func TestPDFParserEmptyContent(t *testing.T) {
	parser := NewPDFParserService(&stubPDFReader{text: " \n\t\n "})

	_, err := parser.ExtractText([]byte("%PDF- scanned image"))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Contains(t, err.Error(), "no text extracted")
}

func TestPDFParserNormalizes(t *testing.T) {
	decomposed := "  Re\u0301sume\u0301 de Gene\u0300ve \n"
	parser := NewPDFParserService(&stubPDFReader{text: decomposed})

	text, err := parser.ExtractText([]byte("%PDF- content"))
	require.NoError(t, err)

	assert.Equal(t, "R\u00e9sum\u00e9 de Gen\u00e8ve", text)
	assert.True(t, norm.NFC.IsNormalString(text))
}

func TestLayoutTextReaderMalformed(t *testing.T) {
	_, err := NewLayoutTextReader().ReadText([]byte("%PDF-1.7\n%%EOF"))
	assert.ErrorIs(t, err, ErrMalformedPDF)
}
