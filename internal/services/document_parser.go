package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentParser is the one entry point for turning an uploaded file into
// text. Handlers must not call the format-specific extractors directly.
type DocumentParser interface {
	Parse(ctx context.Context, data []byte, filename string) (string, error)
}

type documentParser struct {
	pdf  PDFParserService
	word WordParserService
}

func NewDocumentParser(pdf PDFParserService, word WordParserService) DocumentParser {
	return &documentParser{pdf: pdf, word: word}
}

// Parse implements DocumentParser.
func (d *documentParser) Parse(ctx context.Context, data []byte, filename string) (string, error) {
	var (
		text string
		err  error
	)

	switch DetectFormat(filename) {
	case FormatPDF:
		text, err = d.pdf.ExtractText(data)
	case FormatWord:
		text, err = d.word.ExtractText(ctx, data, filename)
	default:
		return "", newParseError(
			ErrUnsupportedFormat,
			filename,
			fmt.Sprintf("unsupported file type %q: upload a PDF or Word document (%s)",
				filepath.Ext(filename), strings.Join(SupportedExtensions(), ", ")),
			nil,
		)
	}

	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Filename == "" {
			pe.Filename = filename
		}
		return "", err
	}

	return text, nil
}
