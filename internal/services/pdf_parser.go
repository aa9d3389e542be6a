package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfSignature = []byte("%PDF-")

// ErrMalformedPDF is returned by a PDFTextReader when the document structure
// itself is broken (bad xref table, truncated stream, unreadable pages).
var ErrMalformedPDF = errors.New("malformed pdf")

// PDFTextReader runs layout-aware text extraction over a PDF buffer.
type PDFTextReader interface {
	ReadText(data []byte) (string, error)
}

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
}

type pdfParserService struct {
	reader PDFTextReader
}

func NewPDFParserService(reader PDFTextReader) PDFParserService {
	if reader == nil {
		reader = NewLayoutTextReader()
	}
	return &pdfParserService{reader: reader}
}

// ExtractText implements PDFParserService.
func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", newParseError(ErrEmptyInput, "", "empty PDF file: no text extracted", nil)
	}

	// Cheap check before handing the buffer to the layout reader.
	if !bytes.HasPrefix(data, pdfSignature) {
		return "", newParseError(ErrInvalidFormat, "", "invalid PDF file: missing PDF header", nil)
	}

	raw, err := p.read(data)
	if err != nil {
		if errors.Is(err, ErrMalformedPDF) {
			return "", newParseError(ErrCorruptFile, "", "corrupt PDF file: cannot extract text", err)
		}
		return "", newParseError(ErrExtraction, "", "failed to extract text from PDF file", err)
	}

	text, ok := normalizeText(raw)
	if !ok {
		return "", newParseError(ErrEmptyContent, "", "empty PDF file: no text extracted", nil)
	}

	return text, nil
}

// read calls the layout reader and turns a library panic into an error.
func (p *pdfParserService) read(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()
	return p.reader.ReadText(data)
}

type layoutTextReader struct{}

// NewLayoutTextReader returns a PDFTextReader backed by ledongthuc/pdf that
// rebuilds each page line by line from positioned text runs.
func NewLayoutTextReader() PDFTextReader {
	return layoutTextReader{}
}

func (layoutTextReader) ReadText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPDF, err)
	}

	var textBuilder strings.Builder
	var pageErr error
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// Keep going; other pages may still be readable.
			if pageErr == nil {
				pageErr = fmt.Errorf("page %d: %w", pageIndex, err)
			}
			continue
		}

		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
		textBuilder.WriteString("\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" && pageErr != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPDF, pageErr)
	}

	return text, nil
}
