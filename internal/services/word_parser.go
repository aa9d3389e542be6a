package services

import (
	"bytes"
	"context"
	"fmt"
)

type WordParserService interface {
	ExtractText(ctx context.Context, data []byte, filename string) (string, error)
}

type wordParserService struct {
	extractor ContentExtractor
}

// NewWordParserService handles DOC, DOCX, ODT and RTF by delegating to a
// single content extractor. filename is only used in error diagnostics.
func NewWordParserService(extractor ContentExtractor) WordParserService {
	return &wordParserService{extractor: extractor}
}

// ExtractText implements WordParserService.
func (w *wordParserService) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", newParseError(ErrEmptyInput, filename, "empty Word document: no content provided", nil)
	}

	content, err := w.extract(ctx, data)
	if err != nil {
		return "", newParseError(ErrExtraction, filename, "error processing the document through Tika", err)
	}

	text, ok := normalizeText(content)
	if !ok {
		return "", newParseError(ErrEmptyContent, filename, "empty Word document: no text extracted", nil)
	}

	return text, nil
}

func (w *wordParserService) extract(ctx context.Context, data []byte) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content extractor panic: %v", r)
		}
	}()
	return w.extractor.ExtractContent(ctx, bytes.NewReader(data))
}
