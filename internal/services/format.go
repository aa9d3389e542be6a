package services

import (
	"path/filepath"
	"slices"
	"strings"
)

type DocumentFormat int

const (
	FormatUnsupported DocumentFormat = iota
	FormatPDF
	FormatWord
)

var formatsByExtension = map[string]DocumentFormat{
	".pdf":  FormatPDF,
	".doc":  FormatWord,
	".docx": FormatWord,
	".odt":  FormatWord,
	".rtf":  FormatWord,
}

func (f DocumentFormat) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "word"
	default:
		return "unsupported"
	}
}

// DetectFormat classifies a filename by its case-insensitive extension.
// It never looks at file content.
func DetectFormat(filename string) DocumentFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	if format, ok := formatsByExtension[ext]; ok {
		return format
	}
	return FormatUnsupported
}

// SupportedExtensions lists the extensions DetectFormat recognises, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatsByExtension))
	for ext := range formatsByExtension {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
