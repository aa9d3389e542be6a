package services

import (
	"strings"
	"unicode/utf8"
)

// TextChunker splits text that is too long for one embedding call.
type TextChunker interface {
	ChunkText(text string, maxChunkSize int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText implements TextChunker. Chunks hold at most maxChunkSize runes,
// break on paragraphs, then sentences, then raw runes, and never overlap.
func (tc *textChunker) ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	add := func(piece, sep string) {
		pieceLen := utf8.RuneCountInString(piece)
		sepLen := utf8.RuneCountInString(sep)
		if currentLen > 0 && currentLen+sepLen+pieceLen > maxChunkSize {
			flush()
		}
		if currentLen > 0 {
			current.WriteString(sep)
			currentLen += sepLen
		}
		current.WriteString(piece)
		currentLen += pieceLen
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			if utf8.RuneCountInString(sentence) <= maxChunkSize {
				add(sentence, " ")
				continue
			}
			for _, piece := range splitRunes(sentence, maxChunkSize) {
				add(piece, " ")
			}
		}
	}

	flush()
	return chunks
}

// splitIntoSentences keeps the terminating punctuation with each sentence.
func splitIntoSentences(text string) []string {
	var result []string
	start := 0

	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				result = append(result, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		result = append(result, s)
	}

	return result
}

func splitRunes(text string, size int) []string {
	runes := []rune(text)
	pieces := make([]string, 0, len(runes)/size+1)
	for len(runes) > 0 {
		n := size
		if len(runes) < n {
			n = len(runes)
		}
		pieces = append(pieces, string(runes[:n]))
		runes = runes[n:]
	}
	return pieces
}
