package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestChunkTextShortTextIsOneChunk(t *testing.T) {
	chunks := NewTextChunker().ChunkText("Senior Go engineer.\n\nLoves distributed systems.", 1000)
	assert.Equal(t, []string{"Senior Go engineer.\n\nLoves distributed systems."}, chunks)
}

func TestChunkTextRespectsLimit(t *testing.T) {
	para := strings.Repeat("Built resilient payment APIs in Go. ", 40)
	text := strings.Join([]string{para, para, "Short closing paragraph."}, "\n\n")

	chunks := NewTextChunker().ChunkText(text, 200)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 200)
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkTextSplitsOnRuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 250)

	chunks := NewTextChunker().ChunkText(text, 100)

	assert.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk))
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkTextDeterministic(t *testing.T) {
	text := strings.Repeat("Kubernetes operator. Terraform modules! Observability? ", 30)
	chunker := NewTextChunker()

	assert.Equal(t, chunker.ChunkText(text, 120), chunker.ChunkText(text, 120))
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, NewTextChunker().ChunkText(" \n\n ", 100))
}

func TestSplitIntoSentences(t *testing.T) {
	got := splitIntoSentences("One. Two! Three? trailing")
	assert.Equal(t, []string{"One.", "Two!", "Three?", "trailing"}, got)
}
