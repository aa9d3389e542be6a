package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jobfluence/api/internal/services"
)

func parseErr(t *testing.T, parser services.DocumentParser, data []byte, filename string) error {
	t.Helper()
	_, err := parser.Parse(context.Background(), data, filename)
	require.Error(t, err)
	return err
}

func TestDocumentErrorLogsByKind(t *testing.T) {
	parser := services.NewDocumentParser(
		services.NewPDFParserService(stubPDFReader{text: "unused"}),
		services.NewWordParserService(stubContentExtractor{err: errors.New("connection refused")}),
	)

	tests := []struct {
		name     string
		err      error
		level    zapcore.Level
		kind     string
		contains string
	}{
		{"rejected", parseErr(t, parser, []byte("plain"), "notes.txt"), zapcore.InfoLevel, "unsupported format", "unsupported file type"},
		{"extraction", parseErr(t, parser, []byte("doc"), "cv.doc"), zapcore.WarnLevel, "extraction failed", "Tika"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			fe := documentError(zap.New(core), "cv", tt.err, "5MB")

			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Contains(t, fe.Message, tt.contains)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.kind, entry.ContextMap()["kind"])
		})
	}
}

func TestDocumentErrorMapsTooLargeAndUnknown(t *testing.T) {
	fe := documentError(zap.NewNop(), "cv.pdf", services.ErrFileTooLarge, "5MB")
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, fe.Code)
	assert.Equal(t, "File too large. Maximum allowed size is 5MB.", fe.Message)

	fe = documentError(zap.NewNop(), "cv.pdf", errors.New("disk on fire"), "5MB")
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.Equal(t, "failed to process document", fe.Message)
}
