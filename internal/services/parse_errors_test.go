package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMatchesExactlyOneKind(t *testing.T) {
	for _, kind := range parseErrorKinds {
		err := newParseError(kind, "resume.pdf", "message", errors.New("cause"))

		matched := 0
		for _, other := range parseErrorKinds {
			if errors.Is(err, other) {
				matched++
			}
		}

		assert.Equal(t, 1, matched, kind.Error())
		assert.Equal(t, kind, ParseErrorKind(err))
		assert.True(t, IsParseError(err))
	}
}

func TestParseErrorWrapped(t *testing.T) {
	cause := errors.New("xref table broken")
	err := fmt.Errorf("handler: %w", newParseError(ErrCorruptFile, "cv.pdf", "corrupt PDF file: cannot extract text", cause))

	assert.True(t, IsParseError(err))
	assert.ErrorIs(t, err, ErrCorruptFile)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCorruptFile, ParseErrorKind(err))
}

func TestParseErrorDetail(t *testing.T) {
	err := newParseError(ErrExtraction, "cv.doc", "error processing the document through Tika", errors.New("connection refused"))

	assert.Equal(t, "error processing the document through Tika", err.Error())
	assert.Equal(t, `error processing the document through Tika (file "cv.doc"): connection refused`, err.Detail())
}

func TestNonParseError(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, IsParseError(err))
	assert.Nil(t, ParseErrorKind(err))
}
