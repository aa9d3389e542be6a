package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	text, ok := normalizeText(" \tÅngström\n")
	assert.True(t, ok)
	assert.Equal(t, "Ångström", text)

	_, ok = normalizeText(" \n\t ")
	assert.False(t, ok)

	_, ok = normalizeText("")
	assert.False(t, ok)
}

func TestCleanText(t *testing.T) {
	in := "  Jane Doe  \n\n\n  Backend Engineer\n   \nGo, Postgres  "
	assert.Equal(t, "Jane Doe\nBackend Engineer\nGo, Postgres", CleanText(in))
	assert.Equal(t, "", CleanText(" \n "))
}
