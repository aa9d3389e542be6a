package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobfluence/api/internal/config"
	"jobfluence/api/internal/services"
)

type fixedPDFReader string

func (f fixedPDFReader) ReadText(data []byte) (string, error) { return string(f), nil }

func testRuntime(maxFileSize int64) *runtime {
	return &runtime{
		cfg: &config.Config{Storage: config.StorageConfig{MaxFileSize: maxFileSize}},
		log: zap.NewNop(),
		parser: services.NewDocumentParser(
			services.NewPDFParserService(fixedPDFReader("Staff engineer, Go and Postgres")),
			services.NewWordParserService(nil),
		),
	}
}

func testCommand() *cobra.Command {
	c := &cobra.Command{}
	c.SetContext(context.Background())
	return c
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, "resume.pdf", []byte("%PDF-1.4 body"))

	text, err := parseFile(testCommand(), testRuntime(1024), path)
	require.NoError(t, err)
	assert.Equal(t, "Staff engineer, Go and Postgres", text)
}

func TestParseFileTooLarge(t *testing.T) {
	path := writeFile(t, "resume.pdf", []byte("%PDF-1.4 body"))

	_, err := parseFile(testCommand(), testRuntime(4), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file too large")
}

func TestParseFileUnsupported(t *testing.T) {
	path := writeFile(t, "resume.txt", []byte("plain"))

	_, err := parseFile(testCommand(), testRuntime(1024), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnsupportedFormat)
}

func TestLoadJobDescription(t *testing.T) {
	t.Cleanup(func() {
		jobDescription = ""
		jobDescriptionFile = ""
	})

	_, err := loadJobDescription()
	assert.Error(t, err)

	jobDescription = "Platform engineer"
	jd, err := loadJobDescription()
	require.NoError(t, err)
	assert.Equal(t, "Platform engineer", jd)

	jobDescriptionFile = writeFile(t, "jd.txt", []byte("SRE with Kubernetes"))
	jd, err = loadJobDescription()
	require.NoError(t, err)
	assert.Equal(t, "SRE with Kubernetes", jd)
}
