package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text extracted from a resume file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		text, err := parseFile(cmd, rt, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

// parseFile applies the same size bound as the HTTP upload path.
func parseFile(cmd *cobra.Command, rt *runtime, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > rt.cfg.Storage.MaxFileSize {
		return "", fmt.Errorf("file too large: %d bytes, maximum is %s", info.Size(), rt.cfg.Storage.MaxFileSizeLabel())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := rt.parser.Parse(cmd.Context(), data, filepath.Base(path))
	if err != nil {
		return "", err
	}

	rt.log.Debug("document parsed", zap.String("file", path), zap.Int("chars", len(text)))
	return text, nil
}
