package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobfluence/api/internal/config"
	"jobfluence/api/internal/logger"
	"jobfluence/api/internal/services"
)

const app = "jobfluence"

var (
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "jobfluence extracts resume text and scores it against a job description",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(matchCmd)
}

// runtime bundles what every subcommand needs.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	parser services.DocumentParser
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(jsonLog || cfg.Log.JSON, debug || cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	parser := services.NewDocumentParser(
		services.NewPDFParserService(nil),
		services.NewWordParserService(services.NewTikaExtractor(cfg.Tika.URL, cfg.Tika.Timeout)),
	)

	return &runtime{cfg: cfg, log: log, parser: parser}, nil
}
