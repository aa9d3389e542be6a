package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobfluence/api/internal/services"
)

var (
	jobDescription     string
	jobDescriptionFile string
	withTips           bool
)

var matchCmd = &cobra.Command{
	Use:   "match <resume-file>",
	Short: "Score a resume against a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jd, err := loadJobDescription()
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		resumeText, err := parseFile(cmd, rt, args[0])
		if err != nil {
			return err
		}

		gemini, err := services.NewGeminiService(cmd.Context(), rt.cfg.Gemini.APIKey, rt.cfg.Gemini.Model, rt.cfg.Gemini.EmbedModel, rt.log)
		if err != nil {
			return err
		}

		scorer := services.NewSimilarityScorer(gemini, nil, rt.cfg.Scoring.MaxChunkSize, rt.log)
		result, err := scorer.Score(cmd.Context(), resumeText, jd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Match: %.2f%%\n", result.Percentage)

		if !withTips {
			return nil
		}

		tips, err := services.NewAdvisorService(gemini, rt.cfg.Gemini.MaxRetries).Tips(cmd.Context(), resumeText, jd, result.Percentage)
		if err != nil {
			rt.log.Warn("tips unavailable", zap.Error(err))
			return nil
		}
		for _, tip := range tips {
			fmt.Fprintf(out, "- %s\n", tip)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&jobDescription, "job", "", "job description text")
	matchCmd.Flags().StringVar(&jobDescriptionFile, "job-file", "", "read the job description from a file")
	matchCmd.Flags().BoolVar(&withTips, "tips", false, "also print improvement tips")
}

func loadJobDescription() (string, error) {
	if jobDescriptionFile != "" {
		data, err := os.ReadFile(jobDescriptionFile)
		if err != nil {
			return "", fmt.Errorf("read job description: %w", err)
		}
		return string(data), nil
	}
	if strings.TrimSpace(jobDescription) == "" {
		return "", errors.New("either --job or --job-file is required")
	}
	return jobDescription, nil
}
