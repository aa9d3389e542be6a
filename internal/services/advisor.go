package services

import (
	"context"
	"fmt"
)

const maxTips = 5

// AdvisorService suggests resume improvements for a job description.
type AdvisorService interface {
	Tips(ctx context.Context, resumeText, jobDescription string, matchPercentage float64) ([]string, error)
}

type advisorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewAdvisorService(generator TextGenerator, maxRetries int) AdvisorService {
	return &advisorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// Tips implements AdvisorService.
func (a *advisorService) Tips(ctx context.Context, resumeText, jobDescription string, matchPercentage float64) ([]string, error) {
	prompt := a.promptBuilder.BuildTipsPrompt(resumeText, jobDescription, matchPercentage)

	response, err := a.generator.GenerateTextWithRetry(ctx, prompt, 0.4, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tips: %w", err)
	}

	tips := ParseTips(response, maxTips)
	if len(tips) == 0 {
		return nil, fmt.Errorf("no tips in model response")
	}

	return tips, nil
}
