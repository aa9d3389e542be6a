package services

import (
	"fmt"
	"regexp"
	"strings"
)

var numberedBullet = regexp.MustCompile(`^\d+[.)]\s*`)

type PromptBuilder struct {
	maxInputRunes int
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{maxInputRunes: 12000}
}

// BuildTipsPrompt asks for short, concrete resume improvements for one job.
func (pb *PromptBuilder) BuildTipsPrompt(resumeText, jobDescription string, matchPercentage float64) string {
	return fmt.Sprintf(`You are an experienced technical recruiter helping a candidate tailor their resume.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

The resume currently scores %.2f%% semantic similarity against the job description.

Give at most 5 specific, actionable tips that would make this resume a better match for this job.
Reference skills or experience from the job description that the resume is missing or under-emphasises.
Return one tip per line, each starting with "- ". Do not add an introduction or a conclusion.`,
		pb.truncate(CleanText(jobDescription)), pb.truncate(CleanText(resumeText)), matchPercentage)
}

func (pb *PromptBuilder) truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= pb.maxInputRunes {
		return text
	}
	return string(runes[:pb.maxInputRunes]) + "..."
}

// ParseTips extracts bullet lines from a model response. Headings such as
// "Here are some tips:" are skipped and list markers are removed.
func ParseTips(response string, limit int) []string {
	var tips []string

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		line = numberedBullet.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(strings.TrimRight(line, "*"), ":") {
			continue
		}

		tips = append(tips, line)
		if len(tips) == limit {
			break
		}
	}

	return tips
}
