package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jobfluence/api/internal/logger"
	"jobfluence/api/internal/models"
	"jobfluence/api/internal/services"
)

type MatchHandler struct {
	parser        services.DocumentParser
	uploadService services.UploadService
	scorer        services.SimilarityScorer
	advisor       services.AdvisorService
	maxSizeLabel  string
	log           *zap.Logger
}

// NewMatchHandler wires the match endpoints. advisor may be nil, in which
// case no tips are produced.
func NewMatchHandler(
	parser services.DocumentParser,
	uploadService services.UploadService,
	scorer services.SimilarityScorer,
	advisor services.AdvisorService,
	maxSizeLabel string,
	log *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		parser:        parser,
		uploadService: uploadService,
		scorer:        scorer,
		advisor:       advisor,
		maxSizeLabel:  maxSizeLabel,
		log:           log,
	}
}

// HandleMatch handles POST /match
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return fiber.NewError(fiber.StatusBadRequest, "job_description is required")
	}

	resumeText, doc, err := readAndParse(c, h.uploadService, h.parser, h.maxSizeLabel, h.log)
	if err != nil {
		return err
	}

	result, tips, err := h.match(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		return err
	}

	return c.JSON(models.MatchResponse{
		MatchPercentage: result.Percentage,
		Filename:        doc.Filename,
		Tips:            tips,
	})
}

// HandleDemoForm handles GET /demo/
func (h *MatchHandler) HandleDemoForm(c *fiber.Ctx) error {
	return c.Render("demo", demoView())
}

// HandleDemoMatch handles POST /demo/match and re-renders the form with the
// result, or with the error message on failure.
func (h *MatchHandler) HandleDemoMatch(c *fiber.Ctx) error {
	view := demoView()
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	view["JobDescription"] = jobDescription

	renderError := func(err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		view["Error"] = err.Error()
		return c.Status(code).Render("demo", view)
	}

	if jobDescription == "" {
		return renderError(fiber.NewError(fiber.StatusBadRequest, "job_description is required"))
	}

	resumeText, _, err := readAndParse(c, h.uploadService, h.parser, h.maxSizeLabel, h.log)
	if err != nil {
		return renderError(err)
	}

	result, tips, err := h.match(c.UserContext(), resumeText, jobDescription)
	if err != nil {
		return renderError(err)
	}

	view["HasMatch"] = true
	view["ResumeText"] = resumeText
	view["MatchPercentage"] = result.Percentage
	view["Tips"] = tips

	return c.Render("demo", view)
}

func (h *MatchHandler) match(ctx context.Context, resumeText, jobDescription string) (*models.MatchResult, []string, error) {
	result, err := h.scorer.Score(ctx, resumeText, jobDescription)
	if err != nil {
		if errors.Is(err, services.ErrEmptyJobDescription) {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		h.log.Error("similarity scoring failed", zap.Error(err))
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "failed to compute match score")
	}

	h.log.Debug("match computed",
		zap.Float64("match_percentage", result.Percentage),
		zap.String("job_description", logger.Truncate(jobDescription, 80)),
	)

	if h.advisor == nil {
		return result, nil, nil
	}

	tips, err := h.advisor.Tips(ctx, resumeText, jobDescription, result.Percentage)
	if err != nil {
		h.log.Warn("tips unavailable", zap.Error(err))
		return result, nil, nil
	}

	return result, tips, nil
}

func demoView() fiber.Map {
	return fiber.Map{
		"HasMatch":        false,
		"MatchPercentage": 0.0,
		"ResumeText":      "",
		"JobDescription":  "",
		"Tips":            []string(nil),
		"Error":           "",
		"Year":            time.Now().Year(),
	}
}
