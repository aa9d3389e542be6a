package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jobfluence/api/internal/models"
	"jobfluence/api/internal/services"
)

type ParserHandler struct {
	parser        services.DocumentParser
	uploadService services.UploadService
	maxSizeLabel  string
	log           *zap.Logger
}

func NewParserHandler(
	parser services.DocumentParser,
	uploadService services.UploadService,
	maxSizeLabel string,
	log *zap.Logger,
) *ParserHandler {
	return &ParserHandler{
		parser:        parser,
		uploadService: uploadService,
		maxSizeLabel:  maxSizeLabel,
		log:           log,
	}
}

// HandleExtract handles POST /parser/extract
func (h *ParserHandler) HandleExtract(c *fiber.Ctx) error {
	text, _, err := readAndParse(c, h.uploadService, h.parser, h.maxSizeLabel, h.log)
	if err != nil {
		return err
	}

	return c.JSON(models.ExtractResponse{ExtractedText: text})
}

// readAndParse pulls the "file" form field and runs it through the parser.
// Returned errors are *fiber.Error values ready for the error handler.
func readAndParse(
	c *fiber.Ctx,
	uploadService services.UploadService,
	parser services.DocumentParser,
	maxSizeLabel string,
	log *zap.Logger,
) (string, *models.RawDocument, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	doc, err := uploadService.Read(fileHeader)
	if err != nil {
		return "", nil, documentError(log, fileHeader.Filename, err, maxSizeLabel)
	}

	text, err := parser.Parse(c.UserContext(), doc.Data, doc.Filename)
	if err != nil {
		return "", nil, documentError(log, doc.Filename, err, maxSizeLabel)
	}

	log.Debug("document parsed",
		zap.String("filename", doc.Filename),
		zap.Int("bytes", doc.Size()),
		zap.Int("chars", len(text)),
	)

	return text, doc, nil
}
