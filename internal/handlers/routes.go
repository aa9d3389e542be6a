package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobfluence/api/internal/templates"
)

// multipartOverhead leaves room for form boundaries and fields so an upload
// of exactly the maximum size is buffered whole. Larger bodies are streamed
// to the handler, which answers 413 from the upload size check.
const multipartOverhead = 1 << 20

type RouterConfig struct {
	AppName     string
	MaxFileSize int64
	AccessLog   bool
	Parser      *ParserHandler
	Match       *MatchHandler
	Payment     *PaymentHandler
}

// NewRouter builds the Fiber app with middleware, views and all routes.
func NewRouter(cfg RouterConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:           cfg.AppName,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		BodyLimit:         int(cfg.MaxFileSize) + multipartOverhead,
		StreamRequestBody: true,
		ErrorHandler:      ErrorHandler,
		Views:             templates.NewEngine(),
	})

	app.Use(recover.New())
	if cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": cfg.AppName,
			"version": "0.1.0",
			"endpoints": []string{
				"GET /health",
				"POST /parser/extract",
				"POST /match",
				"GET /demo/",
				"POST /demo/match",
				"POST /payment/charge",
				"GET /payment/charge/:id",
			},
		})
	})

	app.Post("/parser/extract", cfg.Parser.HandleExtract)
	app.Post("/match", cfg.Match.HandleMatch)

	demo := app.Group("/demo")
	demo.Get("/", cfg.Match.HandleDemoForm)
	demo.Post("/match", cfg.Match.HandleDemoMatch)

	payment := app.Group("/payment")
	payment.Post("/charge", cfg.Payment.HandleCharge)
	payment.Get("/charge/:id", cfg.Payment.HandleGetCharge)

	return app
}
