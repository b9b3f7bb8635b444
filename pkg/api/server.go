// Package api exposes the scoring pipeline over HTTP.
package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/detetive-digital/detetive/pkg/scan"
)

// Server wires the analysis pipeline into Fiber handlers.
type Server struct {
	pipeline *scan.Pipeline
	limiter  *RateLimiter
	log      *logrus.Logger
}

// New creates a server. limiter may be nil to disable rate limiting.
func New(pipeline *scan.Pipeline, limiter *RateLimiter, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{pipeline: pipeline, limiter: limiter, log: log}
}

// App builds the Fiber application with all routes mounted.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "detetive",
	})

	if s.limiter != nil {
		app.Use(s.limiter.Middleware())
	}

	app.Get("/healthz", s.handleHealth)
	app.Post("/v1/analyze", s.handleAnalyze)

	return app
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	AnalysisID string              `json:"analysis_id"`
	Result     scan.AnalysisResult `json:"result"`
}

func (s *Server) handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleAnalyze(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	// Empty text is allowed; the engine returns a well-formed result for any
	// string input.
	result := s.pipeline.Analyze(c.Context(), req.Text)

	id := uuid.New().String()
	s.log.WithFields(logrus.Fields{
		"analysis_id": id,
		"score":       result.Score,
		"risk_tier":   result.RiskTier,
		"findings":    len(result.Findings),
	}).Info("analysis completed")

	return c.JSON(analyzeResponse{
		AnalysisID: id,
		Result:     result,
	})
}
