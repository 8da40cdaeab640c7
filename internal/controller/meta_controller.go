package controller

import (
	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// IMetaController serves the operational endpoints: service metadata,
// health, and vector index introspection. All of them bypass the rate
// limiter and bot filter.
type IMetaController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	DebugDB(ctx *fiber.Ctx) error
}

type metaController struct {
	profiles contract.ProfileRepository
	model    string
	provider string
}

func NewMetaController(profiles contract.ProfileRepository, model, provider string) IMetaController {
	return &metaController{
		profiles: profiles,
		model:    model,
		provider: provider,
	}
}

func (c *metaController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
	r.Get("/debug/db", c.DebugDB)
}

func (c *metaController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.RootResponse{
		Service: "Cory Fitzpatrick AI Portfolio Chatbot",
		Status:  "online",
		Endpoints: map[string]string{
			"health":      "/health",
			"chat":        "/api/chat (POST)",
			"chat_stream": "/api/chat/stream (POST)",
			"debug":       "/debug/db (GET)",
		},
		Model:    c.model,
		Provider: c.provider,
	})
}

func (c *metaController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:   "healthy",
		Model:    c.model,
		Provider: c.provider,
	})
}

func (c *metaController) DebugDB(ctx *fiber.Ctx) error {
	count, err := c.profiles.Count(ctx.Context())
	if err != nil {
		// Introspection never fails the request; report the problem inline.
		return ctx.JSON(dto.DebugDBResponse{Status: "error", Error: err.Error()})
	}

	res := dto.DebugDBResponse{
		Status:        "ok",
		Table:         "profile_records",
		DocumentCount: count,
	}

	if count > 0 {
		sample, err := c.profiles.Sample(ctx.Context())
		if err == nil && sample != nil {
			res.Sample = &dto.SampleDocument{Id: sample.Id, Question: sample.Question}
		}
	}

	return ctx.JSON(res)
}
