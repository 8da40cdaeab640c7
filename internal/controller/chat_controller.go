package controller

import (
	"bufio"
	"context"
	"time"

	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/pkg/logger"
	"profile-chat-be/internal/pkg/serverutils"
	"profile-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// streamDeadline bounds a streaming response so a stalled provider cannot
// hold the connection open indefinitely.
const streamDeadline = 2 * time.Minute

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	ChatStream(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	log         logger.ILogger
}

func NewChatController(chatService service.IChatService, log logger.ILogger) IChatController {
	return &chatController{
		chatService: chatService,
		log:         log,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Post("/chat/stream", c.ChatStream)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Detail: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	answer, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ChatResponse{Response: answer})
}

func (c *chatController) ChatStream(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &serverutils.ValidationError{Detail: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// The provider stream must be started here, on the request context: a
	// retrieval failure still has to surface as a regular 500 before any
	// body bytes are written.
	streamCtx, cancel := context.WithTimeout(context.Background(), streamDeadline)
	fragments, err := c.chatService.ChatStream(streamCtx, &req)
	if err != nil {
		cancel()
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for fragment := range fragments {
			if _, err := w.WriteString(fragment); err != nil {
				// Client went away; stop the producer promptly.
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}
