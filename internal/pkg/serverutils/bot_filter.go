package serverutils

import (
	"strings"

	"profile-chat-be/internal/constant"
	"profile-chat-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// BotFilterMiddleware rejects requests from known scanner/crawler agents.
// CORS handles browser origin restrictions; this blocks the tools that
// ignore it. Health, root and debug paths stay reachable for ops checks.
func BotFilterMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if isOpenPath(ctx.Path()) {
			return ctx.Next()
		}

		userAgent := strings.ToLower(ctx.Get(fiber.HeaderUserAgent))
		for _, blocked := range constant.BlockedUserAgents {
			if strings.Contains(userAgent, blocked) {
				return ctx.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Detail: "Forbidden: Automated scanning not permitted",
				})
			}
		}

		return ctx.Next()
	}
}

func isOpenPath(path string) bool {
	for _, open := range constant.OpenPaths {
		if path == open {
			return true
		}
	}
	return false
}
