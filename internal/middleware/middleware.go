package middleware

import (
	"RuleChatbot/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewLoggingMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter *rateLimiter
	utils        utils.IUtils
	log          *logrus.Logger
}

// New builds the middleware set. A non-positive rps disables rate limiting.
func New(logger *logrus.Logger, rps rate.Limit, burst int) Middleware {
	return &middleware{
		rateLimitter: newRateLimiter(rps, burst),
		utils:        utils.New(),
		log:          logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}
