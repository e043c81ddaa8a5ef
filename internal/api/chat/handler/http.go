package chatHandler

import (
	chatService "RuleChatbot/internal/api/chat/service"
	"RuleChatbot/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	srv.Post("/chat", h.Chat)

	chat := srv.Group("/chat")
	chat.Get("/:session_id/transcript", h.GetTranscript)
	chat.Delete("/:session_id/transcript", h.ClearTranscript)

	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", websocket.New(h.handleWebSocket))

	nlp := srv.Group("/nlp")
	nlp.Post("/test", h.TestNLPProcessing)
	nlp.Get("/intents", h.GetIntents)
}
