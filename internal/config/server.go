package config

import (
	"context"
	"fmt"

	chatHandler "RuleChatbot/internal/api/chat/handler"
	chatRepository "RuleChatbot/internal/api/chat/repository"
	chatService "RuleChatbot/internal/api/chat/service"
	"RuleChatbot/internal/middleware"
	"RuleChatbot/pkg/nlp"
	"RuleChatbot/pkg/redis"
	"RuleChatbot/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	responder   nlp.IResponder
	transcripts chatRepository.Repository
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.responder == nil {
		return nil, fmt.Errorf("responder is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.transcripts == nil {
		server.transcripts = chatRepository.NewMemory(server.log, chatRepository.Options{})
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithResponder(responder nlp.IResponder) ServerOption {
	return func(s *Server) error {
		if responder == nil {
			return fmt.Errorf("responder must not be nil")
		}
		s.responder = responder
		return nil
	}
}

// WithTranscriptRepository sets the transcript store. client may be nil; when
// set it is closed on Shutdown.
func WithTranscriptRepository(repo chatRepository.Repository, client redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.transcripts = repo
		s.redisServer = client
		return nil
	}
}

func WithMiddleware(rps float64, burst int) ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, rate.Limit(rps), burst)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	chatServices := chatService.NewChatService(s.log, s.transcripts, s.responder, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)
	s.engine.Use(s.middleware.NewLoggingMiddleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

// App exposes the fiber engine, mainly for fiber.App.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run(port string) error {
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)

	if s.redisServer != nil {
		if closeErr := s.redisServer.Close(); closeErr != nil {
			s.log.WithField("error", closeErr.Error()).Warn("Failed to close redis client")
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
			"intents": s.responder.Catalog().Len(),
		})
	})
}
