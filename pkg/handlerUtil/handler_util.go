package handlerUtil

import (
	"errors"

	"RuleChatbot/internal/api/chat"
	"RuleChatbot/pkg/log"
	"RuleChatbot/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		h.logger.WithFields(fields).Warn("Session not found")
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Session not found",
			Code:  "SESSION_NOT_FOUND",
		})

	case errors.Is(err, chat.ErrInvalidSessionID):
		h.logger.WithFields(fields).Warn("Invalid session id")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid session id",
			Code:  "INVALID_SESSION_ID",
		})

	case errors.Is(err, chat.ErrTranscriptUnavailable):
		h.logger.WithFields(fields).Error("Transcript store unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "Transcript store unavailable",
			Code:  "TRANSCRIPT_UNAVAILABLE",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(ErrorResponse{Error: err.Error()})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		Details: "trace_id: " + traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		failed := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			failed = append(failed, fe.Field()+":"+fe.Tag())
		}
		fields["failed_fields"] = failed
	}

	h.logger.WithFields(fields).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{
		Error: utils.StatusMessage(fiber.StatusRequestTimeout),
		Code:  "REQUEST_TIMEOUT",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
