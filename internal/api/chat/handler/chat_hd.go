package chatHandler

import (
	"context"
	"time"

	"RuleChatbot/internal/api/chat"
	contextPkg "RuleChatbot/pkg/context"
	"RuleChatbot/pkg/handlerUtil"
	"RuleChatbot/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 10 * time.Second

func (h *ChatHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Trim()

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.chatService.Reply(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ChatHandler) GetTranscript(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Getting transcript")

	transcript, err := h.chatService.GetTranscript(c, ctx.Params("session_id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transcript")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transcript)
	}
}

func (h *ChatHandler) ClearTranscript(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.chatService.ClearTranscript(c, ctx.Params("session_id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_transcript")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}

func (h *ChatHandler) TestNLPProcessing(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req chat.NLPTestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Trim()

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response := h.chatService.TestNLPProcessing(contextPkg.FromFiberCtx(ctx), req)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}

func (h *ChatHandler) GetIntents(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	intents := h.chatService.GetIntents(contextPkg.FromFiberCtx(ctx))
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"intents": intents,
		"total":   len(intents),
	})
}
