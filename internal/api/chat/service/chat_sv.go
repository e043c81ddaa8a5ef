package chatService

import (
	"context"
	"errors"
	"time"

	"RuleChatbot/internal/api/chat"
	"RuleChatbot/internal/entity"
	contextPkg "RuleChatbot/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *chatService) Reply(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.utils.NewSessionID()
	} else if !chat.IsValidSessionID(sessionID) {
		return nil, chat.ErrInvalidSessionID
	}

	result := s.responder.Classify(req.Message)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"intent":     result.Intent,
		"score":      result.Score,
		"matched":    result.Matched,
	}).Info("Chat message answered")

	now := time.Now().UTC()
	err := s.repo.Append(ctx, sessionID,
		entity.Turn{Speaker: entity.SpeakerUser, Message: req.Message, CreatedAt: now},
		entity.Turn{Speaker: entity.SpeakerBot, Message: result.Response, CreatedAt: now},
	)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to record transcript, replying anyway")
	}

	return &chat.ChatResponse{
		SessionID: sessionID,
		Message:   req.Message,
		Response:  result.Response,
		Intent:    result.Intent,
		Score:     result.Score,
	}, nil
}

func (s *chatService) NewSessionID() string {
	return s.utils.NewSessionID()
}

func (s *chatService) GetTranscript(ctx context.Context, sessionID string) (*chat.TranscriptResponse, error) {
	if !chat.IsValidSessionID(sessionID) {
		return nil, chat.ErrInvalidSessionID
	}

	turns, err := s.repo.List(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, chat.ErrSessionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("Failed to load transcript")
		}
		return nil, err
	}

	return &chat.TranscriptResponse{
		SessionID: sessionID,
		Turns:     turns,
	}, nil
}

func (s *chatService) ClearTranscript(ctx context.Context, sessionID string) error {
	if !chat.IsValidSessionID(sessionID) {
		return chat.ErrInvalidSessionID
	}

	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": sessionID,
	}).Info("Transcript cleared")
	return nil
}
