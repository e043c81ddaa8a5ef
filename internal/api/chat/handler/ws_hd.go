package chatHandler

import (
	"context"
	"time"

	"RuleChatbot/internal/api/chat"
	contextPkg "RuleChatbot/pkg/context"
	"RuleChatbot/pkg/log"

	"github.com/gofiber/websocket/v2"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// handleWebSocket answers every text frame with a chat reply. All frames on
// one connection share a session; the client may pick it with ?session_id=.
func (h *ChatHandler) handleWebSocket(c *websocket.Conn) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = h.chatService.NewSessionID()
	} else if !chat.IsValidSessionID(sessionID) {
		_ = c.WriteJSON(map[string]string{"error": chat.ErrInvalidSessionID.Error()})
		return
	}

	requestID, _ := c.Locals("X-Request-ID").(string)
	ctx := contextPkg.WithRequestID(context.Background(), requestID)

	fields := log.Fields{"request_id": requestID, "session_id": sessionID}
	h.log.WithFields(fields).Info("Chat WebSocket client connected")
	defer h.log.WithFields(fields).Info("Chat WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.WithFields(fields).Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(fields).Errorf("Chat WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.WithFields(fields).Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		var reply interface{}
		req := chat.ChatRequest{SessionID: sessionID, Message: string(message)}
		req.Trim()
		if err := h.validator.Struct(req); err != nil {
			reply = map[string]string{"error": "Validation failed: " + err.Error()}
		} else if resp, err := h.chatService.Reply(ctx, req); err != nil {
			h.log.WithFields(fields).Errorf("Error answering message: %v", err)
			reply = map[string]string{"error": err.Error()}
		} else {
			reply = resp
		}

		if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(reply); err != nil {
			h.log.WithFields(fields).Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.WithFields(fields).Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
