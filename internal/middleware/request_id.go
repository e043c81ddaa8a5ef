package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	RequestIDKey = "X-Request-ID"

	maxRequestIDLength = 64
)

// NewRequestIDMiddleware tags every request with an ID, echoed in the
// X-Request-ID response header. A client-supplied ID is kept only when it is
// a short token of letters, digits, '-', '_' or '.'; anything else is
// replaced with a fresh ULID.
func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID != "" && !validRequestID(requestID) {
			m.log.WithField("length", len(requestID)).Debug("Replacing malformed client request ID")
			requestID = ""
		}
		if requestID == "" {
			requestID = m.newRequestID()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}

func (m *middleware) newRequestID() string {
	id, err := m.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return m.utils.NewSessionID()
	}
	return id
}

func validRequestID(id string) bool {
	if len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
