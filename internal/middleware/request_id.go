package middleware

import (
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = contextPkg.RequestIDHeader

// NewRequestIDMiddleware keeps a client supplied X-Request-ID and otherwise
// mints a ULID. The ID is echoed back and stored on the user context.
func NewRequestIDMiddleware() fiber.Handler {
	ids := utils.New()

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			id, err := ids.NewULIDFromTimestamp(time.Now())
			if err != nil {
				id = "unknown"
			}
			requestID = id
		}

		c.Locals(RequestIDKey, requestID)
		c.SetUserContext(contextPkg.WithRequestID(c.UserContext(), requestID))
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
