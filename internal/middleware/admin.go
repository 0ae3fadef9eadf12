package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly rejects commands from anyone but the configured administrator
func AdminOnly(adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if userID != adminID {
				logger.Warn("Rejected admin command",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send("You are not authorized to use this command.")
			}

			return next(c)
		}
	}
}
