package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics at the dispatch boundary so one bad event cannot
// take the bot down; the failure is logged with context and the next event
// is processed normally.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					fields := []zap.Field{zap.Any("panic", r)}
					if sender := c.Sender(); sender != nil {
						fields = append(fields, zap.Int64("user_id", sender.ID))
					}
					if msg := c.Message(); msg != nil {
						fields = append(fields, zap.String("text", msg.Text))
					}
					logger.Error("Recovered from panic in handler", fields...)
				}
			}()
			return next(c)
		}
	}
}
