package middleware

import (
	"printbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// IgnoreUsers drops every event from a muted user before it reaches any
// handler: no reply, no session mutation. The owner is never subject to the
// mute list.
func IgnoreUsers(ops *service.OpsService, ownerID int64) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID == ownerID {
				return next(c)
			}
			if ops.IsIgnored(sender.ID) {
				return nil
			}
			return next(c)
		}
	}
}
