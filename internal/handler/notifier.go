package handler

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// OwnerNotifier delivers text to the owner's chat. It satisfies
// service.Notifier for the daily report loop.
type OwnerNotifier struct {
	bot  *tele.Bot
	chat *tele.Chat
}

// NewOwnerNotifier creates a notifier targeting the given chat id
func NewOwnerNotifier(bot *tele.Bot, chatID int64) *OwnerNotifier {
	return &OwnerNotifier{
		bot:  bot,
		chat: &tele.Chat{ID: chatID},
	}
}

// NotifyOwner sends text to the owner's chat
func (n *OwnerNotifier) NotifyOwner(text string) error {
	_, err := n.bot.Send(n.chat, text)
	return err
}

// Notifyf formats and sends
func (n *OwnerNotifier) Notifyf(format string, args ...interface{}) error {
	return n.NotifyOwner(fmt.Sprintf(format, args...))
}
