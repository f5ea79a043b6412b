package handler

import (
	"strings"
	"time"

	"printbot/internal/document"
	"printbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Notifier delivers formatted notifications to the owner
type Notifier interface {
	Notifyf(format string, args ...interface{}) error
}

// Handler wires the Telegram transport to the order workflow
type Handler struct {
	bot      *tele.Bot
	orders   *service.OrderService
	ops      *service.OpsService
	store    *service.SessionStore
	counter  document.Counter
	notifier Notifier
	logger   *zap.Logger

	ownerID         int64
	scratchDir      string
	welcomeCooldown time.Duration
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	orders *service.OrderService,
	ops *service.OpsService,
	store *service.SessionStore,
	counter document.Counter,
	notifier Notifier,
	ownerID int64,
	scratchDir string,
	welcomeCooldown time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		orders:          orders,
		ops:             ops,
		store:           store,
		counter:         counter,
		notifier:        notifier,
		logger:          logger,
		ownerID:         ownerID,
		scratchDir:      scratchDir,
		welcomeCooldown: welcomeCooldown,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle(tele.OnDocument, h.handleDocument)
	h.bot.Handle(tele.OnText, h.handleText)

	// Any other media kind is rejected before page counting
	for _, event := range []string{
		tele.OnPhoto, tele.OnVideo, tele.OnAudio,
		tele.OnVoice, tele.OnSticker, tele.OnAnimation,
	} {
		h.bot.Handle(event, h.handleUnsupportedMedia)
	}
}

func (h *Handler) handleUnsupportedMedia(c tele.Context) error {
	if h.isOwner(c) {
		return nil
	}
	h.preamble(c)
	return c.Send(msgFileTypeError)
}

func (h *Handler) isOwner(c tele.Context) bool {
	return c.Sender() != nil && c.Sender().ID == h.ownerID
}

// preamble runs the side effects every user event triggers before its own
// handling: welcome message per cooldown, sleep-mode queue marking with a
// one-time owner alert.
func (h *Handler) preamble(c tele.Context) {
	userID := c.Sender().ID

	if h.store.ClaimWelcome(userID, time.Now(), h.welcomeCooldown) {
		name := strings.TrimSpace(c.Sender().FirstName + " " + c.Sender().LastName)
		if name == "" {
			name = c.Sender().Username
		}
		text := strings.ReplaceAll(h.ops.WelcomeMessage(), "{user_name}", name)
		if err := c.Send(text); err != nil {
			h.logger.Warn("Failed to send welcome message",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
	}

	if h.ops.Sleeping() && h.store.MarkQueuedWhileSleeping(userID) {
		h.notifyOwnerf(msgQueuedWhileAsleep, userID)
	}
}

// notifyOwnerf sends a formatted notification to the owner, best effort: a
// delivery failure is logged and never propagated into the handler
func (h *Handler) notifyOwnerf(format string, args ...interface{}) {
	if err := h.notifier.Notifyf(format, args...); err != nil {
		h.logger.Warn("Failed to notify owner", zap.Error(err))
	}
}
