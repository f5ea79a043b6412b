package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"printbot/internal/document"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDocument prices an inbound document and adds it to the sender's open
// order. A rejected or unreadable file never mutates the order.
func (h *Handler) handleDocument(c tele.Context) error {
	if h.isOwner(c) {
		return nil
	}

	userID := c.Sender().ID
	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	h.preamble(c)

	kind, err := document.DetectKind(doc.FileName, doc.MIME)
	if err != nil {
		h.logger.Info("Rejected unsupported file",
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
			zap.String("mime", doc.MIME),
		)
		return c.Send(msgFileTypeError)
	}

	if err := c.Send(msgCalculating); err != nil {
		h.logger.Warn("Failed to send progress message",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	path := filepath.Join(h.scratchDir, fmt.Sprintf("%d_%s_%s", userID, doc.FileID, filepath.Base(doc.FileName)))
	if err := h.bot.Download(&doc.File, path); err != nil {
		h.logger.Error("Failed to download file",
			zap.Int64("user_id", userID),
			zap.String("file_name", doc.FileName),
			zap.Error(err),
		)
		return c.Send(msgProcessingError)
	}
	defer os.Remove(path)

	return h.priceDocument(c, path, kind)
}

// priceDocument counts the downloaded file's pages and accumulates it into
// the sender's order. A file whose pages cannot be read changes nothing.
func (h *Handler) priceDocument(c tele.Context, path string, kind document.Kind) error {
	userID := c.Sender().ID

	pages, err := h.counter.CountPages(path, kind)
	if err != nil {
		h.logger.Warn("Failed to count pages",
			zap.Int64("user_id", userID),
			zap.String("path", path),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		if errors.Is(err, document.ErrUnsupportedType) {
			return c.Send(msgFileTypeError)
		}
		return c.Send(msgCountPagesError)
	}

	res := h.orders.AddFile(userID, pages)

	reply := fmt.Sprintf(msgFilePriced, pages, res.Base, res.WithCover) + msgFileAdded
	if h.ops.Sleeping() {
		reply += msgSleepApologySuffix
	}

	h.notifyOwnerf(msgOwnerAlert)

	return c.Send(reply)
}
