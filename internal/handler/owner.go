package handler

import (
	"fmt"
	"strings"

	"printbot/internal/command"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleOwnerCommand executes one parsed owner command. Validation failures
// reply with guidance; nothing here mutates state on a malformed argument.
func (h *Handler) handleOwnerCommand(c tele.Context, cmd command.Command) error {
	h.logger.Info("Owner command", zap.Int("kind", int(cmd.Kind)))

	switch cmd.Kind {
	case command.Menu:
		return c.Send(mainMenuText())

	case command.MenuSection:
		return c.Send(menuSectionText(cmd.Section))

	case command.Mute:
		target, ok := h.resolveTarget(c, cmd)
		if !ok {
			return c.Send(msgTargetNotFound)
		}
		if !h.ops.Mute(target) {
			return c.Send(fmt.Sprintf(msgAlreadyIgnored, target))
		}
		return c.Send(fmt.Sprintf(msgMuteOK, target))

	case command.Unmute:
		target, ok := h.resolveTarget(c, cmd)
		if !ok {
			return c.Send(msgTargetNotFound)
		}
		if !h.ops.Unmute(target) {
			return c.Send(fmt.Sprintf(msgNotIgnored, target))
		}
		return c.Send(fmt.Sprintf(msgUnmuteOK, target))

	case command.UnmuteAll:
		if h.ops.UnmuteAll() == 0 {
			return c.Send(msgUnmuteAllEmpty)
		}
		return c.Send(msgUnmuteAllOK)

	case command.SetRateBelow50:
		if cmd.Err != nil {
			return c.Send(msgPriceInvalidValue)
		}
		h.ops.SetRateBelow50(cmd.Value)
		return c.Send(fmt.Sprintf(msgPriceUpdateOK, priceNameBelow50, cmd.Value))

	case command.SetRateAtOrAbove50:
		if cmd.Err != nil {
			return c.Send(msgPriceInvalidValue)
		}
		h.ops.SetRateAtOrAbove50(cmd.Value)
		return c.Send(fmt.Sprintf(msgPriceUpdateOK, priceNameAtOrAbove50, cmd.Value))

	case command.SetCoverCost:
		if cmd.Err != nil {
			return c.Send(msgPriceInvalidValue)
		}
		h.ops.SetCoverCost(cmd.Value)
		return c.Send(fmt.Sprintf(msgPriceUpdateOK, priceNameCover, cmd.Value))

	case command.ToggleSleep:
		if h.ops.ToggleSleep() {
			return c.Send(msgSleepOn)
		}
		reply := msgSleepOff
		if queued := h.store.QueuedWhileSleeping(); len(queued) > 0 {
			ids := make([]string, len(queued))
			for i, id := range queued {
				ids[i] = fmt.Sprintf("`%d`", id)
			}
			reply += "\nالمستخدمون الذين ينتظرون ردك: " + strings.Join(ids, ", ")
		}
		h.store.ResetSleepMarkers()
		return c.Send(reply)

	case command.ToggleAutoReply:
		if h.ops.ToggleAutoReply() {
			return c.Send(msgAutoReplyOn)
		}
		return c.Send(msgAutoReplyOff)

	case command.ShowTotal:
		return c.Send(fmt.Sprintf(msgDailyTotalSoFar, h.ops.DailyTotal()))

	case command.ShowUserPriceInfo:
		target, ok := h.resolveTarget(c, cmd)
		if !ok {
			return c.Send(msgTargetNotFound)
		}
		sess, ok := h.store.Snapshot(target)
		if !ok {
			return c.Send(fmt.Sprintf(msgNoSessionForUser, target))
		}
		return c.Send(fmt.Sprintf(msgOwnerPriceInfo, sess.Pages, sess.BasePrice, sess.CoverPrice))

	case command.ShowStats:
		stats := h.ops.Stats()
		return c.Send(fmt.Sprintf(msgStats,
			stats.ConfirmedOrders,
			stats.RejectedOrders,
			stats.TotalConfirmedFiles,
			stats.InteractedUsers,
		))

	case command.SetWelcome:
		if cmd.Err != nil {
			return c.Send(msgWelcomeNeedsText)
		}
		h.ops.SetWelcomeMessage(cmd.Text)
		return c.Send(msgWelcomeUpdated)
	}

	return nil
}

// resolveTarget finds the user a mute/unmute/info command applies to: an
// explicit numeric id wins, then the sender of the replied-to message, then
// the original sender of a replied-to forwarded message
func (h *Handler) resolveTarget(c tele.Context, cmd command.Command) (int64, bool) {
	if cmd.Err != nil {
		return 0, false
	}
	if cmd.Target != 0 {
		return cmd.Target, true
	}

	msg := c.Message()
	if msg == nil || msg.ReplyTo == nil {
		return 0, false
	}
	replied := msg.ReplyTo
	if replied.OriginalSender != nil {
		return replied.OriginalSender.ID, true
	}
	if replied.Sender != nil && replied.Sender.ID != h.ownerID {
		return replied.Sender.ID, true
	}
	return 0, false
}
