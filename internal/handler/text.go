package handler

import (
	"fmt"
	"strings"

	"printbot/internal/command"
	"printbot/internal/service"

	tele "gopkg.in/telebot.v3"
)

// handleText routes owner commands to the command dispatcher and everyone
// else through the order state machine
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	if h.isOwner(c) {
		if cmd, ok := command.Parse(text); ok {
			return h.handleOwnerCommand(c, cmd)
		}
		// The owner's free text is them replying to customers manually
		return nil
	}

	h.preamble(c)

	res := h.orders.TextReceived(c.Sender().ID, text)

	switch res.Outcome {
	case service.OutcomeTotalPrompt:
		reply := fmt.Sprintf(msgCumulativeTotal, res.BasePrice, res.CoverPrice) + msgConfirmPrompt
		return c.Send(reply)

	case service.OutcomeConfirmed:
		if h.ops.Sleeping() {
			return c.Send(msgConfirmedSleeping)
		}
		return c.Send(msgConfirmedAwake)

	case service.OutcomeRejected:
		return c.Send(msgRejectedAskReason)

	case service.OutcomeReask:
		return c.Send(msgReask)

	default:
		return c.Send(h.genericReply())
	}
}

// genericReply picks the zero-accumulation auto reply: the custom message
// when custom auto-reply mode is on, the sleeping framing during sleep mode,
// the normal waiting text otherwise
func (h *Handler) genericReply() string {
	on, msg := h.ops.AutoReply()
	if on || h.ops.Sleeping() {
		return msg
	}
	return msgWaitingNormal
}
