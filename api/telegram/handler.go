package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/deskrelay/bot-telegram/api/http/bridge"
	"github.com/deskrelay/bot-telegram/model/profile"
	"github.com/deskrelay/bot-telegram/service/tickets"
	"gopkg.in/telebot.v3"
)

const msgConnected = "✅ <b>Support Connected!</b>\n\nHello! Your chat with the admin team has started. Describe your issue here."
const msgWelcomeBack = "👋 <b>Welcome Back!</b>\nHow can we help you?"
const msgSessionExpired = "⚠️ Session Expired. Please press /start to reconnect."
const msgConnectFailed = "❌ Support group connection error."

// Handler is the single dispatch point for inbound updates. Raw errors
// never reach end users: every outcome maps to one of the fixed notices
// or to silence, and the error return only feeds the logging middleware.
type Handler struct {
	SvcTickets    tickets.Service
	SvcBridge     bridge.Service
	GroupId       int64
	BridgeTimeout time.Duration
}

// Start handles the start directive in a private chat: it resolves the
// profile context and opens (or re-confirms) the ticket.
func (h Handler) Start(tgCtx telebot.Context) (err error) {
	msg := tgCtx.Message()
	if Classify(msg, h.GroupId, tickets.CmdClose) != EventStartDirective {
		return
	}
	ctx := context.Background()
	sender := tgCtx.Sender()
	prof := h.resolveProfile(ctx, sender.ID, sender.FirstName, msg.Payload)
	var created bool
	_, created, err = h.SvcTickets.ResolveOrCreate(ctx, sender.ID, sender.Username, prof)
	switch {
	case err != nil:
		_ = tgCtx.Send(msgConnectFailed)
	case created:
		err = tgCtx.Send(msgConnected, telebot.ModeHTML)
	default:
		err = tgCtx.Send(msgWelcomeBack, telebot.ModeHTML)
	}
	return
}

// Relay handles every non-command content update on both sides of the
// binding.
func (h Handler) Relay(tgCtx telebot.Context) (err error) {
	msg := tgCtx.Message()
	ctx := context.Background()
	switch Classify(msg, h.GroupId, tickets.CmdClose) {
	case EventUserMessage:
		err = h.SvcTickets.RouteUserMessage(ctx, msg.Chat.ID, msg.ID)
		if errors.Is(err, tickets.ErrNoTicket) {
			err = tgCtx.Send(msgSessionExpired)
		}
	case EventCloseDirective:
		err = h.SvcTickets.Close(ctx, int64(msg.ThreadID))
		if errors.Is(err, tickets.ErrNotFound) {
			// the topic is not a ticket conversation, leave it alone
			err = nil
		}
	case EventAdminMessage:
		err = h.SvcTickets.RouteAdminMessage(ctx, int64(msg.ThreadID), msg.ID, msg.Text)
		switch {
		case errors.Is(err, tickets.ErrUnknownThread):
			err = nil
		case errors.Is(err, tickets.ErrDeliveryBlocked):
			// already annotated in the topic by the binder
			err = nil
		}
	}
	return
}

func (h Handler) resolveProfile(ctx context.Context, userId int64, name, payload string) (prof profile.Profile) {
	prof, ok := profile.FromPayload(name, payload)
	if ok || h.SvcBridge == nil {
		return
	}
	ctxBridge, cancel := context.WithTimeout(ctx, h.BridgeTimeout)
	defer cancel()
	profBridge, err := h.SvcBridge.Profile(ctxBridge, userId)
	if err == nil {
		prof = profBridge
		if prof.Name == "" {
			prof.Name = name
		}
	}
	return
}
