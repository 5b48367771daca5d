package telegram

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/deskrelay/bot-telegram/api/http/bridge"
	"github.com/deskrelay/bot-telegram/api/telegram/forum"
	"github.com/deskrelay/bot-telegram/model/profile"
	"github.com/deskrelay/bot-telegram/service/tickets"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

const testGroupId = -100123

func newTestHandler(t *testing.T, stor tickets.Storage) (h Handler, tgBot *telebot.Bot) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := tickets.NewService(stor, forum.NewServiceMock(), tickets.Format{HtmlPolicy: bluemonday.StrictPolicy()}, log)
	h = Handler{
		SvcTickets: tickets.NewServiceLogging(svc, log),
		GroupId:    testGroupId,
	}
	tgBot, err := telebot.NewBot(telebot.Settings{Offline: true})
	require.Nil(t, err)
	return
}

func TestHandler_Relay_AdminSide(t *testing.T) {
	stor := tickets.NewStorageMock()
	h, tgBot := newTestHandler(t, stor)
	ctx := context.TODO()
	tkt, _, err := h.SvcTickets.ResolveOrCreate(ctx, 111, "john", profile.Unknown("John"))
	require.Nil(t, err)
	//
	group := &telebot.Chat{
		ID:   testGroupId,
		Type: telebot.ChatSuperGroup,
	}
	// admin reply in the bound topic is relayed
	err = h.Relay(tgBot.NewContext(telebot.Update{
		Message: &telebot.Message{
			ID:       10,
			Chat:     group,
			ThreadID: int(tkt.ThreadId),
			Text:     "checking now",
		},
	}))
	assert.Nil(t, err)
	// message in an unbound topic is a silent no-op
	err = h.Relay(tgBot.NewContext(telebot.Update{
		Message: &telebot.Message{
			ID:       11,
			Chat:     group,
			ThreadID: 999,
			Text:     "unrelated topic",
		},
	}))
	assert.Nil(t, err)
	// the close directive tears the binding down
	err = h.Relay(tgBot.NewContext(telebot.Update{
		Message: &telebot.Message{
			ID:       12,
			Chat:     group,
			ThreadID: int(tkt.ThreadId),
			Text:     tickets.CmdClose,
		},
	}))
	assert.Nil(t, err)
	count, err := stor.Count(ctx)
	require.Nil(t, err)
	assert.Zero(t, count)
	// closing an already closed topic stays silent
	err = h.Relay(tgBot.NewContext(telebot.Update{
		Message: &telebot.Message{
			ID:       13,
			Chat:     group,
			ThreadID: int(tkt.ThreadId),
			Text:     tickets.CmdClose,
		},
	}))
	assert.Nil(t, err)
}

func TestHandler_ResolveProfile(t *testing.T) {
	h := Handler{
		SvcBridge:     bridge.NewServiceMock(),
		BridgeTimeout: time.Second,
	}
	ctx := context.TODO()
	// deep link payload wins over the bridge
	p := h.resolveProfile(ctx, 111, "John", "1_2_vip_2024-01-05")
	assert.Equal(t, "vip", p.Status)
	assert.Equal(t, "1", p.Sales)
	// no payload: the bridge answers
	p = h.resolveProfile(ctx, 111, "John", "")
	assert.Equal(t, "gold", p.Status)
	assert.Equal(t, "3", p.Referrals)
	// bridge failure degrades to placeholders, never fails the start
	p = h.resolveProfile(ctx, 500, "John", "")
	assert.Equal(t, profile.Unknown("John"), p)
}

func TestHandler_Relay_UserSide(t *testing.T) {
	stor := tickets.NewStorageMock()
	h, tgBot := newTestHandler(t, stor)
	ctx := context.TODO()
	_, _, err := h.SvcTickets.ResolveOrCreate(ctx, 111, "john", profile.Unknown("John"))
	require.Nil(t, err)
	//
	err = h.Relay(tgBot.NewContext(telebot.Update{
		Message: &telebot.Message{
			ID: 20,
			Chat: &telebot.Chat{
				ID:   111,
				Type: telebot.ChatPrivate,
			},
			Text: "my order is stuck",
		},
	}))
	assert.Nil(t, err)
}
