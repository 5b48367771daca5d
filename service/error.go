package service

import (
	"fmt"
	"log/slog"

	"gopkg.in/telebot.v3"
)

// ErrorHandlerFunc logs a handler failure instead of letting the bot
// framework print it. Nothing is sent back here: handlers own their
// user-visible notices and raw errors must not leak to chats.
func ErrorHandlerFunc(h telebot.HandlerFunc, log *slog.Logger) telebot.HandlerFunc {
	return func(ctx telebot.Context) (err error) {
		err = h(ctx)
		if err != nil {
			log.Error(fmt.Sprintf("update #%d: %s", ctx.Update().ID, err))
			err = nil
		}
		return
	}
}
