package tickets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deskrelay/bot-telegram/model/profile"
	"github.com/deskrelay/bot-telegram/util"
)

type serviceLogging struct {
	svc Service
	log *slog.Logger
}

func NewServiceLogging(svc Service, log *slog.Logger) Service {
	return serviceLogging{
		svc: svc,
		log: log,
	}
}

func (sl serviceLogging) ResolveOrCreate(ctx context.Context, userId int64, userName string, prof profile.Profile) (t Ticket, created bool, err error) {
	t, created, err = sl.svc.ResolveOrCreate(ctx, userId, userName, prof)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("tickets.ResolveOrCreate(%d, %s): %s -> %d, created=%t, err=%s", userId, userName, t.Id, t.ThreadId, created, err))
	return
}

func (sl serviceLogging) RouteUserMessage(ctx context.Context, userId int64, msgId int) (err error) {
	err = sl.svc.RouteUserMessage(ctx, userId, msgId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("tickets.RouteUserMessage(%d, %d): err=%s", userId, msgId, err))
	return
}

func (sl serviceLogging) RouteAdminMessage(ctx context.Context, threadId int64, msgId int, txt string) (err error) {
	err = sl.svc.RouteAdminMessage(ctx, threadId, msgId, txt)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("tickets.RouteAdminMessage(%d, %d): err=%s", threadId, msgId, err))
	return
}

func (sl serviceLogging) Close(ctx context.Context, threadId int64) (err error) {
	err = sl.svc.Close(ctx, threadId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("tickets.Close(%d): err=%s", threadId, err))
	return
}
