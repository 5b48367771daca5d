package forum

import (
	"context"
	"fmt"
	"log/slog"

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

func (sl serviceLogging) CreateTopic(ctx context.Context, name string) (threadId int64, err error) {
	threadId, err = sl.svc.CreateTopic(ctx, name)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.CreateTopic(%s): %d, err=%s", name, threadId, err))
	return
}

func (sl serviceLogging) DeleteTopic(ctx context.Context, threadId int64) (err error) {
	err = sl.svc.DeleteTopic(ctx, threadId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.DeleteTopic(%d): err=%s", threadId, err))
	return
}

func (sl serviceLogging) SendToTopic(ctx context.Context, threadId int64, txt string, pin bool) (err error) {
	err = sl.svc.SendToTopic(ctx, threadId, txt, pin)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.SendToTopic(%d, pin=%t): err=%s", threadId, pin, err))
	return
}

func (sl serviceLogging) CopyToTopic(ctx context.Context, threadId, srcChatId int64, srcMsgId int) (err error) {
	err = sl.svc.CopyToTopic(ctx, threadId, srcChatId, srcMsgId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.CopyToTopic(%d, %d, %d): err=%s", threadId, srcChatId, srcMsgId, err))
	return
}

func (sl serviceLogging) SendToUser(ctx context.Context, userId int64, txt string) (err error) {
	err = sl.svc.SendToUser(ctx, userId, txt)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.SendToUser(%d): err=%s", userId, err))
	return
}

func (sl serviceLogging) CopyToUser(ctx context.Context, userId int64, srcMsgId int) (err error) {
	err = sl.svc.CopyToUser(ctx, userId, srcMsgId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("forum.CopyToUser(%d, %d): err=%s", userId, srcMsgId, err))
	return
}
