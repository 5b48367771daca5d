package bridge

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

func (sl serviceLogging) Profile(ctx context.Context, userId int64) (p profile.Profile, err error) {
	p, err = sl.svc.Profile(ctx, userId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("bridge.Profile(%d): status=%s, err=%s", userId, p.Status, err))
	return
}
