package forum

import (
	"context"
	"strings"
	"sync/atomic"
)

// serviceMock simulates the chat platform. Magic inputs trigger the
// failure paths: a topic name containing "fail" fails provisioning,
// thread id 404 behaves as a deleted topic, user id 403 as a user who
// blocked the bot.
type serviceMock struct {
	threadIdLast int64
}

func NewServiceMock() Service {
	return &serviceMock{}
}

func (sm *serviceMock) CreateTopic(ctx context.Context, name string) (threadId int64, err error) {
	switch {
	case strings.Contains(name, "fail"):
		err = ErrInternal
	default:
		threadId = atomic.AddInt64(&sm.threadIdLast, 1)
	}
	return
}

func (sm *serviceMock) DeleteTopic(ctx context.Context, threadId int64) (err error) {
	if threadId == 404 {
		err = ErrTopicNotFound
	}
	return
}

func (sm *serviceMock) SendToTopic(ctx context.Context, threadId int64, txt string, pin bool) (err error) {
	if threadId == 404 {
		err = ErrTopicNotFound
	}
	return
}

func (sm *serviceMock) CopyToTopic(ctx context.Context, threadId, srcChatId int64, srcMsgId int) (err error) {
	if threadId == 404 {
		err = ErrTopicNotFound
	}
	return
}

func (sm *serviceMock) SendToUser(ctx context.Context, userId int64, txt string) (err error) {
	if userId == 403 {
		err = ErrBlocked
	}
	return
}

func (sm *serviceMock) CopyToUser(ctx context.Context, userId int64, srcMsgId int) (err error) {
	if userId == 403 {
		err = ErrBlocked
	}
	return
}
