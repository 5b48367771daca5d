package forum

import (
	"context"
	"strconv"

	"gopkg.in/telebot.v3"
)

// Service is the chat platform collaborator: forum topic provisioning in
// the admin group and message relay in both directions. Every call goes
// out over the network, so callers sequence their own state changes
// around the reported outcome.
type Service interface {

	// CreateTopic provisions a new forum topic in the admin group and
	// returns its thread id.
	CreateTopic(ctx context.Context, name string) (threadId int64, err error)

	// DeleteTopic removes the forum topic together with all its messages.
	DeleteTopic(ctx context.Context, threadId int64) (err error)

	// SendToTopic posts a service text into the topic, optionally pinning it.
	SendToTopic(ctx context.Context, threadId int64, txt string, pin bool) (err error)

	// CopyToTopic copies a message from a private chat into the topic,
	// preserving its content but not the forwarding header.
	CopyToTopic(ctx context.Context, threadId, srcChatId int64, srcMsgId int) (err error)

	// SendToUser posts a service text into the private chat with the user.
	SendToUser(ctx context.Context, userId int64, txt string) (err error)

	// CopyToUser copies an admin group message to the private chat with the user.
	CopyToUser(ctx context.Context, userId int64, srcMsgId int) (err error)
}

type service struct {
	bot     *telebot.Bot
	groupId int64
}

func NewService(bot *telebot.Bot, groupId int64) Service {
	return service{
		bot:     bot,
		groupId: groupId,
	}
}

func (svc service) CreateTopic(ctx context.Context, name string) (threadId int64, err error) {
	var topic *telebot.Topic
	topic, err = svc.bot.CreateTopic(svc.group(), &telebot.Topic{
		Name: name,
	})
	if err == nil {
		threadId = int64(topic.ThreadID)
	}
	err = decodeError(err)
	return
}

func (svc service) DeleteTopic(ctx context.Context, threadId int64) (err error) {
	err = svc.bot.DeleteTopic(svc.group(), &telebot.Topic{
		ThreadID: int(threadId),
	})
	err = decodeError(err)
	return
}

func (svc service) SendToTopic(ctx context.Context, threadId int64, txt string, pin bool) (err error) {
	opts := telebot.SendOptions{
		ThreadID:  int(threadId),
		ParseMode: telebot.ModeHTML,
	}
	var msg *telebot.Message
	msg, err = svc.bot.Send(telebot.ChatID(svc.groupId), txt, &opts)
	if err == nil && pin {
		err = svc.bot.Pin(msg)
	}
	err = decodeError(err)
	return
}

func (svc service) CopyToTopic(ctx context.Context, threadId, srcChatId int64, srcMsgId int) (err error) {
	src := telebot.StoredMessage{
		MessageID: strconv.Itoa(srcMsgId),
		ChatID:    srcChatId,
	}
	opts := telebot.SendOptions{
		ThreadID: int(threadId),
	}
	_, err = svc.bot.Copy(telebot.ChatID(svc.groupId), src, &opts)
	err = decodeError(err)
	return
}

func (svc service) SendToUser(ctx context.Context, userId int64, txt string) (err error) {
	_, err = svc.bot.Send(telebot.ChatID(userId), txt, telebot.ModeHTML)
	err = decodeError(err)
	return
}

func (svc service) CopyToUser(ctx context.Context, userId int64, srcMsgId int) (err error) {
	src := telebot.StoredMessage{
		MessageID: strconv.Itoa(srcMsgId),
		ChatID:    svc.groupId,
	}
	_, err = svc.bot.Copy(telebot.ChatID(userId), src)
	err = decodeError(err)
	return
}

func (svc service) group() *telebot.Chat {
	return &telebot.Chat{
		ID: svc.groupId,
	}
}
