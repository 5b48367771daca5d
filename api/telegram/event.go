package telegram

import (
	"strings"

	"gopkg.in/telebot.v3"
)

type EventKind int

const (
	EventUnknown EventKind = iota
	EventStartDirective
	EventUserMessage
	EventAdminMessage
	EventCloseDirective
)

func (k EventKind) String() (s string) {
	switch k {
	case EventStartDirective:
		s = "StartDirective"
	case EventUserMessage:
		s = "UserMessage"
	case EventAdminMessage:
		s = "AdminMessage"
	case EventCloseDirective:
		s = "CloseDirective"
	default:
		s = "Unknown"
	}
	return
}

// Classify tags an inbound message so that the single dispatch point in
// the handler stays a plain switch. Messages in the admin group outside
// any topic, service messages and anything from other chats are Unknown
// and ignored.
func Classify(msg *telebot.Message, groupId int64, closeCmd string) (k EventKind) {
	if msg == nil || msg.Chat == nil {
		return
	}
	switch {
	case msg.Chat.ID == groupId:
		if msg.ThreadID == 0 || msg.TopicCreated != nil {
			return
		}
		switch msg.Text {
		case closeCmd:
			k = EventCloseDirective
		default:
			k = EventAdminMessage
		}
	case msg.Chat.Type == telebot.ChatPrivate:
		switch {
		case strings.HasPrefix(msg.Text, "/start"):
			k = EventStartDirective
		default:
			k = EventUserMessage
		}
	}
	return
}
