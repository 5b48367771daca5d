package forum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBlocked = errors.New("recipient blocked the bot")
var ErrTopicNotFound = errors.New("topic not found")
var ErrInternal = errors.New("telegram api failure")

// decodeError maps the Telegram Bot API error descriptions to the
// package sentinels. The API reports conditions as text only, so the
// match is on the description substring.
func decodeError(src error) (dst error) {
	switch {
	case src == nil:
	case strings.Contains(src.Error(), "blocked by the user"):
		dst = fmt.Errorf("%w: %s", ErrBlocked, src)
	case strings.Contains(src.Error(), "user is deactivated"):
		dst = fmt.Errorf("%w: %s", ErrBlocked, src)
	case strings.Contains(src.Error(), "thread not found"):
		dst = fmt.Errorf("%w: %s", ErrTopicNotFound, src)
	case strings.Contains(src.Error(), "TOPIC_DELETED"):
		dst = fmt.Errorf("%w: %s", ErrTopicNotFound, src)
	default:
		dst = fmt.Errorf("%w: %s", ErrInternal, src)
	}
	return
}
