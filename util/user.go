package util

import (
	"strconv"
)

const PrefixUserId = "tg://user?id="

// UserLink returns the deep link for a user id, usable as an HTML anchor
// target even when the user has no public username.
func UserLink(id int64) (link string) {
	link = PrefixUserId + strconv.FormatInt(id, 10)
	return
}
