package tickets

import (
	"time"
)

// Ticket binds one end user to one forum topic in the admin group. A
// ticket is immutable once created: the only transitions are create and
// close, and close removes the record entirely.
type Ticket struct {

	// Id is the human-visible ticket reference shown in the topic card.
	Id string `bson:"id"`

	// UserId is the private chat id of the end user.
	UserId int64 `bson:"userId"`

	// ThreadId is the forum topic thread id inside the admin group.
	ThreadId int64 `bson:"threadId"`

	// UserName is the display name the topic was labeled with.
	UserName string `bson:"userName"`

	Created time.Time `bson:"created"`
}
