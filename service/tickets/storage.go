package tickets

import (
	"context"
	"io"
)

// Storage persists the user/thread bindings. A single record carries
// both mapping directions, so the forward and reverse entries cannot
// diverge. Uniqueness of both sides is enforced by the implementation.
type Storage interface {
	io.Closer

	// Create persists a new ticket, failing with ErrAlreadyExists when
	// either side of the binding is already taken.
	Create(ctx context.Context, t Ticket) (err error)

	// GetByUser resolves the ticket owned by the user, ErrNotFound when absent.
	GetByUser(ctx context.Context, userId int64) (t Ticket, err error)

	// GetByThread resolves the ticket bound to the thread, ErrNotFound when absent.
	GetByThread(ctx context.Context, threadId int64) (t Ticket, err error)

	// DeleteByThread removes the binding in both directions at once.
	DeleteByThread(ctx context.Context, threadId int64) (t Ticket, err error)

	// Count reports the number of open tickets.
	Count(ctx context.Context) (count int64, err error)
}
