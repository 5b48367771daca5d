package tickets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/deskrelay/bot-telegram/api/telegram/forum"
	"github.com/deskrelay/bot-telegram/model/profile"
	"github.com/segmentio/ksuid"
)

// CmdClose is the exact admin directive that closes a ticket from
// within its topic. Anything else typed in a bound topic is relayed.
const CmdClose = "/close"

const msgClosedUser = "✅ <b>Support Ticket Closed!</b>\n\nYour issue has been resolved. If you need help again, press /start."
const msgClosedTopic = "🔴 <b>Ticket Closed &amp; Topic Deleted.</b>"
const msgDeliveryBlocked = "❌ Failed: the user blocked the bot."

// Service is the ticket binder: it owns the user/thread mapping and
// routes message copies across it.
type Service interface {

	// ResolveOrCreate returns the open ticket for the user, provisioning
	// a topic and persisting a new binding when there is none. The
	// profile labels the topic and fills the pinned intro card.
	ResolveOrCreate(ctx context.Context, userId int64, userName string, prof profile.Profile) (t Ticket, created bool, err error)

	// RouteUserMessage copies a private message from the user into their
	// bound topic. Fails with ErrNoTicket when the user has no open
	// ticket, including the case when the topic turned out to be gone.
	RouteUserMessage(ctx context.Context, userId int64, msgId int) (err error)

	// RouteAdminMessage copies an admin message posted in a bound topic
	// to the owning user, or closes the ticket when the message is the
	// close directive. Messages in unbound threads fail with
	// ErrUnknownThread and are otherwise ignored.
	RouteAdminMessage(ctx context.Context, threadId int64, msgId int, txt string) (err error)

	// Close tears the binding down, notifies the user and requests the
	// topic deletion best effort.
	Close(ctx context.Context, threadId int64) (err error)
}

type service struct {
	stor    Storage
	topics  forum.Service
	fmtMsg  Format
	log     *slog.Logger
	opsLock *sync.Mutex
}

func NewService(stor Storage, topics forum.Service, fmtMsg Format, log *slog.Logger) Service {
	return service{
		stor:    stor,
		topics:  topics,
		fmtMsg:  fmtMsg,
		log:     log,
		opsLock: &sync.Mutex{},
	}
}

func (svc service) ResolveOrCreate(ctx context.Context, userId int64, userName string, prof profile.Profile) (t Ticket, created bool, err error) {
	t, err = svc.stor.GetByUser(ctx, userId)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrNotFound) {
		return
	}
	// Provision the topic before taking the lock: the store is only
	// mutated once the outcome of the external call is known.
	var threadId int64
	threadId, err = svc.topics.CreateTopic(ctx, svc.fmtMsg.TopicName(prof.Name, prof.Status))
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrProvisioning, err)
		return
	}
	t, created, err = svc.bind(ctx, userId, userName, threadId)
	if !created {
		// a concurrent create for the same user won, discard the fresh topic
		if errDel := svc.topics.DeleteTopic(ctx, threadId); errDel != nil {
			svc.log.Warn(fmt.Sprintf("tickets: failed to discard topic %d after a lost create race: %s", threadId, errDel))
		}
	}
	if err == nil && created {
		card := svc.fmtMsg.Card(t, userName, prof)
		if errCard := svc.topics.SendToTopic(ctx, t.ThreadId, card, true); errCard != nil {
			svc.log.Warn(fmt.Sprintf("tickets: failed to pin the intro card in topic %d: %s", t.ThreadId, errCard))
		}
	}
	return
}

func (svc service) bind(ctx context.Context, userId int64, userName string, threadId int64) (t Ticket, created bool, err error) {
	svc.opsLock.Lock()
	defer svc.opsLock.Unlock()
	t, err = svc.stor.GetByUser(ctx, userId)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrNotFound) {
		return
	}
	t = Ticket{
		Id:       ksuid.New().String(),
		UserId:   userId,
		ThreadId: threadId,
		UserName: userName,
		Created:  time.Now().UTC(),
	}
	err = svc.stor.Create(ctx, t)
	switch {
	case err == nil:
		created = true
	case errors.Is(err, ErrAlreadyExists):
		// another replica bound the user first, return its ticket
		t, err = svc.stor.GetByUser(ctx, userId)
	}
	return
}

func (svc service) RouteUserMessage(ctx context.Context, userId int64, msgId int) (err error) {
	var t Ticket
	t, err = svc.stor.GetByUser(ctx, userId)
	switch {
	case errors.Is(err, ErrNotFound):
		err = ErrNoTicket
	case err == nil:
		err = svc.topics.CopyToTopic(ctx, t.ThreadId, userId, msgId)
		if errors.Is(err, forum.ErrTopicNotFound) {
			// the topic is gone out-of-band, treat as an implicit close
			if _, errUnbind := svc.unbind(ctx, t.ThreadId); errUnbind != nil && !errors.Is(errUnbind, ErrNotFound) {
				svc.log.Warn(fmt.Sprintf("tickets: failed to drop the stale binding for topic %d: %s", t.ThreadId, errUnbind))
			}
			err = ErrNoTicket
		}
	}
	return
}

func (svc service) RouteAdminMessage(ctx context.Context, threadId int64, msgId int, txt string) (err error) {
	var t Ticket
	t, err = svc.stor.GetByThread(ctx, threadId)
	switch {
	case errors.Is(err, ErrNotFound):
		err = ErrUnknownThread
	case err == nil:
		switch txt {
		case CmdClose:
			err = svc.Close(ctx, threadId)
		default:
			err = svc.topics.CopyToUser(ctx, t.UserId, msgId)
			if errors.Is(err, forum.ErrBlocked) {
				if errNotice := svc.topics.SendToTopic(ctx, threadId, msgDeliveryBlocked, false); errNotice != nil {
					svc.log.Warn(fmt.Sprintf("tickets: failed to report the blocked delivery in topic %d: %s", threadId, errNotice))
				}
				err = fmt.Errorf("%w: %s", ErrDeliveryBlocked, err)
			}
		}
	}
	return
}

func (svc service) Close(ctx context.Context, threadId int64) (err error) {
	var t Ticket
	t, err = svc.unbind(ctx, threadId)
	if err != nil {
		return
	}
	// the local close took effect, the rest is best effort
	if errNotice := svc.topics.SendToUser(ctx, t.UserId, msgClosedUser); errNotice != nil {
		svc.log.Warn(fmt.Sprintf("tickets: failed to send the closing notice to user %d: %s", t.UserId, errNotice))
	}
	if errNotice := svc.topics.SendToTopic(ctx, threadId, msgClosedTopic, false); errNotice != nil {
		svc.log.Warn(fmt.Sprintf("tickets: failed to announce the close in topic %d: %s", threadId, errNotice))
	}
	if errDel := svc.topics.DeleteTopic(ctx, threadId); errDel != nil {
		svc.log.Warn(fmt.Sprintf("tickets: failed to delete topic %d: %s", threadId, errDel))
	}
	return
}

func (svc service) unbind(ctx context.Context, threadId int64) (t Ticket, err error) {
	svc.opsLock.Lock()
	defer svc.opsLock.Unlock()
	t, err = svc.stor.DeleteByThread(ctx, threadId)
	return
}
