package tickets

import (
	"context"
	"sync"
)

type storageMock struct {
	byUser   map[int64]Ticket
	byThread map[int64]Ticket
	lock     *sync.Mutex
}

func NewStorageMock() Storage {
	return &storageMock{
		byUser:   map[int64]Ticket{},
		byThread: map[int64]Ticket{},
		lock:     &sync.Mutex{},
	}
}

func (sm *storageMock) Close() error {
	return nil
}

func (sm *storageMock) Create(ctx context.Context, t Ticket) (err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	_, userTaken := sm.byUser[t.UserId]
	_, threadTaken := sm.byThread[t.ThreadId]
	switch {
	case userTaken || threadTaken:
		err = ErrAlreadyExists
	default:
		sm.byUser[t.UserId] = t
		sm.byThread[t.ThreadId] = t
	}
	return
}

func (sm *storageMock) GetByUser(ctx context.Context, userId int64) (t Ticket, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	t, found := sm.byUser[userId]
	if !found {
		err = ErrNotFound
	}
	return
}

func (sm *storageMock) GetByThread(ctx context.Context, threadId int64) (t Ticket, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	t, found := sm.byThread[threadId]
	if !found {
		err = ErrNotFound
	}
	return
}

func (sm *storageMock) DeleteByThread(ctx context.Context, threadId int64) (t Ticket, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	t, found := sm.byThread[threadId]
	switch found {
	case true:
		delete(sm.byThread, t.ThreadId)
		delete(sm.byUser, t.UserId)
	default:
		err = ErrNotFound
	}
	return
}

func (sm *storageMock) Count(ctx context.Context) (count int64, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	count = int64(len(sm.byThread))
	return
}
