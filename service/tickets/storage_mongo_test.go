package tickets

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/deskrelay/bot-telegram/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbUri = os.Getenv("DB_URI_TEST_MONGO")

func newTestStorage(ctx context.Context, t *testing.T) Storage {
	if dbUri == "" {
		t.Skip("DB_URI_TEST_MONGO is not set")
	}
	dbCfg := config.TicketsDbConfig{
		Uri:  dbUri,
		Name: "bot-telegram",
	}
	dbCfg.Table.Name = fmt.Sprintf("tickets-test-%d", time.Now().UnixMicro())
	s, err := NewStorage(ctx, dbCfg)
	require.NotNil(t, s)
	require.Nil(t, err)
	return s
}

func clear(ctx context.Context, t *testing.T, sm storageMongo) {
	require.Nil(t, sm.coll.Drop(ctx))
	require.Nil(t, sm.Close())
}

func TestStorageMongo_Create(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	s := newTestStorage(ctx, t)
	defer clear(ctx, t, s.(storageMongo))
	//
	preExisting := Ticket{
		Id:       "tkt0",
		UserId:   111,
		ThreadId: 1,
		UserName: "john",
		Created:  time.Now().UTC(),
	}
	require.Nil(t, s.Create(ctx, preExisting))
	//
	cases := map[string]struct {
		ticket Ticket
		err    error
	}{
		"ok": {
			ticket: Ticket{
				Id:       "tkt1",
				UserId:   222,
				ThreadId: 2,
			},
		},
		"user already bound": {
			ticket: Ticket{
				Id:       "tkt2",
				UserId:   111,
				ThreadId: 3,
			},
			err: ErrAlreadyExists,
		},
		"thread already bound": {
			ticket: Ticket{
				Id:       "tkt3",
				UserId:   333,
				ThreadId: 1,
			},
			err: ErrAlreadyExists,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			err := s.Create(ctx, c.ticket)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestStorageMongo_Get(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	s := newTestStorage(ctx, t)
	defer clear(ctx, t, s.(storageMongo))
	//
	tkt := Ticket{
		Id:       "tkt0",
		UserId:   111,
		ThreadId: 1,
		UserName: "john",
		Created:  time.Now().UTC(),
	}
	require.Nil(t, s.Create(ctx, tkt))
	//
	byUser, err := s.GetByUser(ctx, 111)
	assert.Nil(t, err)
	assert.Equal(t, tkt.Id, byUser.Id)
	assert.Equal(t, tkt.ThreadId, byUser.ThreadId)
	assert.Equal(t, tkt.UserName, byUser.UserName)
	byThread, err := s.GetByThread(ctx, 1)
	assert.Nil(t, err)
	assert.Equal(t, tkt.Id, byThread.Id)
	assert.Equal(t, tkt.UserId, byThread.UserId)
	//
	_, err = s.GetByUser(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByThread(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorageMongo_DeleteByThread(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	s := newTestStorage(ctx, t)
	defer clear(ctx, t, s.(storageMongo))
	//
	require.Nil(t, s.Create(ctx, Ticket{
		Id:       "tkt0",
		UserId:   111,
		ThreadId: 1,
	}))
	//
	deleted, err := s.DeleteByThread(ctx, 1)
	assert.Nil(t, err)
	assert.Equal(t, int64(111), deleted.UserId)
	// both directions are gone at once
	_, err = s.GetByUser(ctx, 111)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByThread(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	//
	_, err = s.DeleteByThread(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorageMongo_Count(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()
	s := newTestStorage(ctx, t)
	defer clear(ctx, t, s.(storageMongo))
	//
	count, err := s.Count(ctx)
	assert.Nil(t, err)
	assert.Zero(t, count)
	for i := int64(0); i < 3; i++ {
		require.Nil(t, s.Create(ctx, Ticket{
			Id:       fmt.Sprintf("tkt%d", i),
			UserId:   100 + i,
			ThreadId: i,
		}))
	}
	count, err = s.Count(ctx)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), count)
}
