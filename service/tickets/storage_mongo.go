package tickets

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/deskrelay/bot-telegram/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type storageMongo struct {
	conn *mongo.Client
	db   *mongo.Database
	coll *mongo.Collection
}

const attrUserId = "userId"
const attrThreadId = "threadId"

var optsSrvApi = options.ServerAPI(options.ServerAPIVersion1)

// Both sides of the binding are unique: at most one open ticket per
// user, and a thread never serves more than one user.
var indices = []mongo.IndexModel{
	{
		Keys: bson.D{
			{
				Key:   attrUserId,
				Value: 1,
			},
		},
		Options: options.
			Index().
			SetUnique(true),
	},
	{
		Keys: bson.D{
			{
				Key:   attrThreadId,
				Value: 1,
			},
		},
		Options: options.
			Index().
			SetUnique(true),
	},
}

var optsGet = options.
	FindOne().
	SetShowRecordID(false)

func NewStorage(ctx context.Context, cfgDb config.TicketsDbConfig) (s Storage, err error) {
	clientOpts := options.
		Client().
		ApplyURI(cfgDb.Uri).
		SetServerAPIOptions(optsSrvApi)
	if cfgDb.Tls.Enabled {
		clientOpts = clientOpts.SetTLSConfig(&tls.Config{InsecureSkipVerify: cfgDb.Tls.Insecure})
	}
	if len(cfgDb.UserName) > 0 {
		auth := options.Credential{
			Username:    cfgDb.UserName,
			Password:    cfgDb.Password,
			PasswordSet: len(cfgDb.Password) > 0,
		}
		clientOpts = clientOpts.SetAuth(auth)
	}
	conn, err := mongo.Connect(ctx, clientOpts)
	var sm storageMongo
	if err == nil {
		db := conn.Database(cfgDb.Name)
		coll := db.Collection(cfgDb.Table.Name)
		sm.conn = conn
		sm.db = db
		sm.coll = coll
		_, err = sm.ensureIndices(ctx)
	}
	if err == nil {
		s = sm
	}
	return
}

func (sm storageMongo) ensureIndices(ctx context.Context) ([]string, error) {
	return sm.coll.Indexes().CreateMany(ctx, indices)
}

func (sm storageMongo) Close() error {
	return sm.conn.Disconnect(context.TODO())
}

func (sm storageMongo) Create(ctx context.Context, t Ticket) (err error) {
	_, err = sm.coll.InsertOne(ctx, t)
	err = decodeMongoError(err)
	return
}

func (sm storageMongo) GetByUser(ctx context.Context, userId int64) (t Ticket, err error) {
	q := bson.M{
		attrUserId: userId,
	}
	var result *mongo.SingleResult
	result = sm.coll.FindOne(ctx, q, optsGet)
	err = result.Err()
	if err == nil {
		err = result.Decode(&t)
	}
	err = decodeMongoError(err)
	return
}

func (sm storageMongo) GetByThread(ctx context.Context, threadId int64) (t Ticket, err error) {
	q := bson.M{
		attrThreadId: threadId,
	}
	var result *mongo.SingleResult
	result = sm.coll.FindOne(ctx, q, optsGet)
	err = result.Err()
	if err == nil {
		err = result.Decode(&t)
	}
	err = decodeMongoError(err)
	return
}

func (sm storageMongo) DeleteByThread(ctx context.Context, threadId int64) (t Ticket, err error) {
	q := bson.M{
		attrThreadId: threadId,
	}
	var result *mongo.SingleResult
	result = sm.coll.FindOneAndDelete(ctx, q)
	err = result.Err()
	if err == nil {
		err = result.Decode(&t)
	}
	err = decodeMongoError(err)
	return
}

func (sm storageMongo) Count(ctx context.Context) (count int64, err error) {
	count, err = sm.coll.CountDocuments(ctx, bson.M{})
	err = decodeMongoError(err)
	return
}

func decodeMongoError(src error) (dst error) {
	switch {
	case src == nil:
	case mongo.IsDuplicateKeyError(src):
		dst = fmt.Errorf("%w: %s", ErrAlreadyExists, src)
	case errors.Is(src, mongo.ErrNoDocuments):
		dst = ErrNotFound
	default:
		dst = fmt.Errorf("%w: %s", ErrInternal, src)
	}
	return
}
