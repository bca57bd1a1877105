package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tnavInter19/twitter-backend/models"
)

// verify MongoDB implements database interface in compile time
var _ Database = (*MongoDB)(nil)

const (
	userColl       = "users"
	postColl       = "posts"
	reactionColl   = "reactions"
	attachmentColl = "attachments"
	followColl     = "follows"
	bookmarkColl   = "bookmarks"
	interestColl   = "interests"
	mutedWordColl  = "muted_words"
	blockedColl    = "blocked_accounts"
	profileColl    = "profiles"
)

type MongoDB struct {
	client *mongo.Client
	db     string
}

func NewMongoDB(ctx context.Context, conn string, db string) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(conn))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	m := &MongoDB{client: client, db: db}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := m.coll(userColl).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = m.coll(followColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "follower_user_id", Value: 1}, {Key: "following_user_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.coll(reactionColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = m.coll(interestColl).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	return err
}

func (m *MongoDB) coll(name string) *mongo.Collection {
	return m.client.Database(m.db).Collection(name)
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mapErr converts driver errors to the store's error contract.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

func (m *MongoDB) CreateUser(ctx context.Context, user CreateUser) (models.User, error) {
	now := time.Now().Unix()
	dbuser := models.User{
		ID:        bson.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      strings.TrimSpace(user.Name),
		Email:     normalizeEmail(user.Email),
		Username:  strings.TrimSpace(user.Username),
		Password:  user.PwdHash,
	}

	if _, err := m.coll(userColl).InsertOne(ctx, dbuser); err != nil {
		return models.User{}, mapErr(err)
	}

	return dbuser, nil
}

func (m *MongoDB) FindUserByEmail(ctx context.Context, email string) (user models.User, err error) {
	err = m.coll(userColl).FindOne(ctx, bson.D{{Key: "email", Value: normalizeEmail(email)}}).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) FindUserByID(ctx context.Context, id models.UserID) (user models.User, err error) {
	err = m.coll(userColl).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) UpdateUsername(ctx context.Context, id models.UserID, username string) (user models.User, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "username", Value: strings.TrimSpace(username)},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(userColl).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) DeleteUser(ctx context.Context, id models.UserID) (int64, error) {
	result, err := m.coll(userColl).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
