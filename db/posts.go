package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tnavInter19/twitter-backend/models"
)

func (m *MongoDB) CreatePost(ctx context.Context, post CreatePost) (models.Post, error) {
	now := time.Now().Unix()
	dbpost := models.Post{
		ID:             bson.NewObjectID(),
		CreatedAt:      now,
		UpdatedAt:      now,
		UserID:         post.UserID,
		Text:           post.Text,
		Type:           post.Type,
		OriginalPostID: post.OriginalPostID,
	}

	if _, err := m.coll(postColl).InsertOne(ctx, dbpost); err != nil {
		return models.Post{}, mapErr(err)
	}

	return dbpost, nil
}

func (m *MongoDB) FindPostByID(ctx context.Context, id bson.ObjectID) (post models.Post, err error) {
	err = m.coll(postColl).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&post)
	return post, mapErr(err)
}

func (m *MongoDB) FindOwnedPost(ctx context.Context, id bson.ObjectID, userID models.UserID) (post models.Post, err error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
	}
	err = m.coll(postColl).FindOne(ctx, filter).Decode(&post)
	return post, mapErr(err)
}

func (m *MongoDB) FindAttachablePost(ctx context.Context, id bson.ObjectID, userID models.UserID) (post models.Post, err error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
		{Key: "type", Value: bson.D{{Key: "$in", Value: bson.A{models.PostTypePost, models.PostTypeReply}}}},
		{Key: "attachment_id", Value: nil},
	}
	err = m.coll(postColl).FindOne(ctx, filter).Decode(&post)
	return post, mapErr(err)
}

func (m *MongoDB) FindAttachedPost(ctx context.Context, id bson.ObjectID) (post models.Post, err error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "attachment_id", Value: bson.D{{Key: "$ne", Value: nil}}},
	}
	err = m.coll(postColl).FindOne(ctx, filter).Decode(&post)
	return post, mapErr(err)
}

func (m *MongoDB) SetPostAttachment(ctx context.Context, id, attachmentID bson.ObjectID) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "attachment_id", Value: attachmentID},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := m.coll(postColl).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return mapErr(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoDB) DeletePost(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll(postColl).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapErr(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoDB) DeleteTextlessReposts(ctx context.Context, originalPostID bson.ObjectID) (int64, error) {
	filter := bson.D{
		{Key: "original_post_id", Value: originalPostID},
		{Key: "type", Value: models.PostTypeRepost},
		{Key: "text", Value: bson.D{{Key: "$in", Value: bson.A{nil, ""}}}},
	}

	result, err := m.coll(postColl).DeleteMany(ctx, filter)
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}

func (m *MongoDB) DeletePostsByUser(ctx context.Context, userID models.UserID) (int64, error) {
	result, err := m.coll(postColl).DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}

func (m *MongoDB) QueryPosts(ctx context.Context, userID models.UserID, postType models.PostType, skip, limit int64) ([]models.Post, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "type", Value: postType},
	}

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.coll(postColl).Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr(err)
	}

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, mapErr(err)
	}
	return posts, nil
}

func (m *MongoDB) CountPosts(ctx context.Context, userID models.UserID, postType models.PostType) (int64, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "type", Value: postType},
	}
	count, err := m.coll(postColl).CountDocuments(ctx, filter)
	return count, mapErr(err)
}

func (m *MongoDB) QueryReplies(ctx context.Context, originalPostID bson.ObjectID, skip, limit int64) ([]models.Post, error) {
	filter := bson.D{
		{Key: "original_post_id", Value: originalPostID},
		{Key: "type", Value: models.PostTypeReply},
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := m.coll(postColl).Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr(err)
	}

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, mapErr(err)
	}
	return posts, nil
}

func (m *MongoDB) CountByOriginal(ctx context.Context, originalPostID bson.ObjectID, postType models.PostType) (int64, error) {
	filter := bson.D{
		{Key: "original_post_id", Value: originalPostID},
		{Key: "type", Value: postType},
	}
	count, err := m.coll(postColl).CountDocuments(ctx, filter)
	return count, mapErr(err)
}
