package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tnavInter19/twitter-backend/models"
)

func (m *MongoDB) UpsertReaction(ctx context.Context, userID models.UserID, postID bson.ObjectID, reaction models.ReactionType) (models.Reaction, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "post_id", Value: postID},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "type", Value: reaction}}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: bson.NewObjectID()},
			{Key: "user_id", Value: userID},
			{Key: "post_id", Value: postID},
			{Key: "created_at", Value: time.Now().Unix()},
		}},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result models.Reaction
	err := m.coll(reactionColl).FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	return result, mapErr(err)
}

func (m *MongoDB) DeleteReaction(ctx context.Context, userID models.UserID, postID bson.ObjectID) (models.Reaction, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "post_id", Value: postID},
	}

	var result models.Reaction
	err := m.coll(reactionColl).FindOneAndDelete(ctx, filter).Decode(&result)
	return result, mapErr(err)
}

func (m *MongoDB) QueryReactions(ctx context.Context, userID models.UserID, skip, limit int64) ([]models.Reaction, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.coll(reactionColl).Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, mapErr(err)
	}

	reactions := []models.Reaction{}
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, mapErr(err)
	}
	return reactions, nil
}

func (m *MongoDB) CountReactions(ctx context.Context, userID models.UserID) (int64, error) {
	count, err := m.coll(reactionColl).CountDocuments(ctx, bson.D{{Key: "user_id", Value: userID}})
	return count, mapErr(err)
}

func (m *MongoDB) CountPostReactions(ctx context.Context, postID bson.ObjectID) (int64, error) {
	count, err := m.coll(reactionColl).CountDocuments(ctx, bson.D{{Key: "post_id", Value: postID}})
	return count, mapErr(err)
}

func (m *MongoDB) DeleteReactionsByUser(ctx context.Context, userID models.UserID) (int64, error) {
	result, err := m.coll(reactionColl).DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}

func (m *MongoDB) CreateAttachment(ctx context.Context, userID models.UserID, postID bson.ObjectID, mimeType string) (models.Attachment, error) {
	attachment := models.Attachment{
		ID:        bson.NewObjectID(),
		CreatedAt: time.Now().Unix(),
		UserID:    userID,
		PostID:    postID,
		MimeType:  mimeType,
	}

	if _, err := m.coll(attachmentColl).InsertOne(ctx, attachment); err != nil {
		return models.Attachment{}, mapErr(err)
	}
	return attachment, nil
}

func (m *MongoDB) FindAttachmentByID(ctx context.Context, id bson.ObjectID) (attachment models.Attachment, err error) {
	err = m.coll(attachmentColl).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&attachment)
	return attachment, mapErr(err)
}

func (m *MongoDB) FindAttachmentsByUser(ctx context.Context, userID models.UserID) ([]models.Attachment, error) {
	cursor, err := m.coll(attachmentColl).Find(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return nil, mapErr(err)
	}

	attachments := []models.Attachment{}
	if err := cursor.All(ctx, &attachments); err != nil {
		return nil, mapErr(err)
	}
	return attachments, nil
}

func (m *MongoDB) DeleteAttachment(ctx context.Context, id bson.ObjectID) error {
	_, err := m.coll(attachmentColl).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return mapErr(err)
}

func (m *MongoDB) DeleteAttachmentsByUser(ctx context.Context, userID models.UserID) (int64, error) {
	result, err := m.coll(attachmentColl).DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}
