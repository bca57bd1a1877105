package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tnavInter19/twitter-backend/models"
)

func (m *MongoDB) CreateFollow(ctx context.Context, followerID, followingID models.UserID) (models.Follow, error) {
	follow := models.Follow{
		ID:              bson.NewObjectID(),
		CreatedAt:       time.Now().Unix(),
		FollowerUserID:  followerID,
		FollowingUserID: followingID,
	}

	if _, err := m.coll(followColl).InsertOne(ctx, follow); err != nil {
		return models.Follow{}, mapErr(err)
	}
	return follow, nil
}

func followFilter(followerID, followingID models.UserID) bson.D {
	return bson.D{
		{Key: "follower_user_id", Value: followerID},
		{Key: "following_user_id", Value: followingID},
	}
}

func (m *MongoDB) FindFollow(ctx context.Context, followerID, followingID models.UserID) (follow models.Follow, err error) {
	err = m.coll(followColl).FindOne(ctx, followFilter(followerID, followingID)).Decode(&follow)
	return follow, mapErr(err)
}

func (m *MongoDB) DeleteFollow(ctx context.Context, followerID, followingID models.UserID) (models.Follow, error) {
	var follow models.Follow
	err := m.coll(followColl).FindOneAndDelete(ctx, followFilter(followerID, followingID)).Decode(&follow)
	return follow, mapErr(err)
}

func (m *MongoDB) queryFollows(ctx context.Context, filter bson.D, skip, limit int64) ([]models.Follow, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.coll(followColl).Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr(err)
	}

	follows := []models.Follow{}
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, mapErr(err)
	}
	return follows, nil
}

func (m *MongoDB) QueryFollowing(ctx context.Context, followerID models.UserID, skip, limit int64) ([]models.Follow, error) {
	return m.queryFollows(ctx, bson.D{{Key: "follower_user_id", Value: followerID}}, skip, limit)
}

func (m *MongoDB) CountFollowing(ctx context.Context, followerID models.UserID) (int64, error) {
	count, err := m.coll(followColl).CountDocuments(ctx, bson.D{{Key: "follower_user_id", Value: followerID}})
	return count, mapErr(err)
}

func (m *MongoDB) QueryFollowers(ctx context.Context, followingID models.UserID, skip, limit int64) ([]models.Follow, error) {
	return m.queryFollows(ctx, bson.D{{Key: "following_user_id", Value: followingID}}, skip, limit)
}

func (m *MongoDB) CountFollowers(ctx context.Context, followingID models.UserID) (int64, error) {
	count, err := m.coll(followColl).CountDocuments(ctx, bson.D{{Key: "following_user_id", Value: followingID}})
	return count, mapErr(err)
}

func (m *MongoDB) DeleteFollowsByFollower(ctx context.Context, followerID models.UserID) (int64, error) {
	result, err := m.coll(followColl).DeleteMany(ctx, bson.D{{Key: "follower_user_id", Value: followerID}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}
