package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Follow struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`

	FollowerUserID  UserID `json:"followerUserId" bson:"follower_user_id"`
	FollowingUserID UserID `json:"followingUserId" bson:"following_user_id"`

	// Resolved counterpart of the relation, filled in by the service
	// before the follow is returned to the client.
	User *User `json:"user,omitempty" bson:"-"`
}
