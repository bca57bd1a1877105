package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserID is the identifier of a user document. An alias keeps the
// ObjectID bson and json codecs intact.
type UserID = bson.ObjectID

func ParseUserID(id string) (UserID, error) {
	return bson.ObjectIDFromHex(id)
}

type User struct {
	ID        UserID `json:"id" bson:"_id"`
	CreatedAt int64  `json:"-" bson:"created_at"`
	UpdatedAt int64  `json:"-" bson:"updated_at"`

	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Username string `json:"username" bson:"username"`
	Password string `json:"-" bson:"password"`
}

// DeleteUserResult reports how many documents each collection lost when
// an account was removed.
type DeleteUserResult struct {
	ReactionsDeleted   int64 `json:"reactionsDeleted"`
	AttachmentsDeleted int64 `json:"attachmentsDeleted"`
	PostsDeleted       int64 `json:"postsDeleted"`
	ProfilesDeleted    int64 `json:"profilesDeleted"`
	FollowsDeleted     int64 `json:"followsDeleted"`
	UsersDeleted       int64 `json:"usersDeleted"`
}
