package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type PostType string

const (
	PostTypePost   PostType = "post"
	PostTypeRepost PostType = "repost"
	PostTypeReply  PostType = "reply"
)

type Post struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	CreatedAt int64         `json:"createdAt" bson:"created_at"`
	UpdatedAt int64         `json:"updatedAt" bson:"updated_at"`

	UserID UserID   `json:"userId" bson:"user_id"`
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
	Type   PostType `json:"type" bson:"type"`

	// Set on reposts and replies only.
	OriginalPostID *bson.ObjectID `json:"originalPostId,omitempty" bson:"original_post_id,omitempty"`
	AttachmentID   *bson.ObjectID `json:"attachmentId,omitempty" bson:"attachment_id,omitempty"`
}

type ReactionType string

const ReactionTypeLike ReactionType = "like"

type Reaction struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	CreatedAt int64         `json:"-" bson:"created_at"`

	UserID UserID        `json:"userId" bson:"user_id"`
	PostID bson.ObjectID `json:"postId" bson:"post_id"`
	Type   ReactionType  `json:"type" bson:"type"`
}

type Attachment struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	CreatedAt int64         `json:"-" bson:"created_at"`

	UserID   UserID        `json:"-" bson:"user_id"`
	PostID   bson.ObjectID `json:"-" bson:"post_id"`
	MimeType string        `json:"mimeType" bson:"mime_type"`
}
