package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// CreateUser carries the fields of a new user record. PwdHash must
// already be hashed; the store never sees a plaintext password.
type CreateUser struct {
	Name     string
	Email    string
	Username string
	PwdHash  string
}

type Users interface {
	CreateUser(ctx context.Context, user CreateUser) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id models.UserID) (models.User, error)
	UpdateUsername(ctx context.Context, id models.UserID, username string) (models.User, error)
	DeleteUser(ctx context.Context, id models.UserID) (int64, error)
}

// CreatePost carries the fields of a new post, repost or reply.
type CreatePost struct {
	UserID         models.UserID
	Text           string
	Type           models.PostType
	OriginalPostID *bson.ObjectID
}

type Posts interface {
	CreatePost(ctx context.Context, post CreatePost) (models.Post, error)
	FindPostByID(ctx context.Context, id bson.ObjectID) (models.Post, error)
	// FindOwnedPost matches a post of any type owned by the user.
	FindOwnedPost(ctx context.Context, id bson.ObjectID, userID models.UserID) (models.Post, error)
	// FindAttachablePost matches an owned post or reply without an
	// attachment. Reposts cannot carry attachments.
	FindAttachablePost(ctx context.Context, id bson.ObjectID, userID models.UserID) (models.Post, error)
	// FindAttachedPost matches a post that has an attachment.
	FindAttachedPost(ctx context.Context, id bson.ObjectID) (models.Post, error)
	SetPostAttachment(ctx context.Context, id, attachmentID bson.ObjectID) error
	DeletePost(ctx context.Context, id bson.ObjectID) error
	// DeleteTextlessReposts removes reposts of the post that carry no
	// text of their own. Replies and quoting reposts stay.
	DeleteTextlessReposts(ctx context.Context, originalPostID bson.ObjectID) (int64, error)
	DeletePostsByUser(ctx context.Context, userID models.UserID) (int64, error)
	QueryPosts(ctx context.Context, userID models.UserID, postType models.PostType, skip, limit int64) ([]models.Post, error)
	CountPosts(ctx context.Context, userID models.UserID, postType models.PostType) (int64, error)
	QueryReplies(ctx context.Context, originalPostID bson.ObjectID, skip, limit int64) ([]models.Post, error)
	CountByOriginal(ctx context.Context, originalPostID bson.ObjectID, postType models.PostType) (int64, error)
}

type Reactions interface {
	UpsertReaction(ctx context.Context, userID models.UserID, postID bson.ObjectID, reaction models.ReactionType) (models.Reaction, error)
	DeleteReaction(ctx context.Context, userID models.UserID, postID bson.ObjectID) (models.Reaction, error)
	QueryReactions(ctx context.Context, userID models.UserID, skip, limit int64) ([]models.Reaction, error)
	CountReactions(ctx context.Context, userID models.UserID) (int64, error)
	CountPostReactions(ctx context.Context, postID bson.ObjectID) (int64, error)
	DeleteReactionsByUser(ctx context.Context, userID models.UserID) (int64, error)
}

type Attachments interface {
	CreateAttachment(ctx context.Context, userID models.UserID, postID bson.ObjectID, mimeType string) (models.Attachment, error)
	FindAttachmentByID(ctx context.Context, id bson.ObjectID) (models.Attachment, error)
	FindAttachmentsByUser(ctx context.Context, userID models.UserID) ([]models.Attachment, error)
	DeleteAttachment(ctx context.Context, id bson.ObjectID) error
	DeleteAttachmentsByUser(ctx context.Context, userID models.UserID) (int64, error)
}

type Follows interface {
	CreateFollow(ctx context.Context, followerID, followingID models.UserID) (models.Follow, error)
	FindFollow(ctx context.Context, followerID, followingID models.UserID) (models.Follow, error)
	DeleteFollow(ctx context.Context, followerID, followingID models.UserID) (models.Follow, error)
	QueryFollowing(ctx context.Context, followerID models.UserID, skip, limit int64) ([]models.Follow, error)
	CountFollowing(ctx context.Context, followerID models.UserID) (int64, error)
	QueryFollowers(ctx context.Context, followingID models.UserID, skip, limit int64) ([]models.Follow, error)
	CountFollowers(ctx context.Context, followingID models.UserID) (int64, error)
	DeleteFollowsByFollower(ctx context.Context, followerID models.UserID) (int64, error)
}

type Bookmarks interface {
	FindBookmarks(ctx context.Context, userID models.UserID) (models.Bookmarks, error)
	SaveBookmarks(ctx context.Context, bookmarks models.Bookmarks) (models.Bookmarks, error)
}

type Interests interface {
	ListInterests(ctx context.Context) ([]models.Interest, error)
	FindInterestByName(ctx context.Context, name string) (models.Interest, error)
	SaveInterest(ctx context.Context, interest models.Interest) (models.Interest, error)
	CountInterests(ctx context.Context) (int64, error)
	InsertInterests(ctx context.Context, interests []models.Interest) error
}

type MutedWords interface {
	FindMutedWords(ctx context.Context, userID models.UserID) (models.MutedWords, error)
	SaveMutedWords(ctx context.Context, words models.MutedWords) (models.MutedWords, error)
}

type BlockedAccounts interface {
	FindBlockedAccounts(ctx context.Context, userID models.UserID) (models.BlockedAccounts, error)
	SaveBlockedAccounts(ctx context.Context, accounts models.BlockedAccounts) (models.BlockedAccounts, error)
}

type Profiles interface {
	FindProfile(ctx context.Context, userID models.UserID) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	DeleteProfile(ctx context.Context, userID models.UserID) (int64, error)
}

// Database aggregates every collection contract the backend uses.
type Database interface {
	Users
	Posts
	Reactions
	Attachments
	Follows
	Bookmarks
	Interests
	MutedWords
	BlockedAccounts
	Profiles
}
