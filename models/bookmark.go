package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultBookmarkCategory receives bookmarks saved without an explicit
// category.
const DefaultBookmarkCategory = "random"

type BookmarkCategory struct {
	Name  string          `json:"name" bson:"name"`
	Posts []bson.ObjectID `json:"posts" bson:"posts"`
}

// Bookmarks is the single per-user bookmarks document holding every
// category, active and archived.
type Bookmarks struct {
	ID     bson.ObjectID `json:"id" bson:"_id"`
	UserID UserID        `json:"userId" bson:"user_id"`

	Categories []BookmarkCategory `json:"categories" bson:"categories"`
	Archived   []BookmarkCategory `json:"archived" bson:"archived"`
}

// Category returns the index of the named category, or -1.
func (b *Bookmarks) Category(name string) int {
	for i, c := range b.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ArchivedCategory returns the index of the named archived category, or -1.
func (b *Bookmarks) ArchivedCategory(name string) int {
	for i, c := range b.Archived {
		if c.Name == name {
			return i
		}
	}
	return -1
}
