package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultInterests seeds the interests collection on first start.
var DefaultInterests = []string{
	"Technology 🖥️",
	"Science 🥼",
	"Art 🎨",
	"History 🏺",
	"Animation 💫",
	"Astrology 👩🏽‍🚀",
	"Books 📚",
	"Writing ✍🏽",
}

type Interest struct {
	ID    bson.ObjectID   `json:"id" bson:"_id"`
	Name  string          `json:"name" bson:"name"`
	Posts []bson.ObjectID `json:"posts" bson:"posts"`
	Users []string        `json:"users" bson:"users"`
}

// MutedWords is the per-user set of words filtered out of timelines.
type MutedWords struct {
	ID     bson.ObjectID `json:"id" bson:"_id"`
	UserID UserID        `json:"userId" bson:"user_id"`
	Words  []string      `json:"mutedWords" bson:"muted_words"`
}

// BlockedAccounts is the per-user set of blocked account ids.
type BlockedAccounts struct {
	ID       bson.ObjectID `json:"id" bson:"_id"`
	UserID   UserID        `json:"userId" bson:"user_id"`
	Accounts []string      `json:"blockedAccounts" bson:"blocked_accounts"`
}
