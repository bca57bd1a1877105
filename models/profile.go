package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Profile struct {
	ID     bson.ObjectID `json:"id" bson:"_id"`
	UserID UserID        `json:"userId" bson:"user_id"`

	Bio      string `json:"bio" bson:"bio"`
	Location string `json:"location" bson:"location"`
	Website  string `json:"website" bson:"website"`
}
