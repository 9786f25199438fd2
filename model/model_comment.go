package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	TweetID   bson.ObjectID `bson:"tweet_id"      json:"tweet_id"`
	UserID    string        `bson:"user_id"       json:"user_id"`
	Username  string        `bson:"username"      json:"username"`
	Handle    string        `bson:"handle"        json:"handle"`
	Avatar    string        `bson:"avatar"        json:"avatar"`
	Content   string        `bson:"content"       json:"content"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
}
