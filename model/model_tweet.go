package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MaxContentLen is the hard cap for tweet and comment bodies.
const MaxContentLen = 280

type Tweet struct {
	ID           bson.ObjectID `bson:"_id,omitempty"   json:"_id"`
	UserID       string        `bson:"user_id"         json:"user_id"`
	Username     string        `bson:"username"        json:"username"`
	Handle       string        `bson:"handle"          json:"handle"`
	Avatar       string        `bson:"avatar"          json:"avatar"`
	Content      string        `bson:"content"         json:"content"`
	Image        string        `bson:"image,omitempty" json:"image,omitempty"`
	Likes        []string      `bson:"likes"           json:"likes"`
	Reposts      []string      `bson:"reposts"         json:"reposts"`
	CommentCount int           `bson:"comment_count"   json:"comment_count"`
	CreatedAt    time.Time     `bson:"created_at"      json:"created_at"`
}
