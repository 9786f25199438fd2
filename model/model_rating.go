package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Rating struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string        `bson:"user_id"       json:"user_id"`
	Username  string        `bson:"username"      json:"username"`
	Avatar    string        `bson:"avatar"        json:"avatar"`
	Stars     int           `bson:"stars"         json:"stars"`
	Text      string        `bson:"text"          json:"text"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
