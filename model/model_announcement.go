package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID        bson.ObjectID `bson:"_id,omitempty"   json:"_id"`
	Title     string        `bson:"title"           json:"title"`
	Content   string        `bson:"content"         json:"content"`
	Icon      string        `bson:"icon,omitempty"  json:"icon,omitempty"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time     `bson:"created_at"      json:"created_at"`
}
