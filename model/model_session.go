package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SessionUser is the profile snapshot taken from Discord at login. It is not
// re-validated for the life of the session.
type SessionUser struct {
	ID          string `bson:"id"          json:"id"`
	Username    string `bson:"username"    json:"username"`
	GlobalName  string `bson:"global_name" json:"global_name"`
	Avatar      string `bson:"avatar"      json:"avatar"`
	Email       string `bson:"email"       json:"email"`
	Verified    bool   `bson:"verified"    json:"verified"`
	PremiumType int    `bson:"premium_type" json:"premium_type"`
}

type Session struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"-"`
	User         SessionUser   `bson:"user"          json:"user"`
	AccessToken  string        `bson:"access_token"  json:"-"`
	RefreshToken string        `bson:"refresh_token" json:"-"`
	CreatedAt    time.Time     `bson:"created_at"    json:"-"`
	ExpiresAt    time.Time     `bson:"expires_at"    json:"-"`
}
