package model

import "time"

// RosterCacheID is the fixed _id of the single roster cache document.
const RosterCacheID = "rp_roster"

// MemberRef is the roster entry kept per bucketed member.
type MemberRef struct {
	ID     string `bson:"id"     json:"id"`
	Name   string `bson:"name"   json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

// RosterCache maps faction role id -> members holding it. Replaced wholesale
// on every rebuild, never merged.
type RosterCache struct {
	ID        string                 `bson:"_id"        json:"-"`
	Buckets   map[string][]MemberRef `bson:"buckets"    json:"buckets"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
}
