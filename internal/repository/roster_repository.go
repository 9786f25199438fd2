package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zor292/website2/model"
)

type RosterRepository struct {
	coll *mongo.Collection
}

func NewRosterRepository(db *mongo.Database) *RosterRepository {
	return &RosterRepository{coll: db.Collection("roster_cache")}
}

// Replace swaps in the freshly built cache document under its fixed id.
func (r *RosterRepository) Replace(ctx context.Context, cache model.RosterCache) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": model.RosterCacheID},
		cache,
		options.Replace().SetUpsert(true))
	return err
}

// Get returns the cached roster, or nil when no sync has run yet.
func (r *RosterRepository) Get(ctx context.Context) (*model.RosterCache, error) {
	var cache model.RosterCache
	err := r.coll.FindOne(ctx, bson.M{"_id": model.RosterCacheID}).Decode(&cache)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cache, nil
}
