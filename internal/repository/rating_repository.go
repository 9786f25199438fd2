package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zor292/website2/model"
)

type RatingRepository struct {
	coll *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{coll: db.Collection("ratings")}
}

// Upsert writes the caller's rating, replacing any previous one by the same
// user. Reports whether an existing document was updated.
//
// Two concurrent first-time submissions can both try the insert arm of the
// upsert; the loser hits the unique user_id index with code 11000. The
// document exists at that point, so one retry resolves it as an update.
func (r *RatingRepository) Upsert(ctx context.Context, rating model.Rating) (bool, error) {
	updated, err := r.tryUpsert(ctx, rating)
	if err != nil && isDuplicateKey(err) {
		return r.tryUpsert(ctx, rating)
	}
	return updated, err
}

func (r *RatingRepository) tryUpsert(ctx context.Context, rating model.Rating) (bool, error) {
	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": rating.UserID},
		bson.M{
			"$set": bson.M{
				"username":   rating.Username,
				"avatar":     rating.Avatar,
				"stars":      rating.Stars,
				"text":       rating.Text,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

func (r *RatingRepository) List(ctx context.Context) ([]model.Rating, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := []model.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// Delete removes a rating by document id. Returns false when nothing matched.
func (r *RatingRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
