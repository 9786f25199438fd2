package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zor292/website2/model"
)

// TweetRepository owns both the tweets and comments collections: deleting a
// tweet must take its comments with it.
type TweetRepository struct {
	tweets   *mongo.Collection
	comments *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{
		tweets:   db.Collection("tweets"),
		comments: db.Collection("comments"),
	}
}

func (r *TweetRepository) Insert(ctx context.Context, t model.Tweet) (model.Tweet, error) {
	res, err := r.tweets.InsertOne(ctx, t)
	if err != nil {
		return model.Tweet{}, err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.Tweet{}, errors.New("unexpected inserted id type")
	}
	t.ID = oid
	return t, nil
}

func (r *TweetRepository) List(ctx context.Context, limit int64) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.tweets.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

// Find returns the tweet or nil when it does not exist.
func (r *TweetRepository) Find(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var t model.Tweet
	err := r.tweets.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepository) ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (*model.Tweet, error) {
	return r.toggle(ctx, id, userID, "likes")
}

func (r *TweetRepository) ToggleRepost(ctx context.Context, id bson.ObjectID, userID string) (*model.Tweet, error) {
	return r.toggle(ctx, id, userID, "reposts")
}

// toggle adds the user to the set field, or removes them when already present.
// $addToSet / $pull keep the set free of duplicates either way.
func (r *TweetRepository) toggle(ctx context.Context, id bson.ObjectID, userID, field string) (*model.Tweet, error) {
	res, err := r.tweets.UpdateOne(ctx,
		bson.M{"_id": id, field: bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{field: userID}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		res, err = r.tweets.UpdateOne(ctx,
			bson.M{"_id": id, field: userID},
			bson.M{"$pull": bson.M{field: userID}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, nil
		}
	}
	return r.Find(ctx, id)
}

// Delete removes the tweet and every comment referencing it.
func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := r.comments.DeleteMany(ctx, bson.M{"tweet_id": id}); err != nil {
		return err
	}
	_, err := r.tweets.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
