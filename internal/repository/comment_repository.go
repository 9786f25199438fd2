package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zor292/website2/model"
)

type CommentRepository struct {
	comments *mongo.Collection
	tweets   *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		comments: db.Collection("comments"),
		tweets:   db.Collection("tweets"),
	}
}

// Insert stores the comment and bumps the parent tweet's counter.
func (r *CommentRepository) Insert(ctx context.Context, cm model.Comment) (model.Comment, error) {
	res, err := r.comments.InsertOne(ctx, cm)
	if err != nil {
		return model.Comment{}, err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.Comment{}, errors.New("unexpected inserted id type")
	}
	cm.ID = oid

	_, _ = r.tweets.UpdateOne(ctx,
		bson.M{"_id": cm.TweetID},
		bson.M{"$inc": bson.M{"comment_count": 1}})
	return cm, nil
}

func (r *CommentRepository) ListByTweet(ctx context.Context, tweetID bson.ObjectID) ([]model.Comment, error) {
	cursor, err := r.comments.Find(ctx,
		bson.M{"tweet_id": tweetID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []model.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Find(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var cm model.Comment
	err := r.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&cm)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// Delete removes the comment and decrements the parent tweet's counter.
func (r *CommentRepository) Delete(ctx context.Context, id, tweetID bson.ObjectID) error {
	res, err := r.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount > 0 {
		_, _ = r.tweets.UpdateOne(ctx,
			bson.M{"_id": tweetID},
			bson.M{"$inc": bson.M{"comment_count": -1}})
	}
	return nil
}
