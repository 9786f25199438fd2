package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Zor292/website2/model"
)

type AnnouncementRepository struct {
	coll *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{coll: db.Collection("announcements")}
}

func (r *AnnouncementRepository) Insert(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return model.Announcement{}, err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.Announcement{}, errors.New("unexpected inserted id type")
	}
	a.ID = oid
	return a, nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	announcements := []model.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
