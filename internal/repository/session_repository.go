package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Zor292/website2/model"
)

type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection("sessions")}
}

// Create inserts a new session record and returns its id for the cookie.
func (r *SessionRepository) Create(ctx context.Context, sess model.Session) (string, error) {
	res, err := r.coll.InsertOne(ctx, sess)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// Find returns the session, or nil when it is unknown or already expired.
// The TTL monitor lags by up to a minute, so expiry is checked here too.
func (r *SessionRepository) Find(ctx context.Context, sid string) (*model.Session, error) {
	oid, err := bson.ObjectIDFromHex(sid)
	if err != nil {
		return nil, nil
	}
	var sess model.Session
	err = r.coll.FindOne(ctx, bson.M{
		"_id":        oid,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&sess)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	oid, err := bson.ObjectIDFromHex(sid)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
