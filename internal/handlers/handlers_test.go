package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

// testApp returns a Fiber app that injects u as the authenticated session on
// every request. A nil u means anonymous.
func testApp(u *model.SessionUser) *fiber.App {
	app := fiber.New()
	if u != nil {
		app.Use(func(c *fiber.Ctx) error {
			authctx.Set(c, &model.Session{ID: bson.NewObjectID(), User: *u})
			return c.Next()
		})
	}
	return app
}

func jsonReq(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// --- fakes -----------------------------------------------------------------

type fakeRatingStore struct {
	byUser map[string]model.Rating
	err    error
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{byUser: map[string]model.Rating{}}
}

func (f *fakeRatingStore) Upsert(_ context.Context, r model.Rating) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, existed := f.byUser[r.UserID]
	if !existed {
		r.ID = bson.NewObjectID()
	} else {
		r.ID = f.byUser[r.UserID].ID
	}
	f.byUser[r.UserID] = r
	return existed, nil
}

func (f *fakeRatingStore) List(context.Context) ([]model.Rating, error) {
	out := []model.Rating{}
	for _, r := range f.byUser {
		out = append(out, r)
	}
	return out, f.err
}

func (f *fakeRatingStore) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	for uid, r := range f.byUser {
		if r.ID == id {
			delete(f.byUser, uid)
			return true, nil
		}
	}
	return false, nil
}

// feedStore backs both TweetStore and CommentStore with the same maps, so
// cross-collection behavior (cascade delete, comment counters) is observable.
type feedStore struct {
	tweets   map[bson.ObjectID]*model.Tweet
	comments map[bson.ObjectID]*model.Comment
}

func newFeedStore() *feedStore {
	return &feedStore{
		tweets:   map[bson.ObjectID]*model.Tweet{},
		comments: map[bson.ObjectID]*model.Comment{},
	}
}

func (f *feedStore) Insert(_ context.Context, t model.Tweet) (model.Tweet, error) {
	t.ID = bson.NewObjectID()
	f.tweets[t.ID] = &t
	return t, nil
}

func (f *feedStore) List(context.Context, int64) ([]model.Tweet, error) {
	out := []model.Tweet{}
	for _, t := range f.tweets {
		out = append(out, *t)
	}
	return out, nil
}

func (f *feedStore) Find(_ context.Context, id bson.ObjectID) (*model.Tweet, error) {
	t, ok := f.tweets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *feedStore) ToggleLike(_ context.Context, id bson.ObjectID, userID string) (*model.Tweet, error) {
	return f.toggle(id, userID, true)
}

func (f *feedStore) ToggleRepost(_ context.Context, id bson.ObjectID, userID string) (*model.Tweet, error) {
	return f.toggle(id, userID, false)
}

func (f *feedStore) toggle(id bson.ObjectID, userID string, likes bool) (*model.Tweet, error) {
	t, ok := f.tweets[id]
	if !ok {
		return nil, nil
	}
	set := &t.Likes
	if !likes {
		set = &t.Reposts
	}
	for i, u := range *set {
		if u == userID {
			*set = append((*set)[:i], (*set)[i+1:]...)
			cp := *t
			return &cp, nil
		}
	}
	*set = append(*set, userID)
	cp := *t
	return &cp, nil
}

func (f *feedStore) Delete(_ context.Context, id bson.ObjectID) error {
	delete(f.tweets, id)
	for cid, cm := range f.comments {
		if cm.TweetID == id {
			delete(f.comments, cid)
		}
	}
	return nil
}

// CommentStore side.

type fakeCommentStore struct{ feed *feedStore }

func (f *fakeCommentStore) Insert(_ context.Context, cm model.Comment) (model.Comment, error) {
	cm.ID = bson.NewObjectID()
	f.feed.comments[cm.ID] = &cm
	if t, ok := f.feed.tweets[cm.TweetID]; ok {
		t.CommentCount++
	}
	return cm, nil
}

func (f *fakeCommentStore) ListByTweet(_ context.Context, tweetID bson.ObjectID) ([]model.Comment, error) {
	out := []model.Comment{}
	for _, cm := range f.feed.comments {
		if cm.TweetID == tweetID {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Find(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
	cm, ok := f.feed.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *cm
	return &cp, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id, tweetID bson.ObjectID) error {
	if _, ok := f.feed.comments[id]; ok {
		delete(f.feed.comments, id)
		if t, ok := f.feed.tweets[tweetID]; ok {
			t.CommentCount--
		}
	}
	return nil
}

type fakeAnnouncementStore struct {
	items []model.Announcement
	err   error
}

func (f *fakeAnnouncementStore) Insert(_ context.Context, a model.Announcement) (model.Announcement, error) {
	if f.err != nil {
		return model.Announcement{}, f.err
	}
	a.ID = bson.NewObjectID()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeAnnouncementStore) List(context.Context) ([]model.Announcement, error) {
	return f.items, f.err
}

func (f *fakeAnnouncementStore) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	for i, a := range f.items {
		if a.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeRoles serves both MemberFetcher and middleware.RoleSource.
type fakeRoles struct {
	members map[string]*discordgo.Member
	roles   []*discordgo.Role
	err     error
}

func (f *fakeRoles) Member(_ context.Context, userID string) (*discordgo.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[userID]
	if !ok {
		return nil, errors.New("unknown member")
	}
	return m, nil
}

func (f *fakeRoles) GuildRoles(context.Context) ([]*discordgo.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles, nil
}

// recordingNotifier counts notifications instead of sending them.
type recordingNotifier struct {
	logins        int
	announcements int
	tweets        int
}

func (n *recordingNotifier) NotifyLogin(model.SessionUser)         { n.logins++ }
func (n *recordingNotifier) NotifyAnnouncement(model.Announcement) { n.announcements++ }
func (n *recordingNotifier) NotifyTweet(model.Tweet)               { n.tweets++ }
