package handlers

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/dto"
	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

type TweetStore interface {
	Insert(ctx context.Context, t model.Tweet) (model.Tweet, error)
	List(ctx context.Context, limit int64) ([]model.Tweet, error)
	Find(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
	ToggleLike(ctx context.Context, id bson.ObjectID, userID string) (*model.Tweet, error)
	ToggleRepost(ctx context.Context, id bson.ObjectID, userID string) (*model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MemberFetcher interface {
	Member(ctx context.Context, userID string) (*discordgo.Member, error)
}

type TweetNotifier interface {
	NotifyTweet(t model.Tweet)
}

type TweetHandler struct {
	Store        TweetStore
	Members      MemberFetcher
	Admin        *AdminChecker
	Notify       TweetNotifier
	BannedRoleID string
}

// GET /api/tweets?limit=50
// @Summary      List tweets, newest first
// @Tags         tweets
// @Produce      json
// @Param        limit  query  int  false  "Page size, max 100"
// @Router       /api/tweets [get]
func (h *TweetHandler) List(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 50))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	tweets, err := h.Store.List(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tweets)
}

// POST /api/tweets
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Param        tweet  body  dto.CreateTweetReq  true  "Tweet"
// @Router       /api/tweets [post]
func (h *TweetHandler) Create(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if h.isBanned(c.Context(), sess.User.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "posting is disabled for your account"})
	}

	var body dto.CreateTweetReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	content := strings.TrimSpace(body.Content)
	if content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content required"})
	}
	if utf8.RuneCountInString(content) > model.MaxContentLen {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content too long"})
	}

	t, err := h.Store.Insert(c.Context(), model.Tweet{
		UserID:    sess.User.ID,
		Username:  displayName(sess.User),
		Handle:    "@" + sess.User.Username,
		Avatar:    sess.User.Avatar,
		Content:   content,
		Image:     body.Image,
		Likes:     []string{},
		Reposts:   []string{},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.Notify.NotifyTweet(t)
	return c.Status(fiber.StatusCreated).JSON(t)
}

// POST /api/tweets/:id/like — idempotent toggle keyed by the caller's id.
// @Summary      Toggle a like
// @Tags         tweets
// @Produce      json
// @Param        id  path  string  true  "Tweet id"
// @Router       /api/tweets/{id}/like [post]
func (h *TweetHandler) Like(c *fiber.Ctx) error {
	return h.toggle(c, h.Store.ToggleLike)
}

// POST /api/tweets/:id/repost
// @Summary      Toggle a repost
// @Tags         tweets
// @Produce      json
// @Param        id  path  string  true  "Tweet id"
// @Router       /api/tweets/{id}/repost [post]
func (h *TweetHandler) Repost(c *fiber.Ctx) error {
	return h.toggle(c, h.Store.ToggleRepost)
}

func (h *TweetHandler) toggle(c *fiber.Ctx, fn func(context.Context, bson.ObjectID, string) (*model.Tweet, error)) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	t, err := fn(c.Context(), id, sess.User.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(t)
}

// DELETE /api/tweets/:id — owner or admin; comments go with the tweet.
// @Summary      Delete a tweet and its comments
// @Tags         tweets
// @Produce      json
// @Param        id  path  string  true  "Tweet id"
// @Router       /api/tweets/{id} [delete]
func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	t, err := h.Store.Find(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if t.UserID != sess.User.ID && !h.Admin.IsAdmin(c.Context(), sess.User.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	if err := h.Store.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// isBanned checks the configured posting-ban role. Discord being unreachable
// degrades to "not banned" like every other read against it.
func (h *TweetHandler) isBanned(ctx context.Context, userID string) bool {
	if h.BannedRoleID == "" {
		return false
	}
	member, err := h.Members.Member(ctx, userID)
	if err != nil {
		log.Println("ban check failed:", err)
		return false
	}
	return auth.HasRole(member.Roles, h.BannedRoleID)
}

func displayName(u model.SessionUser) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
