package handlers

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/dto"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

type CommentStore interface {
	Insert(ctx context.Context, cm model.Comment) (model.Comment, error)
	ListByTweet(ctx context.Context, tweetID bson.ObjectID) ([]model.Comment, error)
	Find(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	Delete(ctx context.Context, id, tweetID bson.ObjectID) error
}

type TweetFinder interface {
	Find(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
}

type CommentHandler struct {
	Store  CommentStore
	Tweets TweetFinder
	Admin  *AdminChecker
}

// GET /api/tweets/:id/comments
// @Summary      List comments on a tweet
// @Tags         comments
// @Produce      json
// @Param        id  path  string  true  "Tweet id"
// @Router       /api/tweets/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	tweetID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tweet id"})
	}
	comments, err := h.Store.ListByTweet(c.Context(), tweetID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(comments)
}

// POST /api/tweets/:id/comments
// Oversized content is rejected outright, same rule as tweets.
// @Summary      Comment on a tweet
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id       path  string                true  "Tweet id"
// @Param        comment  body  dto.CreateCommentReq  true  "Comment"
// @Router       /api/tweets/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	tweetID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tweet id"})
	}

	var body dto.CreateCommentReq
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

	t, err := h.Tweets.Find(c.Context(), tweetID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "tweet not found"})
	}

	cm, err := h.Store.Insert(c.Context(), model.Comment{
		TweetID:   tweetID,
		UserID:    sess.User.ID,
		Username:  displayName(sess.User),
		Handle:    "@" + sess.User.Username,
		Avatar:    sess.User.Avatar,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cm)
}

// DELETE /api/tweets/:tweetId/comments/:commentId — owner or admin.
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        tweetId    path  string  true  "Tweet id"
// @Param        commentId  path  string  true  "Comment id"
// @Router       /api/tweets/{tweetId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid comment id"})
	}

	cm, err := h.Store.Find(c.Context(), commentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if cm == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if cm.UserID != sess.User.ID && !h.Admin.IsAdmin(c.Context(), sess.User.ID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	if err := h.Store.Delete(c.Context(), cm.ID, cm.TweetID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
