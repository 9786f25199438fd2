package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/dto"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

type RatingStore interface {
	Upsert(ctx context.Context, rating model.Rating) (bool, error)
	List(ctx context.Context) ([]model.Rating, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

type RatingHandler struct {
	Store RatingStore
}

// GET /api/ratings
// @Summary      List ratings
// @Tags         ratings
// @Produce      json
// @Router       /api/ratings [get]
func (h *RatingHandler) List(c *fiber.Ctx) error {
	ratings, err := h.Store.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(ratings)
}

// POST /api/ratings — one rating per member; resubmitting replaces the old one.
// @Summary      Submit a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        rating  body  dto.CreateRatingReq  true  "Rating"
// @Router       /api/ratings [post]
func (h *RatingHandler) Create(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var body dto.CreateRatingReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if body.Stars < 1 || body.Stars > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid stars"})
	}

	updated, err := h.Store.Upsert(c.Context(), model.Rating{
		UserID:   sess.User.ID,
		Username: sess.User.Username,
		Avatar:   sess.User.Avatar,
		Stars:    body.Stars,
		Text:     body.Text,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true, "updated": updated})
}

// DELETE /api/ratings/:id — admin only (enforced in the route table).
// @Summary      Delete a rating
// @Tags         ratings
// @Produce      json
// @Param        id  path  string  true  "Rating id"
// @Router       /api/ratings/{id} [delete]
func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	deleted, err := h.Store.Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
