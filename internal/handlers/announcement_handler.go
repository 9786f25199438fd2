package handlers

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/dto"
	"github.com/Zor292/website2/model"
)

type AnnouncementStore interface {
	Insert(ctx context.Context, a model.Announcement) (model.Announcement, error)
	List(ctx context.Context) ([]model.Announcement, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

type AnnouncementNotifier interface {
	NotifyAnnouncement(a model.Announcement)
}

// AnnouncementHandler has two trust paths into the same write: an admin
// session, or the community bot presenting the shared secret.
type AnnouncementHandler struct {
	Store     AnnouncementStore
	Notify    AnnouncementNotifier
	BotSecret string
}

// GET /api/announcements
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.Store.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(announcements)
}

// POST /api/announcements — admin only (enforced in the route table).
// @Summary      Publish an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        announcement  body  dto.CreateAnnouncementReq  true  "Announcement"
// @Router       /api/announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	return h.create(c)
}

// POST /bot/announcement — shared-secret header instead of a session. The
// secret is checked before anything touches the store.
// @Summary      Publish an announcement as the community bot
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        x-bot-secret  header  string                     true  "Shared bot secret"
// @Param        announcement  body    dto.CreateAnnouncementReq  true  "Announcement"
// @Router       /bot/announcement [post]
func (h *AnnouncementHandler) BotCreate(c *fiber.Ctx) error {
	secret := c.Get("x-bot-secret")
	if h.BotSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.BotSecret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return h.create(c)
}

func (h *AnnouncementHandler) create(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if body.Title == "" || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and content required"})
	}

	a, err := h.Store.Insert(c.Context(), model.Announcement{
		Title:     body.Title,
		Content:   body.Content,
		Icon:      body.Icon,
		Image:     body.Image,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.Notify.NotifyAnnouncement(a)
	return c.Status(fiber.StatusCreated).JSON(a)
}

// DELETE /api/announcements/:id — admin only.
// @Summary      Delete an announcement
// @Tags         announcements
// @Produce      json
// @Param        id  path  string  true  "Announcement id"
// @Router       /api/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
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
