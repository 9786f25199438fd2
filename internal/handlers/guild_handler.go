package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/model"
)

type GuildAPI interface {
	Guild(ctx context.Context) (*discordgo.Guild, error)
	GuildMembers(ctx context.Context) ([]*discordgo.Member, error)
}

type RosterReader interface {
	Get(ctx context.Context) (*model.RosterCache, error)
}

type RosterRebuilder interface {
	Rebuild(ctx context.Context) error
}

// GuildHandler serves the Discord-derived read endpoints. Discord is treated
// as an unreliable dependency: failures degrade to empty payloads, never 5xx.
type GuildHandler struct {
	Discord      GuildAPI
	Roster       RosterReader
	Sync         RosterRebuilder
	StaffRoleIDs []string
}

type staffMember struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	GlobalName string   `json:"global_name"`
	Avatar     string   `json:"avatar"`
	Roles      []string `json:"roles"`
}

// GET /api/guild
// @Summary      Guild name, icon and counts
// @Tags         guild
// @Produce      json
// @Router       /api/guild [get]
func (h *GuildHandler) Info(c *fiber.Ctx) error {
	g, err := h.Discord.Guild(c.Context())
	if err != nil {
		log.Println("guild fetch failed:", err)
		return c.JSON(fiber.Map{})
	}
	return c.JSON(fiber.Map{
		"id":             g.ID,
		"name":           g.Name,
		"icon":           g.IconURL("256"),
		"member_count":   g.ApproximateMemberCount,
		"presence_count": g.ApproximatePresenceCount,
	})
}

// GET /api/staff
// @Summary      Members holding a staff role
// @Tags         guild
// @Produce      json
// @Router       /api/staff [get]
func (h *GuildHandler) Staff(c *fiber.Ctx) error {
	members, err := h.Discord.GuildMembers(c.Context())
	if err != nil {
		log.Println("staff fetch failed:", err)
		return c.JSON([]staffMember{})
	}

	staff := []staffMember{}
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		for _, roleID := range h.StaffRoleIDs {
			if auth.HasRole(m.Roles, roleID) {
				staff = append(staff, staffMember{
					ID:         m.User.ID,
					Username:   m.User.Username,
					GlobalName: m.User.GlobalName,
					Avatar:     m.User.AvatarURL("128"),
					Roles:      m.Roles,
				})
				break
			}
		}
	}
	return c.JSON(staff)
}

// GET /api/rp-members
// @Summary      Cached roleplay faction roster
// @Tags         guild
// @Produce      json
// @Router       /api/rp-members [get]
func (h *GuildHandler) RPMembers(c *fiber.Ctx) error {
	cache, err := h.Roster.Get(c.Context())
	if err != nil {
		log.Println("roster read failed:", err)
		cache = nil
	}
	if cache == nil {
		return c.JSON(fiber.Map{"buckets": fiber.Map{}})
	}
	return c.JSON(cache)
}

// POST /api/rp-sync — admin only; unlike the weekly timer this one is awaited
// so the caller learns whether the rebuild went through.
// @Summary      Rebuild the faction roster now
// @Tags         guild
// @Produce      json
// @Router       /api/rp-sync [post]
func (h *GuildHandler) RPSync(c *fiber.Ctx) error {
	if err := h.Sync.Rebuild(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sync failed"})
	}
	return c.JSON(fiber.Map{"ok": true})
}
