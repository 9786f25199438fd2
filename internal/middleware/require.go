package middleware

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/authctx"
)

// RequireAuth guards JSON endpoints: no session means 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.From(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

// RequirePage guards HTML pages: no session means back to the landing page.
func RequirePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.From(c); !ok {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

type RoleSource interface {
	Member(ctx context.Context, userID string) (*discordgo.Member, error)
	GuildRoles(ctx context.Context) ([]*discordgo.Role, error)
}

// RequireAdmin re-checks the caller's roles against Discord on every request.
// Freshness over latency: there is no cache and no TTL.
func RequireAdmin(roles RoleSource, adminRoleID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := authctx.From(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		member, err := roles.Member(c.Context(), sess.User.ID)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		guildRoles, err := roles.GuildRoles(c.Context())
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		if !auth.IsAdmin(member.Roles, guildRoles, adminRoleID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
