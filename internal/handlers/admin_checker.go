package handlers

import (
	"context"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/middleware"
)

// AdminChecker answers "is this member an admin right now" by asking Discord.
// Used where ownership OR admin grants access, so the route-level admin gate
// does not apply. An upstream failure counts as not-admin.
type AdminChecker struct {
	Roles       middleware.RoleSource
	AdminRoleID string
}

func (a *AdminChecker) IsAdmin(ctx context.Context, userID string) bool {
	member, err := a.Roles.Member(ctx, userID)
	if err != nil {
		return false
	}
	guildRoles, err := a.Roles.GuildRoles(ctx)
	if err != nil {
		return false
	}
	return auth.IsAdmin(member.Roles, guildRoles, a.AdminRoleID)
}
