package auth

import "github.com/bwmarrin/discordgo"

// IsAdmin reports whether a member is a web admin: either they hold the
// configured admin role, or any of their roles carries the Discord
// administrator permission bit.
func IsAdmin(memberRoles []string, guildRoles []*discordgo.Role, adminRoleID string) bool {
	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}
	for _, id := range memberRoles {
		if adminRoleID != "" && id == adminRoleID {
			return true
		}
		if r, ok := byID[id]; ok && r.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}
	return false
}

// HasRole reports whether roleID appears in the member's role list.
func HasRole(memberRoles []string, roleID string) bool {
	if roleID == "" {
		return false
	}
	for _, id := range memberRoles {
		if id == roleID {
			return true
		}
	}
	return false
}
