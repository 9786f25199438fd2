package auth

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	guildRoles := []*discordgo.Role{
		{ID: "mod", Permissions: discordgo.PermissionManageMessages},
		{ID: "owner", Permissions: discordgo.PermissionAdministrator},
		{ID: "everyone", Permissions: 0},
	}

	tests := []struct {
		name        string
		memberRoles []string
		want        bool
	}{
		{"configured web admin role", []string{"webadmin"}, true},
		{"administrator permission bit", []string{"owner"}, true},
		{"plain member", []string{"everyone"}, false},
		{"moderator without admin bit", []string{"mod"}, false},
		{"no roles", nil, false},
		{"unknown role id", []string{"deleted-role"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdmin(tt.memberRoles, guildRoles, "webadmin"))
		})
	}
}

func TestIsAdminNoConfiguredRole(t *testing.T) {
	roles := []*discordgo.Role{{ID: "owner", Permissions: discordgo.PermissionAdministrator}}
	assert.True(t, IsAdmin([]string{"owner"}, roles, ""))
	assert.False(t, IsAdmin([]string{"other"}, roles, ""))
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole([]string{"a", "b"}, "b"))
	assert.False(t, HasRole([]string{"a", "b"}, "c"))
	assert.False(t, HasRole([]string{"a"}, ""))
}
