package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedGuild serves members in pageSize chunks keyed by the after cursor and
// records every cursor it was asked for.
type pagedGuild struct {
	members  []*discordgo.Member
	pageSize int
	cursors  []string
}

func (g *pagedGuild) fetch(after string) ([]*discordgo.Member, error) {
	g.cursors = append(g.cursors, after)
	start := 0
	if after != "" {
		for i, m := range g.members {
			if m.User.ID == after {
				start = i + 1
				break
			}
		}
	}
	end := start + g.pageSize
	if end > len(g.members) {
		end = len(g.members)
	}
	return g.members[start:end], nil
}

func guildOf(n int) []*discordgo.Member {
	members := make([]*discordgo.Member, n)
	for i := range members {
		members[i] = &discordgo.Member{User: &discordgo.User{ID: fmt.Sprintf("%d", i+1)}}
	}
	return members
}

func TestCollectMembersAdvancesCursor(t *testing.T) {
	guild := &pagedGuild{members: guildOf(7), pageSize: 3}

	all, err := collectMembers(guild.fetch, 3)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "1", all[0].User.ID)
	assert.Equal(t, "7", all[6].User.ID)

	// Each cursor is the last member id of the previous page.
	assert.Equal(t, []string{"", "3", "6"}, guild.cursors)
}

func TestCollectMembersSinglePage(t *testing.T) {
	guild := &pagedGuild{members: guildOf(2), pageSize: 3}

	all, err := collectMembers(guild.fetch, 3)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, []string{""}, guild.cursors, "a short first page ends the loop")
}

func TestCollectMembersExactMultipleOfPageSize(t *testing.T) {
	guild := &pagedGuild{members: guildOf(6), pageSize: 3}

	all, err := collectMembers(guild.fetch, 3)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	// Two full pages force one extra fetch that comes back empty.
	assert.Equal(t, []string{"", "3", "6"}, guild.cursors)
}

func TestCollectMembersEmptyGuild(t *testing.T) {
	guild := &pagedGuild{pageSize: 3}

	all, err := collectMembers(guild.fetch, 3)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollectMembersPropagatesFetchError(t *testing.T) {
	calls := 0
	fetch := func(after string) ([]*discordgo.Member, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("rate limited")
		}
		return guildOf(3), nil
	}

	_, err := collectMembers(fetch, 3)
	require.Error(t, err)
	assert.Equal(t, 2, calls, "no retry inside the loop")
}
