package roster

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Zor292/website2/model"
)

// BuildBuckets groups non-bot members under every faction role they hold.
// Holding any role from setA removes a member from all setB buckets: the two
// factions are mutually exclusive and setA wins.
func BuildBuckets(members []*discordgo.Member, factionRoles, setA, setB []string) map[string][]model.MemberRef {
	factions := toSet(factionRoles)
	a := toSet(setA)
	b := toSet(setB)

	buckets := make(map[string][]model.MemberRef, len(factionRoles))
	for _, id := range factionRoles {
		buckets[id] = []model.MemberRef{}
	}

	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		inA := false
		for _, r := range m.Roles {
			if a[r] {
				inA = true
				break
			}
		}
		ref := memberRef(m)
		for _, r := range m.Roles {
			if !factions[r] {
				continue
			}
			if inA && b[r] {
				continue
			}
			buckets[r] = append(buckets[r], ref)
		}
	}
	return buckets
}

func memberRef(m *discordgo.Member) model.MemberRef {
	name := m.Nick
	if name == "" {
		name = m.User.GlobalName
	}
	if name == "" {
		name = m.User.Username
	}
	return model.MemberRef{
		ID:     m.User.ID,
		Name:   name,
		Avatar: m.User.AvatarURL("128"),
	}
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
