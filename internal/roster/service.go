package roster

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Zor292/website2/model"
)

// resyncInterval is how often the roster cache is rebuilt. Staleness tolerance
// here is days, not seconds.
const resyncInterval = 7 * 24 * time.Hour

type MemberSource interface {
	GuildMembers(ctx context.Context) ([]*discordgo.Member, error)
}

type CacheStore interface {
	Replace(ctx context.Context, cache model.RosterCache) error
}

// Service rebuilds the role-bucket cache from the live guild roster.
type Service struct {
	Members      MemberSource
	Store        CacheStore
	FactionRoles []string
	SetA         []string
	SetB         []string
}

// Rebuild fetches the full member list and replaces the cache document.
func (s *Service) Rebuild(ctx context.Context) error {
	members, err := s.Members.GuildMembers(ctx)
	if err != nil {
		return err
	}
	cache := model.RosterCache{
		ID:        model.RosterCacheID,
		Buckets:   BuildBuckets(members, s.FactionRoles, s.SetA, s.SetB),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Store.Replace(ctx, cache); err != nil {
		return err
	}
	log.Printf("rp roster synced: %d members across %d buckets", len(members), len(cache.Buckets))
	return nil
}

// StartWeekly runs an immediate rebuild and then one per week until ctx is
// cancelled. Failures are logged and the timer keeps going.
func (s *Service) StartWeekly(ctx context.Context) {
	go func() {
		if err := s.Rebuild(ctx); err != nil {
			log.Println("rp roster sync failed:", err)
		}
		ticker := time.NewTicker(resyncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Rebuild(ctx); err != nil {
					log.Println("rp roster sync failed:", err)
				}
			}
		}
	}()
}
