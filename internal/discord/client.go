package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"

	"github.com/Zor292/website2/config"
)

const (
	authorizeURL = "https://discord.com/oauth2/authorize"
	tokenURL     = "https://discord.com/api/v10/oauth2/token"

	// Discord caps the members endpoint at 1000 entries per page.
	membersPageSize = 1000
)

// ErrNotFound is returned when Discord reports 404 for a looked-up resource.
var ErrNotFound = errors.New("discord: not found")

// Client wraps the two authorization forms this service uses: the bot token
// for guild-wide queries and per-user bearer tokens for self lookups. Calls
// are attempted once; callers decide how to degrade.
type Client struct {
	bot     *discordgo.Session
	oauth   *oauth2.Config
	guildID string
}

func New(cfg config.Config) (*Client, error) {
	bot, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot session: %w", err)
	}
	return &Client{
		bot: bot,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"identify", "email", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authorizeURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		guildID: cfg.GuildID,
	}, nil
}

// AuthCodeURL builds the consent URL the login route redirects to.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	return tok, nil
}

// FetchSelf looks up the profile of the user the access token belongs to.
func (c *Client) FetchSelf(ctx context.Context, accessToken string) (*discordgo.User, error) {
	s, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, err
	}
	return s.User("@me", discordgo.WithContext(ctx))
}

// GuildMembers pages through the full member list.
func (c *Client) GuildMembers(ctx context.Context) ([]*discordgo.Member, error) {
	return collectMembers(func(after string) ([]*discordgo.Member, error) {
		return c.bot.GuildMembers(c.guildID, after, membersPageSize, discordgo.WithContext(ctx))
	}, membersPageSize)
}

// collectMembers drains a paginated member listing. The cursor is the last
// member id of the previous page; a page shorter than pageSize ends the loop,
// so an exact-multiple roster terminates on the trailing empty page.
func collectMembers(fetch func(after string) ([]*discordgo.Member, error), pageSize int) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	var after string
	for {
		page, err := fetch(after)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func (c *Client) GuildRoles(ctx context.Context) ([]*discordgo.Role, error) {
	return c.bot.GuildRoles(c.guildID, discordgo.WithContext(ctx))
}

// Member fetches a single guild member, mapping Discord's 404 to ErrNotFound.
func (c *Client) Member(ctx context.Context, userID string) (*discordgo.Member, error) {
	m, err := c.bot.GuildMember(c.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// Guild fetches guild metadata with approximate member/presence counts.
func (c *Client) Guild(ctx context.Context) (*discordgo.Guild, error) {
	return c.bot.GuildWithCounts(c.guildID, discordgo.WithContext(ctx))
}
