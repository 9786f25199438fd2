package webhook

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Zor292/website2/model"
)

const (
	colorLogin        = 0x5865F2
	colorAnnouncement = 0xFAA61A
	colorTweet        = 0x57F287
)

var errBadWebhookURL = errors.New("webhook: malformed url")

// Notifier posts rich notifications to the configured webhooks. Everything is
// best-effort: sends run in their own goroutine with a short timeout and
// failures are only logged.
type Notifier struct {
	session *discordgo.Session

	loginURL    string
	announceURL string
	tweetURL    string
	siteURL     string
}

func New(loginURL, announceURL, tweetURL, siteURL string) *Notifier {
	// Token-less session: webhook execution authenticates through the URL.
	s, _ := discordgo.New("")
	s.Client = &http.Client{Timeout: 5 * time.Second}
	return &Notifier{
		session:     s,
		loginURL:    loginURL,
		announceURL: announceURL,
		tweetURL:    tweetURL,
		siteURL:     siteURL,
	}
}

func (n *Notifier) NotifyLogin(u model.SessionUser) {
	n.dispatch(n.loginURL, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{LoginEmbed(u)},
	})
}

func (n *Notifier) NotifyAnnouncement(a model.Announcement) {
	n.dispatch(n.announceURL, &discordgo.WebhookParams{
		Content: "@everyone",
		Embeds:  []*discordgo.MessageEmbed{AnnouncementEmbed(a)},
	})
}

func (n *Notifier) NotifyTweet(t model.Tweet) {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{TweetEmbed(t)},
	}
	if n.siteURL != "" {
		params.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label: "Open Live Zone",
						Style: discordgo.LinkButton,
						URL:   n.siteURL + "/dashboard",
					},
				},
			},
		}
	}
	n.dispatch(n.tweetURL, params)
}

func LoginEmbed(u model.SessionUser) *discordgo.MessageEmbed {
	name := u.GlobalName
	if name == "" {
		name = u.Username
	}
	return &discordgo.MessageEmbed{
		Title:       "Member logged in",
		Description: name + " (`" + u.ID + "`) signed in to the website.",
		Color:       colorLogin,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
}

func AnnouncementEmbed(a model.Announcement) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       a.Title,
		Description: a.Content,
		Color:       colorAnnouncement,
		Timestamp:   a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.Icon != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: a.Icon}
	}
	if a.Image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: a.Image}
	}
	return e
}

func TweetEmbed(t model.Tweet) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    t.Username + " (" + t.Handle + ")",
			IconURL: t.Avatar,
		},
		Description: t.Content,
		Color:       colorTweet,
		Timestamp:   t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.Image != "" {
		e.Image = &discordgo.MessageEmbedImage{URL: t.Image}
	}
	return e
}

func (n *Notifier) dispatch(url string, params *discordgo.WebhookParams) {
	if url == "" {
		return
	}
	go func() {
		if err := n.execute(url, params); err != nil {
			log.Println("webhook send failed:", err)
		}
	}()
}

func (n *Notifier) execute(url string, params *discordgo.WebhookParams) error {
	id, token, err := ParseURL(url)
	if err != nil {
		return err
	}
	_, err = n.session.WebhookExecute(id, token, false, params)
	return err
}

// ParseURL splits a Discord webhook URL of the form
// .../api/webhooks/{id}/{token} into its id and token.
func ParseURL(url string) (id, token string, err error) {
	const marker = "/webhooks/"
	i := strings.Index(url, marker)
	if i < 0 {
		return "", "", errBadWebhookURL
	}
	rest := strings.Trim(url[i+len(marker):], "/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errBadWebhookURL
	}
	return parts[0], parts[1], nil
}
