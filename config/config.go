package config

import (
	"log"
	"os"
	"strings"
)

// Config holds everything read from the environment. It is built once in main
// and passed down; nothing mutates it afterwards.
type Config struct {
	Port string

	// Discord OAuth2
	ClientID      string
	ClientSecret  string
	RedirectURI   string
	SessionSecret string

	// CookieSecure follows the redirect URI scheme: https deploys get Secure
	// cookies, local http does not.
	CookieSecure bool

	// Discord bot / guild
	BotToken     string
	BotSecret    string
	GuildID      string
	AdminRoleID  string
	StaffRoleIDs []string
	BannedRoleID string

	// Roleplay faction roster
	FactionRoleIDs []string
	FactionSetA    []string
	FactionSetB    []string

	// Mongo
	MongoURI string
	DBName   string

	// Outbound webhooks
	LoginWebhookURL    string
	AnnounceWebhookURL string
	TweetWebhookURL    string

	FrontendOrigins string
	UploadDir       string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads the environment into a Config. Required values are fatal when
// missing so a misconfigured deploy fails at startup, not on first request.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "3000"),
		ClientID:      os.Getenv("CLIENT_ID"),
		ClientSecret:  os.Getenv("CLIENT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		BotToken:      os.Getenv("BOT_TOKEN"),
		BotSecret:     os.Getenv("BOT_SECRET"),
		GuildID:       os.Getenv("GUILD_ID"),
		AdminRoleID:   os.Getenv("ADMIN_ROLE_ID"),
		StaffRoleIDs:  splitCSV(os.Getenv("STAFF_ROLE_IDS")),
		BannedRoleID:  os.Getenv("BANNED_ROLE_ID"),

		FactionRoleIDs: splitCSV(os.Getenv("RP_FACTION_ROLES")),
		FactionSetA:    splitCSV(os.Getenv("RP_FACTION_SET_A")),
		FactionSetB:    splitCSV(os.Getenv("RP_FACTION_SET_B")),

		MongoURI: os.Getenv("MONGO_URI"),
		DBName:   getEnv("DB_NAME", "livezone"),

		LoginWebhookURL:    os.Getenv("LOGIN_WEBHOOK_URL"),
		AnnounceWebhookURL: os.Getenv("ANNOUNCE_WEBHOOK_URL"),
		TweetWebhookURL:    os.Getenv("TWEET_WEBHOOK_URL"),

		FrontendOrigins: getEnv("FRONTEND_ORIGINS", "http://localhost:5173"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
	}
	cfg.RedirectURI = redirectURI(cfg.Port)
	cfg.CookieSecure = strings.HasPrefix(cfg.RedirectURI, "https://")

	for key, v := range map[string]string{
		"CLIENT_ID":      cfg.ClientID,
		"CLIENT_SECRET":  cfg.ClientSecret,
		"SESSION_SECRET": cfg.SessionSecret,
		"BOT_TOKEN":      cfg.BotToken,
		"MONGO_URI":      cfg.MongoURI,
		"GUILD_ID":       cfg.GuildID,
	} {
		if v == "" {
			log.Fatalf("%s is required", key)
		}
	}
	return cfg
}

// redirectURI resolves the OAuth callback URL: explicit override first, then
// the domain Railway injects, then localhost for dev.
func redirectURI(port string) string {
	if v := os.Getenv("REDIRECT_URI"); v != "" {
		return v
	}
	if domain := os.Getenv("RAILWAY_PUBLIC_DOMAIN"); domain != "" {
		return "https://" + domain + "/auth/callback"
	}
	return "http://localhost:" + port + "/auth/callback"
}
