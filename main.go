// @title Live Zone API
// @version 1.0
// @description Community website backend for the Live Zone Discord guild.
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/Zor292/website2/bootstrap"
	"github.com/Zor292/website2/config"
	"github.com/Zor292/website2/database"
	_ "github.com/Zor292/website2/docs"
	"github.com/Zor292/website2/internal/discord"
	"github.com/Zor292/website2/internal/handlers"
	"github.com/Zor292/website2/internal/repository"
	"github.com/Zor292/website2/internal/roster"
	"github.com/Zor292/website2/internal/routes"
	"github.com/Zor292/website2/internal/webhook"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := config.Load()

	// --- MongoDB ---
	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// --- Discord ---
	dc, err := discord.New(cfg)
	if err != nil {
		log.Fatalf("discord client: %v", err)
	}

	notifier := webhook.New(
		cfg.LoginWebhookURL,
		cfg.AnnounceWebhookURL,
		cfg.TweetWebhookURL,
		strings.TrimSuffix(cfg.RedirectURI, "/auth/callback"),
	)

	// --- Repositories ---
	sessions := repository.NewSessionRepository(db)
	ratings := repository.NewRatingRepository(db)
	announcements := repository.NewAnnouncementRepository(db)
	tweets := repository.NewTweetRepository(db)
	comments := repository.NewCommentRepository(db)
	rosterCache := repository.NewRosterRepository(db)

	// --- Roster resync (weekly + on demand) ---
	sync := &roster.Service{
		Members:      dc,
		Store:        rosterCache,
		FactionRoles: cfg.FactionRoleIDs,
		SetA:         cfg.FactionSetA,
		SetB:         cfg.FactionSetB,
	}
	syncCtx, stopSync := context.WithCancel(context.Background())
	defer stopSync()
	sync.StartWeekly(syncCtx)

	// --- Fiber ---
	app := fiber.New(fiber.Config{
		BodyLimit: 10 << 20, // headroom over the 8MB image cap
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-bot-secret",
		AllowCredentials: true,
	}))

	app.Get("/docs/*", swagger.HandlerDefault)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}
	app.Static("/uploads", cfg.UploadDir)

	secret := []byte(cfg.SessionSecret)
	admin := &handlers.AdminChecker{Roles: dc, AdminRoleID: cfg.AdminRoleID}

	routes.Register(app, routes.Deps{
		Auth:          &handlers.AuthHandler{Discord: dc, Sessions: sessions, Notify: notifier, Secret: secret, SecureCookie: cfg.CookieSecure},
		Pages:         &handlers.PageHandler{PublicDir: "./public"},
		Guild:         &handlers.GuildHandler{Discord: dc, Roster: rosterCache, Sync: sync, StaffRoleIDs: cfg.StaffRoleIDs},
		Ratings:       &handlers.RatingHandler{Store: ratings},
		Announcements: &handlers.AnnouncementHandler{Store: announcements, Notify: notifier, BotSecret: cfg.BotSecret},
		Tweets:        &handlers.TweetHandler{Store: tweets, Members: dc, Admin: admin, Notify: notifier, BannedRoleID: cfg.BannedRoleID},
		Comments:      &handlers.CommentHandler{Store: comments, Tweets: tweets, Admin: admin},
		Upload:        &handlers.UploadHandler{Dir: cfg.UploadDir},

		Sessions:      sessions,
		Roles:         dc,
		SessionSecret: secret,
		AdminRoleID:   cfg.AdminRoleID,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
