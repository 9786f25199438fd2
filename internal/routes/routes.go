package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/internal/handlers"
	"github.com/Zor292/website2/internal/middleware"
)

type Deps struct {
	Auth          *handlers.AuthHandler
	Pages         *handlers.PageHandler
	Guild         *handlers.GuildHandler
	Ratings       *handlers.RatingHandler
	Announcements *handlers.AnnouncementHandler
	Tweets        *handlers.TweetHandler
	Comments      *handlers.CommentHandler
	Upload        *handlers.UploadHandler

	Sessions      middleware.SessionFinder
	Roles         middleware.RoleSource
	SessionSecret []byte
	AdminRoleID   string
}

func Register(app *fiber.App, d Deps) {
	app.Use(middleware.LoadSession(d.Sessions, d.SessionSecret))

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin(d.Roles, d.AdminRoleID)

	// Pages
	app.Get("/", d.Pages.Home)
	app.Get("/dashboard", middleware.RequirePage(), d.Pages.Dashboard)
	app.Get("/health", handlers.Health)

	// Auth flow
	authGroup := app.Group("/auth")
	authGroup.Get("/discord", d.Auth.LoginRedirect)
	authGroup.Get("/callback", d.Auth.Callback)
	authGroup.Get("/user", requireAuth, d.Auth.CurrentUser)
	authGroup.Get("/logout", d.Auth.Logout)

	api := app.Group("/api")

	// Guild / roster
	api.Get("/guild", d.Guild.Info)
	api.Get("/staff", d.Guild.Staff)
	api.Get("/rp-members", d.Guild.RPMembers)
	api.Post("/rp-sync", requireAuth, requireAdmin, d.Guild.RPSync)

	// Ratings
	api.Get("/ratings", d.Ratings.List)
	api.Post("/ratings", requireAuth, d.Ratings.Create)
	api.Delete("/ratings/:id", requireAuth, requireAdmin, d.Ratings.Delete)

	// Announcements
	api.Get("/announcements", d.Announcements.List)
	api.Post("/announcements", requireAuth, requireAdmin, d.Announcements.Create)
	api.Delete("/announcements/:id", requireAuth, requireAdmin, d.Announcements.Delete)
	app.Post("/bot/announcement", d.Announcements.BotCreate)

	// Tweets + comments
	api.Get("/tweets", d.Tweets.List)
	api.Post("/tweets", requireAuth, d.Tweets.Create)
	api.Delete("/tweets/:id", requireAuth, d.Tweets.Delete)
	api.Post("/tweets/:id/like", requireAuth, d.Tweets.Like)
	api.Post("/tweets/:id/repost", requireAuth, d.Tweets.Repost)
	api.Get("/tweets/:id/comments", d.Comments.List)
	api.Post("/tweets/:id/comments", requireAuth, d.Comments.Create)
	api.Delete("/tweets/:tweetId/comments/:commentId", requireAuth, d.Comments.Delete)

	// Upload
	api.Post("/upload", requireAuth, d.Upload.Upload)
}
