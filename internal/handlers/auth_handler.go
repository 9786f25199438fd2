package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/internal/middleware"
	"github.com/Zor292/website2/model"
)

const stateCookie = "lz_state"

type OAuthClient interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	FetchSelf(ctx context.Context, accessToken string) (*discordgo.User, error)
}

type SessionStore interface {
	Create(ctx context.Context, sess model.Session) (string, error)
	Delete(ctx context.Context, sid string) error
}

type LoginNotifier interface {
	NotifyLogin(u model.SessionUser)
}

type AuthHandler struct {
	Discord      OAuthClient
	Sessions     SessionStore
	Notify       LoginNotifier
	Secret       []byte
	SecureCookie bool
}

// GET /auth/discord
func (h *AuthHandler) LoginRedirect(c *fiber.Ctx) error {
	state := nonce()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   h.SecureCookie,
		SameSite: "Lax",
	})
	return c.Redirect(h.Discord.AuthCodeURL(state), fiber.StatusFound)
}

// GET /auth/callback?code=...&state=...
// Any failure lands back on the home page with an error flag; no partial
// session is ever persisted.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if c.Query("error") != "" || code == "" {
		return c.Redirect("/?error=access_denied", fiber.StatusFound)
	}
	if state := c.Cookies(stateCookie); state == "" || state != c.Query("state") {
		return c.Redirect("/?error=access_denied", fiber.StatusFound)
	}
	h.clearCookie(c, stateCookie)

	tok, err := h.Discord.ExchangeCode(c.Context(), code)
	if err != nil {
		log.Println("oauth exchange failed:", err)
		return c.Redirect("/?error=auth_failed", fiber.StatusFound)
	}

	profile, err := h.Discord.FetchSelf(c.Context(), tok.AccessToken)
	if err != nil {
		log.Println("profile fetch failed:", err)
		return c.Redirect("/?error=auth_failed", fiber.StatusFound)
	}

	now := time.Now().UTC()
	user := model.SessionUser{
		ID:          profile.ID,
		Username:    profile.Username,
		GlobalName:  profile.GlobalName,
		Avatar:      profile.Avatar,
		Email:       profile.Email,
		Verified:    profile.Verified,
		PremiumType: int(profile.PremiumType),
	}
	sid, err := h.Sessions.Create(c.Context(), model.Session{
		User:         user,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(auth.SessionTTL),
	})
	if err != nil {
		log.Println("session create failed:", err)
		return c.Redirect("/?error=auth_failed", fiber.StatusFound)
	}

	signed, err := auth.SignSessionID(sid, h.Secret, now)
	if err != nil {
		return c.Redirect("/?error=auth_failed", fiber.StatusFound)
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    signed,
		Expires:  now.Add(auth.SessionTTL),
		HTTPOnly: true,
		Secure:   h.SecureCookie,
		SameSite: "Lax",
	})

	log.Printf("login: %s (%s)", user.Username, user.ID)
	h.Notify.NotifyLogin(user)
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// GET /auth/user
// @Summary      Current session profile
// @Tags         auth
// @Produce      json
// @Router       /auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	sess, ok := authctx.From(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.JSON(sess.User)
}

// GET /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, ok := authctx.From(c); ok {
		if err := h.Sessions.Delete(c.Context(), sess.ID.Hex()); err != nil {
			log.Println("session delete failed:", err)
		}
	}
	h.clearCookie(c, middleware.SessionCookie)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.SecureCookie,
		SameSite: "Lax",
	})
}

func nonce() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
