package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

// SessionCookie is the cookie carrying the signed session id.
const SessionCookie = "lz_session"

type SessionFinder interface {
	Find(ctx context.Context, sid string) (*model.Session, error)
}

// LoadSession resolves the session cookie into a session document. Anonymous
// or stale-cookie requests pass through without a session; the Require*
// middleware below decides what that means per route.
func LoadSession(store SessionFinder, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}
		sid, err := auth.ParseSessionID(token, secret)
		if err != nil {
			return c.Next()
		}
		sess, err := store.Find(c.Context(), sid)
		if err != nil || sess == nil {
			return c.Next()
		}
		authctx.Set(c, sess)
		return c.Next()
	}
}
