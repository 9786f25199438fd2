package authctx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/model"
)

const localsKey = "session"

func Set(c *fiber.Ctx, s *model.Session) {
	c.Locals(localsKey, s)
}

// From returns the session resolved by the middleware, if any.
func From(c *fiber.Ctx) (*model.Session, bool) {
	if v := c.Locals(localsKey); v != nil {
		if s, ok := v.(*model.Session); ok {
			return s, true
		}
	}
	return nil, false
}
