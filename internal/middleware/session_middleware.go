package middleware

import (
	"errors"

	"github.com/fadilmartias/careerlens/internal/session"
	"github.com/fadilmartias/careerlens/internal/util"
	"github.com/gofiber/fiber/v2"
)

const CtxIdentityKey = "identity"

// RequireSession stops the request with 401 unless provider resolves an
// identity, which is then available through CurrentUser. A provider failure
// other than ErrNoSession, such as an unreachable revocation store, is a 500.
func RequireSession(provider session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := provider.CurrentUser(c)
		if err != nil && !errors.Is(err, session.ErrNoSession) {
			return util.ErrorResponse(c, fiber.StatusInternalServerError, "Internal Server Error", err)
		}
		if err != nil || identity == nil {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
		}
		c.Locals(CtxIdentityKey, identity)
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) (*session.Identity, bool) {
	identity, ok := c.Locals(CtxIdentityKey).(*session.Identity)
	return identity, ok && identity != nil
}
