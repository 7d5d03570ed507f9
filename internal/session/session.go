package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrNoSession is returned when a request carries no valid identity.
var ErrNoSession = errors.New("no session")

type Identity struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email,omitempty"`
}

// Provider resolves the caller of a request and ends sessions.
type Provider interface {
	CurrentUser(c *fiber.Ctx) (*Identity, error)
	SignOut(c *fiber.Ctx) error
}

// Revoker remembers signed-out token ids until they would have expired.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
