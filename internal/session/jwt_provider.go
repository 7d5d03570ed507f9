package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider validates HS256 session tokens carried in a cookie or a
// bearer Authorization header.
type JWTProvider struct {
	secret     []byte
	issuer     string
	cookieName string
	revoker    Revoker
	now        func() time.Time
}

func NewJWTProvider(secret, issuer, cookieName string, revoker Revoker) (*JWTProvider, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret required")
	}
	return &JWTProvider{
		secret:     []byte(secret),
		issuer:     issuer,
		cookieName: cookieName,
		revoker:    revoker,
		now:        time.Now,
	}, nil
}

// Issue signs a token for id that expires after ttl.
func (p *JWTProvider) Issue(id Identity, ttl time.Duration) (string, error) {
	now := p.now()
	claims := Claims{
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.UserID.String(),
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *JWTProvider) tokenFromRequest(c *fiber.Ctx) string {
	if p.cookieName != "" {
		if v := strings.TrimSpace(c.Cookies(p.cookieName)); v != "" {
			return v
		}
	}
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (p *JWTProvider) parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (p *JWTProvider) CurrentUser(c *fiber.Ctx) (*Identity, error) {
	token := p.tokenFromRequest(c)
	if token == "" {
		return nil, ErrNoSession
	}
	claims, err := p.parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", ErrNoSession)
	}
	if p.revoker != nil && claims.ID != "" {
		revoked, err := p.revoker.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token revoked", ErrNoSession)
		}
	}
	return &Identity{UserID: userID, Email: claims.Email}, nil
}

// SignOut revokes the presented token and clears the session cookie. It is
// a no-op for requests without a valid token.
func (p *JWTProvider) SignOut(c *fiber.Ctx) error {
	if p.cookieName != "" {
		c.ClearCookie(p.cookieName)
	}
	token := p.tokenFromRequest(c)
	if token == "" {
		return nil
	}
	claims, err := p.parse(token)
	if err != nil {
		return nil
	}
	if p.revoker == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(p.now())
	if ttl <= 0 {
		return nil
	}
	return p.revoker.Revoke(c.UserContext(), claims.ID, ttl)
}
