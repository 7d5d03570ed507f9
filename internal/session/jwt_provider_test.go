package session

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestProvider(t *testing.T) (*JWTProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	revoker := NewRedisRevokerWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = revoker.Close() })

	p, err := NewJWTProvider(testSecret, "careerlens-auth", "careerlens_session", revoker)
	require.NoError(t, err)
	return p, mr
}

func newTestApp(p Provider) *fiber.App {
	app := fiber.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := p.CurrentUser(c)
		if err != nil {
			if errors.Is(err, ErrNoSession) {
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(id.UserID.String())
	})
	app.Post("/sign-out", func(c *fiber.Ctx) error {
		if err := p.SignOut(c); err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, bearer, cookie string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if cookie != "" {
		req.Header.Set("Cookie", "careerlens_session="+cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestNewJWTProviderRequiresSecret(t *testing.T) {
	_, err := NewJWTProvider(" ", "iss", "cookie", nil)
	assert.Error(t, err)
}

func TestCurrentUserFromBearerAndCookie(t *testing.T) {
	p, _ := newTestProvider(t)
	app := newTestApp(p)
	userID := uuid.New()

	token, err := p.Issue(Identity{UserID: userID, Email: "jane@example.com"}, time.Hour)
	require.NoError(t, err)

	status, body := doRequest(t, app, "GET", "/me", token, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, userID.String(), body)

	status, body = doRequest(t, app, "GET", "/me", "", token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, userID.String(), body)
}

func TestCurrentUserRejects(t *testing.T) {
	p, _ := newTestProvider(t)
	app := newTestApp(p)

	other, err := NewJWTProvider("another-secret", "careerlens-auth", "careerlens_session", nil)
	require.NoError(t, err)
	forged, err := other.Issue(Identity{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := NewJWTProvider(testSecret, "someone-else", "careerlens_session", nil)
	require.NoError(t, err)
	foreign, err := wrongIssuer.Issue(Identity{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	past, err := NewJWTProvider(testSecret, "careerlens-auth", "careerlens_session", nil)
	require.NoError(t, err)
	past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := past.Issue(Identity{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	tests := map[string]string{
		"no token":     "",
		"garbage":      "not-a-jwt",
		"wrong secret": forged,
		"wrong issuer": foreign,
		"expired":      expired,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			status, _ := doRequest(t, app, "GET", "/me", token, "")
			assert.Equal(t, fiber.StatusUnauthorized, status)
		})
	}
}

func TestSignOutRevokesToken(t *testing.T) {
	p, mr := newTestProvider(t)
	app := newTestApp(p)

	token, err := p.Issue(Identity{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "GET", "/me", token, "")
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "POST", "/sign-out", token, "")
	require.Equal(t, fiber.StatusOK, status)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], revokedKeyPrefix)
	assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))

	status, _ = doRequest(t, app, "GET", "/me", token, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSignOutWithoutTokenIsNoop(t *testing.T) {
	p, mr := newTestProvider(t)
	app := newTestApp(p)

	status, _ := doRequest(t, app, "POST", "/sign-out", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = doRequest(t, app, "POST", "/sign-out", "garbage", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, mr.Keys())
}

func TestCurrentUserRevokerUnavailable(t *testing.T) {
	p, mr := newTestProvider(t)
	app := newTestApp(p)

	token, err := p.Issue(Identity{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)
	mr.Close()

	status, _ := doRequest(t, app, "GET", "/me", token, "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
