package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zor292/website2/internal/auth"
	"github.com/Zor292/website2/internal/authctx"
	"github.com/Zor292/website2/model"
)

var secret = []byte("test-secret")

type fakeSessions struct {
	byID map[string]*model.Session
}

func (f *fakeSessions) Find(_ context.Context, sid string) (*model.Session, error) {
	return f.byID[sid], nil
}

func sessionFixture() (*fakeSessions, string) {
	oid := bson.NewObjectID()
	sess := &model.Session{
		ID:   oid,
		User: model.SessionUser{ID: "100", Username: "alice"},
	}
	return &fakeSessions{byID: map[string]*model.Session{oid.Hex(): sess}}, oid.Hex()
}

func whoami(c *fiber.Ctx) error {
	if sess, ok := authctx.From(c); ok {
		return c.JSON(fiber.Map{"id": sess.User.ID})
	}
	return c.JSON(fiber.Map{})
}

func TestLoadSessionValidCookie(t *testing.T) {
	store, sid := sessionFixture()
	app := fiber.New()
	app.Use(LoadSession(store, secret))
	app.Get("/whoami", RequireAuth(), whoami)

	tok, err := auth.SignSessionID(sid, secret, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuthWithoutSession(t *testing.T) {
	store, _ := sessionFixture()
	app := fiber.New()
	app.Use(LoadSession(store, secret))
	app.Get("/whoami", RequireAuth(), whoami)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoadSessionTamperedCookie(t *testing.T) {
	store, sid := sessionFixture()
	app := fiber.New()
	app.Use(LoadSession(store, secret))
	app.Get("/whoami", RequireAuth(), whoami)

	tok, err := auth.SignSessionID(sid, []byte("other-secret"), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePageRedirects(t *testing.T) {
	store, _ := sessionFixture()
	app := fiber.New()
	app.Use(LoadSession(store, secret))
	app.Get("/dashboard", RequirePage(), func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

type fakeRoleSource struct {
	member *discordgo.Member
	roles  []*discordgo.Role
	err    error
}

func (f *fakeRoleSource) Member(context.Context, string) (*discordgo.Member, error) {
	return f.member, f.err
}

func (f *fakeRoleSource) GuildRoles(context.Context) ([]*discordgo.Role, error) {
	return f.roles, f.err
}

func adminApp(rs RoleSource) (*fiber.App, string) {
	store, sid := sessionFixture()
	app := fiber.New()
	app.Use(LoadSession(store, secret))
	app.Post("/admin", RequireAdmin(rs, "webadmin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app, sid
}

func adminReq(t *testing.T, sid string) *http.Request {
	t.Helper()
	tok, err := auth.SignSessionID(sid, secret, time.Now())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	return req
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	app, sid := adminApp(&fakeRoleSource{
		member: &discordgo.Member{Roles: []string{"webadmin"}},
	})
	resp, err := app.Test(adminReq(t, sid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsPlainMember(t *testing.T) {
	app, sid := adminApp(&fakeRoleSource{
		member: &discordgo.Member{Roles: []string{"member"}},
		roles:  []*discordgo.Role{{ID: "member", Permissions: 0}},
	})
	resp, err := app.Test(adminReq(t, sid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminDeniesOnUpstreamError(t *testing.T) {
	app, sid := adminApp(&fakeRoleSource{err: errors.New("discord down")})
	resp, err := app.Test(adminReq(t, sid))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
