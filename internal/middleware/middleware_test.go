package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorStatus(c *fiber.Ctx, err error) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return c.Status(ce.Code).SendString(ce.Type)
	}
	return fiber.DefaultErrorHandler(c, err)
}

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errorStatus})
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	cases := map[string]int{"": 200, "1": 200, "v1.0": 200, "1.2.0": 200, "2.0.0": 400}
	for header, want := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("X-Api-Version", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, header)
		if want == 200 && (header == "" || header == "1" || header == "v1.0") {
			assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"), header)
		}
	}
}

type validator struct {
	inits int
}

func (v *validator) Init(_, _ string) error {
	v.inits++
	return nil
}

func (v *validator) ValidateSession(cookie string) (services.Session, error) {
	if cookie == "editor" {
		return services.Session{UserID: "e-1", Roles: []string{services.RoleEditor}}, nil
	}
	return services.Session{}, errors.New("bad cookie")
}

func TestCapabilities(t *testing.T) {
	v := &validator{}
	app := fiber.New(fiber.Config{ErrorHandler: errorStatus})
	app.Use(middleware.Capabilities(v))
	app.Get("/caps", func(c *fiber.Ctx) error {
		session, _ := middleware.SessionFrom(c)
		return c.JSON(fiber.Map{"caps": middleware.CapabilitiesFrom(c), "user": session.UserID})
	})
	app.Post("/props", middleware.CanManageProperties(), func(c *fiber.Ctx) error { return c.SendStatus(204) })
	app.Post("/views", middleware.CanManageViews(), func(c *fiber.Ctx) error { return c.SendStatus(204) })

	send := func(method, path, cookie string) *http.Response {
		req := httptest.NewRequest(method, path, nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "cookie_session", Value: cookie})
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, 403, send("GET", "/caps", "").StatusCode)
	assert.Equal(t, 403, send("GET", "/caps", "forged").StatusCode)
	assert.Equal(t, 200, send("GET", "/caps", "editor").StatusCode)
	assert.Equal(t, 204, send("POST", "/views", "editor").StatusCode)
	assert.Equal(t, 403, send("POST", "/props", "editor").StatusCode)
	assert.Equal(t, 5, v.inits)
}

func TestCapabilitiesWithoutValidator(t *testing.T) {
	var got schema.DocumentViewConfig
	app := fiber.New()
	app.Use(middleware.Capabilities(nil))
	app.Get("/", func(c *fiber.Ctx) error {
		got = middleware.CapabilitiesFrom(c)
		_, ok := middleware.SessionFrom(c)
		assert.False(t, ok)
		return c.SendStatus(204)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, schema.FullAccess(), got)
}
