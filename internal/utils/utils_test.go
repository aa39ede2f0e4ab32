package utils

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceAddress(t *testing.T) {
	cases := map[string]string{
		"http://authz.local":       "authz.local:80",
		"https://authz.local":      "authz.local:443",
		"http://authz.local:9011/": "authz.local:9011",
	}
	for in, want := range cases {
		got, err := serviceAddress(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := serviceAddress("not a url")
	assert.Error(t, err)
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	assert.NoError(t, PingService(context.Background(), "http://"+ln.Addr().String(), time.Second))

	addr := ln.Addr().String()
	ln.Close()
	assert.Error(t, PingAuthorizer(context.Background(), "http://"+addr))
}

func TestResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", VersionErrorResponse)
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFoundResponse(c, "View 'x' not found") })
	app.Get("/rejected", func(c *fiber.Ctx) error { return RejectedResponse(c, "cannot hide required property") })
	app.Get("/ok", func(c *fiber.Ctx) error { return MutationSuccessResponse(c, 7, 2) })

	get := func(path string, v any) int {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, v))
		return resp.StatusCode
	}

	var e ErrorResponseStruct
	assert.Equal(t, fiber.StatusConflict, get("/conflict", &e))
	assert.True(t, e.VersionError)
	assert.Equal(t, "/conflict", e.URL)

	assert.Equal(t, fiber.StatusNotFound, get("/missing", &e))
	assert.Equal(t, "View 'x' not found", e.Message)

	assert.Equal(t, fiber.StatusUnprocessableEntity, get("/rejected", &e))
	assert.False(t, e.Ok)

	var s SuccessResponseStruct
	assert.Equal(t, fiber.StatusOK, get("/ok", &s))
	assert.Equal(t, "7", s.NewVersion)
	assert.Equal(t, int64(2), s.AffectedRows)
}
