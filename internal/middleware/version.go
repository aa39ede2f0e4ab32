package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/types"
)

// APIVersion is the version served when the caller does not ask for one
const APIVersion = "1.0.0"

// VersionMiddleware normalises the X-Api-Version header, echoes it back and
// stores it in locals as "apiVersion". Major versions other than 1 are refused.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimPrefix(c.Get("X-Api-Version", APIVersion), "v")

		switch version {
		case "1", "1.0":
			version = APIVersion
		}
		if major, _, _ := strings.Cut(version, "."); major != "1" {
			return types.NewError(fiber.StatusBadRequest, "data.version", "Unsupported API version %q", version)
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)
		return c.Next()
	}
}
