// auth.go
//
// Multi-view database engine and data service for the jam-build second brain
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-viewdb.
// jam-build-viewdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-viewdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-viewdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/types"
)

const (
	capabilitiesKey = "capabilities"
	sessionKey      = "session"
)

// initializer is implemented by validators that need the request origin
type initializer interface {
	Init(requestProtocol, requestHost string) error
}

// Capabilities resolves the caller's DocumentViewConfig from the session
// cookie. A nil validator grants full access, for deployments without an
// authorizer.
func Capabilities(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if validator == nil {
			c.Locals(capabilitiesKey, schema.FullAccess())
			return c.Next()
		}

		if init, ok := validator.(initializer); ok {
			if err := init.Init(c.Protocol(), c.Hostname()); err != nil {
				return &types.CustomError{
					Code:    fiber.StatusServiceUnavailable,
					Message: fmt.Sprintf("Authorizer unavailable: %v", err),
					Type:    "data.authorization.init",
				}
			}
		}

		cookie := c.Cookies("cookie_session")
		if cookie == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorizer cookie \"cookie_session\" not found",
				Type:    "data.authorization.session",
			}
		}

		session, err := validator.ValidateSession(cookie)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "data.authorization.session",
			}
		}

		c.Locals(sessionKey, session)
		c.Locals(capabilitiesKey, services.CapabilitiesForRoles(session.Roles))
		return c.Next()
	}
}

// CapabilitiesFrom returns the capabilities resolved for the request, or
// none when the Capabilities middleware did not run.
func CapabilitiesFrom(c *fiber.Ctx) schema.DocumentViewConfig {
	cfg, _ := c.Locals(capabilitiesKey).(schema.DocumentViewConfig)
	return cfg
}

// SessionFrom returns the validated session, if any
func SessionFrom(c *fiber.Ctx) (services.Session, bool) {
	s, ok := c.Locals(sessionKey).(services.Session)
	return s, ok
}

// Require rejects the request unless allow accepts the caller's capabilities.
// The engine's capability flags are advisory; this is where they are enforced.
func Require(name string, allow func(schema.DocumentViewConfig) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !allow(CapabilitiesFrom(c)) {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: fmt.Sprintf("Missing capability %q", name),
				Type:    "data.authorization." + name,
			}
		}
		return c.Next()
	}
}

// CanCreate requires the create capability
func CanCreate() fiber.Handler {
	return Require("create", func(cfg schema.DocumentViewConfig) bool { return cfg.CanCreate })
}

// CanEdit requires the edit capability
func CanEdit() fiber.Handler {
	return Require("edit", func(cfg schema.DocumentViewConfig) bool { return cfg.CanEdit })
}

// CanManageViews requires the view management capability
func CanManageViews() fiber.Handler {
	return Require("views", func(cfg schema.DocumentViewConfig) bool { return cfg.CanManageViews })
}

// CanManageProperties requires the property management capability
func CanManageProperties() fiber.Handler {
	return Require("properties", func(cfg schema.DocumentViewConfig) bool { return cfg.CanManageProperties })
}
