// common.go
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

package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/services"
	"github.com/localnerve/jam-build-viewdb/internal/utils"
	"github.com/localnerve/jam-build-viewdb/internal/visibility"
)

// serviceError maps a service error to the response envelope. op names the
// failing operation in the error type of unexpected failures.
func serviceError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, visibility.ErrUnknownView):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrVersion):
		return utils.VersionErrorResponse(c)
	case errors.Is(err, visibility.ErrRequiredProperty):
		return utils.RejectedResponse(c, err.Error())
	case errors.Is(err, services.ErrFrozen):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusLocked, "data.frozen")
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, visibility.ErrUnknownProperty),
		errors.Is(err, visibility.ErrNoUpdates):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.validation.input")
	}
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}

func invalidInput(c *fiber.Ctx, format string, args ...any) error {
	return utils.ErrorResponse(c, fmt.Sprintf(format, args...), fiber.StatusBadRequest, "data.validation.input")
}

// queryTime parses an optional RFC3339 or YYYY-MM-DD query parameter
func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected RFC3339 or YYYY-MM-DD", key, raw)
	}
	return t, nil
}

// userID is the session user, or empty when sessions are not validated
func userID(c *fiber.Ctx) string {
	if s, ok := middleware.SessionFrom(c); ok {
		return s.UserID
	}
	return ""
}
