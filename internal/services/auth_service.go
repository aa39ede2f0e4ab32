// auth_service.go
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

package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/jam-build-viewdb/internal/config"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
	"github.com/localnerve/jam-build-viewdb/internal/utils"
)

// Role names understood by CapabilitiesForRoles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// Session is a validated authorizer session
type Session struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

// SessionValidator validates a session cookie
type SessionValidator interface {
	ValidateSession(cookie string) (Session, error)
}

// AuthorizerValidator validates sessions with the authorizer service. The
// client is created on first use, once the request origin is known.
type AuthorizerValidator struct {
	cfg     *config.Config
	once    sync.Once
	client  *authorizer.AuthorizerClient
	initErr error
}

// NewAuthorizerValidator returns a validator for the configured authorizer
func NewAuthorizerValidator(cfg *config.Config) *AuthorizerValidator {
	return &AuthorizerValidator{cfg: cfg}
}

// Init creates the authorizer client. Only the first call has an effect.
func (v *AuthorizerValidator) Init(requestProtocol, requestHost string) error {
	v.once.Do(func() {
		if err := utils.PingAuthorizer(context.Background(), v.cfg.AuthzURL); err != nil {
			v.initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
			v.cfg.AuthzURL, v.cfg.AuthzClientID, redirectURL)

		client, err := authorizer.NewAuthorizerClient(v.cfg.AuthzClientID, v.cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			v.initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
		v.client = client
	})
	return v.initErr
}

// ValidateSession validates a session cookie and returns the user's roles
func (v *AuthorizerValidator) ValidateSession(cookie string) (Session, error) {
	if v.client == nil {
		return Session{}, fmt.Errorf("authorizer client not initialized")
	}

	res, err := v.client.ValidateSession(&authorizer.ValidateSessionInput{Cookie: cookie})
	if err != nil {
		return Session{}, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return Session{}, fmt.Errorf("session is not valid")
	}

	session := Session{}
	if res.User != nil {
		session.UserID = res.User.ID
		for _, role := range res.User.Roles {
			if role != nil {
				session.Roles = append(session.Roles, *role)
			}
		}
	}
	return session, nil
}

// CapabilitiesForRoles maps session roles to view capabilities. Unknown
// roles get read-only access.
func CapabilitiesForRoles(roles []string) schema.DocumentViewConfig {
	switch {
	case slices.Contains(roles, RoleAdmin):
		return schema.FullAccess()
	case slices.Contains(roles, RoleEditor):
		return schema.DocumentViewConfig{CanCreate: true, CanEdit: true, CanDelete: true, CanManageViews: true}
	case slices.Contains(roles, RoleUser):
		return schema.DocumentViewConfig{CanCreate: true, CanEdit: true, CanManageViews: true}
	}
	return schema.DocumentViewConfig{}
}
