// auth_service.go
//
// A multi-site content management data service
// Copyright (c) 2026 Framekit Contributors
//
// This file is part of sitedb.
// sitedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitedb.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/framekit/sitedb/internal/config"
	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/utils"
	authorizer "github.com/localnerve/authorizer-go"
	"gorm.io/gorm"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern)
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
			cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

		var err error
		authClient, err = authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
	})

	return initErr
}

// ValidateSession validates a session cookie for the given roles
func ValidateSession(cookie string, roles []string) (map[string]interface{}, error) {
	if authClient == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	// Validate session using the authorizer-go SDK
	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	// Check if session is valid
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	// Return user data
	return map[string]interface{}{
		"is_valid": res.IsValid,
		"user":     res.User,
	}, nil
}

// actingIdentity is the slice of the authorizer's user record this service
// cares about.
type actingIdentity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// ResolveActingUser maps a validated session's user onto the local user
// table, creating the row on first sight. The result is the identity that
// node creation threads through as the default owner; nothing else in the
// core reads an ambient user.
func ResolveActingUser(db *gorm.DB, sessionUser interface{}) (*models.User, error) {
	// The SDK's user type varies across versions; round-trip through JSON
	// to pick out the stable fields.
	raw, err := json.Marshal(sessionUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	var ident actingIdentity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	if ident.ID == "" {
		return nil, fmt.Errorf("session user has no id")
	}

	fullname := strings.TrimSpace(ident.GivenName + " " + ident.FamilyName)
	user := models.User{UserID: ident.ID}
	err = db.Where("user_id = ?", ident.ID).
		Attrs(models.User{Email: ident.Email, Fullname: fullname}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return &user, nil
}
