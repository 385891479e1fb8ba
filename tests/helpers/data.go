// data.go
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

package helpers

import (
	"testing"

	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/services"
	"gorm.io/gorm"
)

// CreateTestUser creates a user row for node ownership in tests
func CreateTestUser(t *testing.T, db *gorm.DB, externalID, email string) *models.User {
	t.Helper()
	user := models.User{
		UserID:   externalID,
		Email:    email,
		Fullname: "Test User",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

// CreateTestSite creates a website (with its root folder) by title
func CreateTestSite(t *testing.T, db *gorm.DB, title, url string) *models.Website {
	t.Helper()
	site, err := services.CreateWebsite(db, services.CreateWebsiteInput{
		Title: title,
		URL:   url,
	})
	if err != nil {
		t.Fatalf("Failed to create website: %v", err)
	}
	return site
}

// CreateTestFolder creates a folder under the website by title
func CreateTestFolder(t *testing.T, db *gorm.DB, site *models.Website, title string) *models.Folder {
	t.Helper()
	folder, err := services.CreateFolder(db, site, services.CreateFolderInput{Title: title})
	if err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	return folder
}

// RootFolder loads the website's root folder
func RootFolder(t *testing.T, db *gorm.DB, site *models.Website) *models.Folder {
	t.Helper()
	folder, err := services.GetFolder(db, site, "")
	if err != nil {
		t.Fatalf("Failed to load root folder: %v", err)
	}
	return folder
}

// CreateTestNode creates a node of the given type with properties
func CreateTestNode(t *testing.T, db *gorm.DB, folder *models.Folder, user *models.User, nodeType, title string, properties map[string]interface{}) *models.Node {
	t.Helper()
	node, err := services.CreateNode(db, folder, services.CreateNodeInput{
		Type:       nodeType,
		Title:      title,
		UserID:     user.ID,
		Properties: properties,
	})
	if err != nil {
		t.Fatalf("Failed to create node: %v", err)
	}
	return node
}
