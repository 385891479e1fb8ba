// folder_service.go
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
	"errors"
	"fmt"

	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/names"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CreateFolderInput carries the caller-supplied folder fields. Name is
// derived from Title when empty; the empty name itself is reserved for the
// root folder, which only CreateWebsite makes.
type CreateFolderInput struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Theme string `json:"theme"`
}

// CreateFolder creates a folder under a website. The (name, website) pair
// must be unique.
func CreateFolder(db *gorm.DB, site *models.Website, in CreateFolderInput) (*models.Folder, error) {
	folder := &models.Folder{
		Name:          in.Name,
		Title:         in.Title,
		ThemeOverride: in.Theme,
		WebsiteID:     site.ID,
		Website:       site,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if folder.Name == "" {
			derived, err := MakeFolderName(tx, site.ID, folder.Title)
			if err != nil {
				return err
			}
			folder.Name = derived
		} else {
			taken, err := folderNameTaken(tx, site.ID, folder.Name)
			if err != nil {
				return err
			}
			if taken {
				return &models.UniquenessError{Entity: "folder", Name: folder.Name, Scope: "website " + site.Name}
			}
		}
		if err := tx.Create(folder).Error; err != nil {
			return translateDuplicate(err, "folder", folder.Name, "website "+site.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// MakeFolderName derives a URL-safe folder name from a title, unique within
// the website.
func MakeFolderName(tx *gorm.DB, websiteID uint64, title string) (string, error) {
	return names.MakeUnique(names.Slugify(title), func(name string) (bool, error) {
		return folderNameTaken(tx, websiteID, name)
	})
}

// GetFolder loads a folder by (website, name) with its website and its
// nodes ordered by name. The root folder has the empty name.
func GetFolder(db *gorm.DB, site *models.Website, name string) (*models.Folder, error) {
	var folder models.Folder
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Nodes", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("website_id = ? AND name = ?", site.ID, name).
		First(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	folder.Website = site
	return &folder, nil
}

// DeleteFolder removes a folder and every node it owns. The root folder
// cannot be deleted on its own; it goes down with its website.
func DeleteFolder(db *gorm.DB, folder *models.Folder) error {
	if folder.IsRoot() {
		return fmt.Errorf("%w: cannot delete the root folder", models.ErrInvalidArgument)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := deleteNodesInFolders(tx, []uint64{folder.ID}); err != nil {
			return err
		}
		return tx.Delete(&models.Folder{}, folder.ID).Error
	})
}

// folderNameTaken reports whether a folder with the given name exists under
// the website.
func folderNameTaken(tx *gorm.DB, websiteID uint64, name string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Folder{}).
		Where("website_id = ? AND name = ?", websiteID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
