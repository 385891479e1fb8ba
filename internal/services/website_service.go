// website_service.go
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

// CreateWebsiteInput carries the caller-supplied website fields. Name is
// derived from Title when empty.
type CreateWebsiteInput struct {
	Name                string `json:"name"`
	Title               string `json:"title"`
	URL                 string `json:"url"`
	Theme               string `json:"theme"`
	TypekitCode         string `json:"typekit_code"`
	GoogleAnalyticsCode string `json:"googleanalytics_code"`
}

// CreateWebsite creates a website together with its root folder (the folder
// with the empty name) in one transaction. The root folder is not optional
// or deferred: either both rows exist afterwards or neither does.
func CreateWebsite(db *gorm.DB, in CreateWebsiteInput) (*models.Website, error) {
	site := &models.Website{
		Name:                in.Name,
		Title:               in.Title,
		URL:                 in.URL,
		Theme:               in.Theme,
		TypekitCode:         in.TypekitCode,
		GoogleAnalyticsCode: in.GoogleAnalyticsCode,
	}
	if site.Theme == "" {
		site.Theme = "default"
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if site.Name == "" {
			derived, err := names.MakeUnique(names.Slugify(site.Title), func(name string) (bool, error) {
				return websiteNameTaken(tx, name)
			})
			if err != nil {
				return err
			}
			site.Name = derived
		} else {
			taken, err := websiteNameTaken(tx, site.Name)
			if err != nil {
				return err
			}
			if taken {
				return &models.UniquenessError{Entity: "website", Name: site.Name}
			}
		}

		if err := tx.Create(site).Error; err != nil {
			return translateDuplicate(err, "website", site.Name, "")
		}

		root := models.Folder{Name: "", Title: "", WebsiteID: site.ID}
		if err := tx.Create(&root).Error; err != nil {
			return fmt.Errorf("failed to create root folder: %w", err)
		}
		site.Folders = append(site.Folders, root)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return site, nil
}

// GetWebsite loads a website by its unique name with folders (ordered by
// name) and hostnames. Returns ErrNotFound when no such website exists.
func GetWebsite(db *gorm.DB, name string) (*models.Website, error) {
	var site models.Website
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Folders", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Hostnames").
		Where("name = ?", name).
		First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &site, nil
}

// ListWebsites returns all websites ordered by name.
func ListWebsites(db *gorm.DB) ([]models.Website, error) {
	var sites []models.Website
	if err := db.Order("name").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

// UpdateWebsiteInput carries the mutable website fields for an update. Nil
// pointers leave the column untouched.
type UpdateWebsiteInput struct {
	Title               *string `json:"title"`
	URL                 *string `json:"url"`
	Theme               *string `json:"theme"`
	TypekitCode         *string `json:"typekit_code"`
	GoogleAnalyticsCode *string `json:"googleanalytics_code"`
}

// UpdateWebsite applies the non-nil fields of in to the named website.
func UpdateWebsite(db *gorm.DB, name string, in UpdateWebsiteInput) (*models.Website, error) {
	site, err := GetWebsite(db, name)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}
	if in.Theme != nil {
		updates["theme"] = *in.Theme
	}
	if in.TypekitCode != nil {
		updates["typekit_code"] = *in.TypekitCode
	}
	if in.GoogleAnalyticsCode != nil {
		updates["googleanalytics_code"] = *in.GoogleAnalyticsCode
	}
	if len(updates) == 0 {
		return site, nil
	}
	if err := db.Model(site).Updates(updates).Error; err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteWebsite removes a website and everything it owns: hostnames,
// folders, the folders' nodes and the nodes' properties and variant rows.
// No orphan survives.
func DeleteWebsite(db *gorm.DB, name string) error {
	site, err := GetWebsite(db, name)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var folderIDs []uint64
		if err := tx.Model(&models.Folder{}).Where("website_id = ?", site.ID).
			Pluck("id", &folderIDs).Error; err != nil {
			return err
		}
		if len(folderIDs) > 0 {
			if err := deleteNodesInFolders(tx, folderIDs); err != nil {
				return err
			}
			if err := tx.Where("website_id = ?", site.ID).Delete(&models.Folder{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("website_id = ?", site.ID).Delete(&models.Hostname{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Website{}, site.ID).Error
	})
}

// GetOrCreateHostname returns the hostname row for name, creating it bound
// to website when none exists. An existing row is returned as-is; it is not
// re-attached.
func GetOrCreateHostname(db *gorm.DB, name string, website *models.Website) (*models.Hostname, error) {
	var hostname models.Hostname
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("name = ?", name).First(&hostname).Error
	if err == nil {
		return &hostname, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hostname = models.Hostname{Name: name}
	if website != nil {
		hostname.WebsiteID = &website.ID
	}
	if err := db.Create(&hostname).Error; err != nil {
		return nil, translateDuplicate(err, "hostname", name, "")
	}
	return &hostname, nil
}

// GetHostname looks up a hostname with the website it serves, if any.
// Returns ErrNotFound when no such hostname exists.
func GetHostname(db *gorm.DB, name string) (*models.Hostname, error) {
	var hostname models.Hostname
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Website").
		Where("name = ?", name).
		First(&hostname).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &hostname, nil
}

// websiteNameTaken reports whether a website with the given name exists.
func websiteNameTaken(tx *gorm.DB, name string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Website{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateDuplicate maps the driver's duplicate-key error onto the typed
// UniquenessError so races that slip past the pre-checks surface the same
// way.
func translateDuplicate(err error, entity, name, scope string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &models.UniquenessError{Entity: entity, Name: name, Scope: scope}
	}
	return err
}

// deleteNodesInFolders removes every node in the given folders along with
// its properties and variant rows.
func deleteNodesInFolders(tx *gorm.DB, folderIDs []uint64) error {
	var nodeIDs []uint64
	if err := tx.Model(&models.Node{}).Where("folder_id IN ?", folderIDs).
		Pluck("id", &nodeIDs).Error; err != nil {
		return err
	}
	if len(nodeIDs) == 0 {
		return nil
	}
	if err := tx.Where("node_id IN ?", nodeIDs).Delete(&models.Property{}).Error; err != nil {
		return err
	}
	for _, variant := range models.VariantModels() {
		if err := tx.Where("node_id IN ?", nodeIDs).Delete(variant).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", nodeIDs).Delete(&models.Node{}).Error
}
