// node_service.go
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
	"time"

	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/names"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CreateNodeInput carries the caller-supplied node fields. UserID is the
// acting user's id, threaded in explicitly by the caller; there is no
// ambient identity in this layer. Name is derived from Title when empty.
type CreateNodeInput struct {
	Type        string                 `json:"type"`
	Name        string                 `json:"name"`
	Title       string                 `json:"title"`
	UserID      uint64                 `json:"-"`
	PublishedAt *time.Time             `json:"published_at,omitempty"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

// CreateNode creates a node of a registered type under a folder: node row,
// variant side row and initial properties in one transaction. The uuid is
// assigned here, published_at defaults to now, and the (name, folder) pair
// must be unique.
func CreateNode(db *gorm.DB, folder *models.Folder, in CreateNodeInput) (*models.Node, error) {
	rec, ok := models.LookupType(in.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownType, in.Type)
	}
	if in.UserID == 0 {
		return nil, fmt.Errorf("%w: acting user is required", models.ErrInvalidArgument)
	}

	node := &models.Node{
		UUID:     names.NewID(),
		Name:     in.Name,
		Title:    in.Title,
		FolderID: folder.ID,
		Folder:   folder,
		UserID:   in.UserID,
		Type:     rec.Tag,
	}
	if in.PublishedAt != nil {
		node.PublishedAt = in.PublishedAt.UTC()
	} else {
		node.PublishedAt = time.Now().UTC()
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if node.Name == "" {
			derived, err := MakeNodeName(tx, folder.ID, node.Title)
			if err != nil {
				return err
			}
			node.Name = derived
		} else {
			taken, err := nodeNameTaken(tx, folder.ID, node.Name)
			if err != nil {
				return err
			}
			if taken {
				return &models.UniquenessError{Entity: "node", Name: node.Name, Scope: "folder " + folder.Name}
			}
		}

		if err := tx.Create(node).Error; err != nil {
			return translateDuplicate(err, "node", node.Name, "folder "+folder.Name)
		}

		variant := rec.New()
		variant.SetNodeID(node.ID)
		if err := tx.Create(variant).Error; err != nil {
			return fmt.Errorf("failed to create %s row: %w", rec.Tag, err)
		}

		if len(in.Properties) > 0 {
			store, err := node.Properties(tx)
			if err != nil {
				return err
			}
			for key, value := range in.Properties {
				if err := store.Set(tx, key, value); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// MakeNodeName derives a URL-safe node name from a title, unique within the
// folder. Exposed for constructs that intentionally start blank and need a
// name assigned before the unique constraint bites.
func MakeNodeName(tx *gorm.DB, folderID uint64, title string) (string, error) {
	return names.MakeUnique(names.Slugify(title), func(name string) (bool, error) {
		return nodeNameTaken(tx, folderID, name)
	})
}

// GetNode loads a node by (folder, name) with its folder, owner and
// property rows. Returns ErrNotFound when absent.
func GetNode(db *gorm.DB, folder *models.Folder, name string) (*models.Node, error) {
	var node models.Node
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("User").
		Preload("NodeProperties", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("folder_id = ? AND name = ?", folder.ID, name).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	node.Folder = folder
	return &node, nil
}

// GetNodeByUUID loads a node by its cross-environment uuid, with folder,
// owner and property rows.
func GetNodeByUUID(db *gorm.DB, uuid string) (*models.Node, error) {
	var node models.Node
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Folder.Website").
		Preload("User").
		Preload("NodeProperties", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("uuid = ?", uuid).
		First(&node).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &node, nil
}

// DeleteNode removes a node, its properties and its variant row.
func DeleteNode(db *gorm.DB, node *models.Node) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("node_id = ?", node.ID).Delete(&models.Property{}).Error; err != nil {
			return err
		}
		if rec, ok := models.LookupType(node.Type); ok {
			if err := tx.Where("node_id = ?", node.ID).Delete(rec.New()).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Node{}, node.ID).Error
	})
}

// RenameNode assigns a new name, enforcing per-folder uniqueness.
func RenameNode(db *gorm.DB, node *models.Node, name string) error {
	if name == node.Name {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		taken, err := nodeNameTaken(tx, node.FolderID, name)
		if err != nil {
			return err
		}
		if taken {
			return &models.UniquenessError{Entity: "node", Name: name, Scope: fmt.Sprintf("folder %d", node.FolderID)}
		}
		if err := tx.Model(node).Update("name", name).Error; err != nil {
			return translateDuplicate(err, "node", name, fmt.Sprintf("folder %d", node.FolderID))
		}
		node.Name = name
		return nil
	})
}

// nodeNameTaken reports whether a node with the given name exists in the
// folder.
func nodeNameTaken(tx *gorm.DB, folderID uint64, name string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Node{}).
		Where("folder_id = ? AND name = ?", folderID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
