// export_service.go
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
	"gorm.io/gorm"
)

// ExportFolder serializes every node of a folder for cross-environment
// migration. Nodes come out in name order.
func ExportFolder(db *gorm.DB, folder *models.Folder) (map[string]interface{}, error) {
	var nodes []models.Node
	err := db.Preload("User").
		Preload("NodeProperties", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("folder_id = ?", folder.ID).
		Order("name").
		Find(&nodes).Error
	if err != nil {
		return nil, err
	}
	records := make([]map[string]interface{}, 0, len(nodes))
	for i := range nodes {
		nodes[i].Folder = folder
		record, err := nodes[i].AsJSON(db)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return map[string]interface{}{
		"website": folderWebsiteName(folder),
		"folder":  folder.Name,
		"nodes":   records,
	}, nil
}

// ImportNodes applies a batch of exported records to a folder. Nodes are
// matched by uuid: an existing node is overwritten (and moved to the target
// folder when it lives elsewhere), an unknown uuid becomes a new node owned
// by the acting user. After every record of the
// batch is imported, the internal-reference pass runs so variants can
// resolve links to other nodes regardless of import order. The whole batch
// is one transaction.
func ImportNodes(db *gorm.DB, folder *models.Folder, records []map[string]interface{}, actingUserID uint64) (int, error) {
	if actingUserID == 0 {
		return 0, fmt.Errorf("%w: acting user is required", models.ErrInvalidArgument)
	}
	imported := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		nodes := make([]*models.Node, len(records))
		for i, record := range records {
			node, err := importOne(tx, folder, record, actingUserID)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			nodes[i] = node
		}
		for i, record := range records {
			if err := nodes[i].ImportFromInternal(tx, record); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		imported = len(nodes)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

// importOne overwrites or creates a single node from an export record. A
// uuid match found under another folder is moved into the target folder, so
// an import always lands its records where it was aimed.
func importOne(tx *gorm.DB, folder *models.Folder, record map[string]interface{}, actingUserID uint64) (*models.Node, error) {
	uuid, _ := record["uuid"].(string)
	if uuid == "" {
		return nil, fmt.Errorf("%w: record has no uuid", models.ErrInvalidArgument)
	}
	typeTag, _ := record["type"].(string)
	rec, ok := models.LookupType(typeTag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownType, typeTag)
	}

	node, err := GetNodeByUUID(tx, uuid)
	if errors.Is(err, models.ErrNotFound) {
		name, _ := record["name"].(string)
		title, _ := record["title"].(string)
		node = &models.Node{
			UUID:        uuid,
			Name:        name,
			Title:       title,
			FolderID:    folder.ID,
			Folder:      folder,
			UserID:      actingUserID,
			Type:        rec.Tag,
			PublishedAt: time.Now().UTC(),
		}
		if err := tx.Create(node).Error; err != nil {
			return nil, err
		}
		variant := rec.New()
		variant.SetNodeID(node.ID)
		if err := tx.Create(variant).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if node.FolderID != folder.ID {
		node.FolderID = folder.ID
		node.Folder = folder
	}

	// Import overwrites identity, placement and content but never ownership
	if err := node.ImportFrom(tx, record); err != nil {
		return nil, err
	}
	if err := tx.Model(node).Updates(map[string]interface{}{
		"uuid":         node.UUID,
		"name":         node.Name,
		"title":        node.Title,
		"folder_id":    node.FolderID,
		"published_at": node.PublishedAt,
	}).Error; err != nil {
		return nil, translateDuplicate(err, "node", node.Name, "folder "+folder.Name)
	}
	return node, nil
}

func folderWebsiteName(folder *models.Folder) string {
	if folder.Website != nil {
		return folder.Website.Name
	}
	return ""
}
