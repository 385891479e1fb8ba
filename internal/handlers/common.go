// common.go
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

package handlers

import (
	"errors"

	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// URL placeholders for names that are empty in the database. The root folder
// and a folder's index node have the empty name, which cannot appear as a
// path segment.
const (
	RootFolderSegment = "_root"
	IndexNodeSegment  = "_index"
)

// folderParam returns the folder name addressed by the :folder path segment,
// mapping the root placeholder to the empty name.
func folderParam(c *fiber.Ctx) string {
	name := c.Params("folder")
	if name == RootFolderSegment {
		return ""
	}
	return name
}

// nodeParam returns the node name addressed by the :node path segment,
// mapping the index placeholder to the empty name.
func nodeParam(c *fiber.Ctx) string {
	name := c.Params("node")
	if name == IndexNodeSegment {
		return ""
	}
	return name
}

// domainErrorResponse maps the typed domain errors onto HTTP responses:
// uniqueness conflicts to 409, missing entities and keys to 404, rejected
// arguments and unknown type tags to 400, anything else to 500.
func domainErrorResponse(c *fiber.Ctx, err error, errorType string) error {
	var uniq *models.UniquenessError
	switch {
	case errors.As(err, &uniq):
		return utils.ConflictResponse(c, uniq.Error())
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrKeyNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrUnknownType):
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, errorType)
	default:
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, errorType)
	}
}

// actingUser resolves the session user placed in context by the auth
// middleware into the local user row that owns what this request creates.
func actingUser(c *fiber.Ctx, db *gorm.DB) (*models.User, error) {
	sessionUser := c.Locals("user")
	if sessionUser == nil {
		return nil, errors.New("no session user in request context")
	}
	return services.ResolveActingUser(db, sessionUser)
}

// websiteJSON serializes a website without its children.
func websiteJSON(site *models.Website) fiber.Map {
	return fiber.Map{
		"name":                 site.Name,
		"title":                site.Title,
		"url":                  site.URL,
		"theme":                site.Theme,
		"typekit_code":         site.TypekitCode,
		"googleanalytics_code": site.GoogleAnalyticsCode,
	}
}

// folderJSON serializes a folder with its effective theme and view URL.
// Requires Website to be loaded.
func folderJSON(folder *models.Folder) (fiber.Map, error) {
	viewURL, err := folder.ViewURL()
	if err != nil {
		return nil, err
	}
	name := folder.Name
	if folder.IsRoot() {
		name = RootFolderSegment
	}
	return fiber.Map{
		"name":     name,
		"title":    folder.Title,
		"theme":    folder.Theme(),
		"view_url": viewURL,
	}, nil
}

// nodeJSON serializes a node per its export surface, plus the route request
// the caller resolves into a concrete URL.
func nodeJSON(db *gorm.DB, node *models.Node) (fiber.Map, error) {
	data, err := node.AsJSON(db)
	if err != nil {
		return nil, err
	}
	out := fiber.Map(data)
	out["url"] = node.URL()
	return out, nil
}
