// folders.go
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
	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/internal/types"
	"github.com/framekit/sitedb/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FolderHandler handles folder routes, including folder export and import
type FolderHandler struct {
	DB *gorm.DB
}

// loadFolder resolves the :site/:folder pair of the request path.
func (h *FolderHandler) loadFolder(c *fiber.Ctx) (*models.Folder, error) {
	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return nil, err
	}
	return services.GetFolder(h.DB, site, folderParam(c))
}

// CreateFolder handles POST /api/sites/:site/folders
// @Summary Create folder
// @Description Create a folder under a website
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param body body services.CreateFolderInput true "Folder fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders [post]
func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	var in services.CreateFolderInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}
	if in.Name == "" && in.Title == "" {
		return utils.ErrorResponse(c, "A name or title is required", fiber.StatusBadRequest, "content.validation.input")
	}

	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return domainErrorResponse(c, err, "createFolder")
	}

	folder, err := services.CreateFolder(h.DB, site, in)
	if err != nil {
		return domainErrorResponse(c, err, "createFolder")
	}
	out, err := folderJSON(folder)
	if err != nil {
		return domainErrorResponse(c, err, "createFolder")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetFolder handles GET /api/sites/:site/folders/:folder
// @Summary Get folder
// @Description Get a folder with its nodes; use _root for the root folder
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder} [get]
func (h *FolderHandler) GetFolder(c *fiber.Ctx) error {
	folder, err := h.loadFolder(c)
	if err != nil {
		return domainErrorResponse(c, err, "getFolder")
	}

	out, err := folderJSON(folder)
	if err != nil {
		return domainErrorResponse(c, err, "getFolder")
	}
	nodes := make([]fiber.Map, 0, len(folder.Nodes))
	for i := range folder.Nodes {
		node := &folder.Nodes[i]
		name := node.Name
		if name == "" {
			name = IndexNodeSegment
		}
		nodes = append(nodes, fiber.Map{
			"name":  name,
			"title": node.Title,
			"uuid":  node.UUID,
			"type":  node.Type,
		})
	}
	out["nodes"] = nodes
	return c.Status(fiber.StatusOK).JSON(out)
}

// UpdateFolderTheme handles PUT /api/sites/:site/folders/:folder/theme
// @Summary Set folder theme
// @Description Set or clear the folder's theme override; empty restores inheritance
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param body body object true "Theme to set"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/theme [put]
func (h *FolderHandler) UpdateFolderTheme(c *fiber.Ctx) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}

	folder, err := h.loadFolder(c)
	if err != nil {
		return domainErrorResponse(c, err, "updateFolderTheme")
	}

	folder.SetTheme(body.Theme)
	if err := h.DB.Model(folder).Update("theme", folder.ThemeOverride).Error; err != nil {
		return domainErrorResponse(c, err, "updateFolderTheme")
	}
	out, err := folderJSON(folder)
	if err != nil {
		return domainErrorResponse(c, err, "updateFolderTheme")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// DeleteFolder handles DELETE /api/sites/:site/folders/:folder
// @Summary Delete folder
// @Description Delete a folder and every node it owns; the root folder is refused
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder} [delete]
func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	folder, err := h.loadFolder(c)
	if err != nil {
		return domainErrorResponse(c, err, "deleteFolder")
	}
	if err := services.DeleteFolder(h.DB, folder); err != nil {
		return domainErrorResponse(c, err, "deleteFolder")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// ExportFolder handles GET /api/sites/:site/folders/:folder/export
// @Summary Export folder
// @Description Serialize every node of a folder for cross-environment migration
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/export [get]
func (h *FolderHandler) ExportFolder(c *fiber.Ctx) error {
	folder, err := h.loadFolder(c)
	if err != nil {
		return domainErrorResponse(c, err, "exportFolder")
	}
	result, err := services.ExportFolder(h.DB, folder)
	if err != nil {
		return domainErrorResponse(c, err, "exportFolder")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// ImportFolder handles POST /api/sites/:site/folders/:folder/import
// @Summary Import folder
// @Description Apply a batch of exported node records to a folder; matched by uuid, the whole batch is one transaction
// @Tags Folders
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param body body object true "Exported records, a single record or an array under nodes"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/import [post]
func (h *FolderHandler) ImportFolder(c *fiber.Ctx) error {
	var body struct {
		Nodes types.FlexList[map[string]interface{}] `json:"nodes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}
	if len(body.Nodes) == 0 {
		return utils.ErrorResponse(c, "No nodes to import", fiber.StatusBadRequest, "content.validation.input")
	}

	folder, err := h.loadFolder(c)
	if err != nil {
		return domainErrorResponse(c, err, "importFolder")
	}

	user, err := actingUser(c, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "content.authorization.user")
	}

	imported, err := services.ImportNodes(h.DB, folder, body.Nodes.Slice(), user.ID)
	if err != nil {
		return domainErrorResponse(c, err, "importFolder")
	}
	return utils.MutationSuccessResponse(c, int64(imported))
}
