// nodes.go
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
	"github.com/framekit/sitedb/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NodeHandler handles node and node property routes
type NodeHandler struct {
	DB *gorm.DB
}

// loadNode resolves the :site/:folder/:node triple of the request path.
func (h *NodeHandler) loadNode(c *fiber.Ctx) (*models.Node, error) {
	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return nil, err
	}
	folder, err := services.GetFolder(h.DB, site, folderParam(c))
	if err != nil {
		return nil, err
	}
	return services.GetNode(h.DB, folder, nodeParam(c))
}

// CreateNode handles POST /api/sites/:site/folders/:folder/nodes
// @Summary Create node
// @Description Create a node of a registered type under a folder, owned by the acting user
// @Tags Nodes
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param body body services.CreateNodeInput true "Node fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes [post]
func (h *NodeHandler) CreateNode(c *fiber.Ctx) error {
	var in services.CreateNodeInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}
	if in.Type == "" {
		return utils.ErrorResponse(c, "A node type is required", fiber.StatusBadRequest, "content.validation.input")
	}
	if in.Name == "" && in.Title == "" {
		return utils.ErrorResponse(c, "A name or title is required", fiber.StatusBadRequest, "content.validation.input")
	}

	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return domainErrorResponse(c, err, "createNode")
	}
	folder, err := services.GetFolder(h.DB, site, folderParam(c))
	if err != nil {
		return domainErrorResponse(c, err, "createNode")
	}

	user, err := actingUser(c, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "content.authorization.user")
	}
	in.UserID = user.ID

	node, err := services.CreateNode(h.DB, folder, in)
	if err != nil {
		return domainErrorResponse(c, err, "createNode")
	}
	node.User = user
	out, err := nodeJSON(h.DB, node)
	if err != nil {
		return domainErrorResponse(c, err, "createNode")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetNode handles GET /api/sites/:site/folders/:folder/nodes/:node
// @Summary Get node
// @Description Get a node with its properties and route; use _index for the folder's index node
// @Tags Nodes
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node} [get]
func (h *NodeHandler) GetNode(c *fiber.Ctx) error {
	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "getNode")
	}
	out, err := nodeJSON(h.DB, node)
	if err != nil {
		return domainErrorResponse(c, err, "getNode")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// RenameNode handles PUT /api/sites/:site/folders/:folder/nodes/:node
// @Summary Rename node
// @Description Assign a new name to a node, unique within its folder
// @Tags Nodes
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Param body body object true "New name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node} [put]
func (h *NodeHandler) RenameNode(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return utils.ErrorResponse(c, "A name is required", fiber.StatusBadRequest, "content.validation.input")
	}

	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "renameNode")
	}
	if err := services.RenameNode(h.DB, node, body.Name); err != nil {
		return domainErrorResponse(c, err, "renameNode")
	}
	out, err := nodeJSON(h.DB, node)
	if err != nil {
		return domainErrorResponse(c, err, "renameNode")
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// DeleteNode handles DELETE /api/sites/:site/folders/:folder/nodes/:node
// @Summary Delete node
// @Description Delete a node with its properties and variant row
// @Tags Nodes
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node} [delete]
func (h *NodeHandler) DeleteNode(c *fiber.Ctx) error {
	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "deleteNode")
	}
	if err := services.DeleteNode(h.DB, node); err != nil {
		return domainErrorResponse(c, err, "deleteNode")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// GetProperties handles GET /api/sites/:site/folders/:folder/nodes/:node/properties
// @Summary Get node properties
// @Description Get the full property mapping of a node
// @Tags Properties
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node}/properties [get]
func (h *NodeHandler) GetProperties(c *fiber.Ctx) error {
	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "getProperties")
	}
	store, err := node.Properties(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "getProperties")
	}
	return c.Status(fiber.StatusOK).JSON(store.Map())
}

// GetProperty handles GET /api/sites/:site/folders/:folder/nodes/:node/properties/:property
// @Summary Get node property
// @Description Get a single property value by name
// @Tags Properties
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Param property path string true "Property name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node}/properties/{property} [get]
func (h *NodeHandler) GetProperty(c *fiber.Ctx) error {
	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "getProperty")
	}
	store, err := node.Properties(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "getProperty")
	}
	key := c.Params("property")
	value, ok := store.Get(key)
	if !ok {
		return utils.NotFoundResponse(c, "Property '"+key+"' not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": key, "value": value})
}

// SetProperty handles PUT /api/sites/:site/folders/:folder/nodes/:node/properties/:property
// @Summary Set node property
// @Description Create or update a single property; the value is coerced to text
// @Tags Properties
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Param property path string true "Property name"
// @Param body body object true "Value to set"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node}/properties/{property} [put]
func (h *NodeHandler) SetProperty(c *fiber.Ctx) error {
	var body struct {
		Value interface{} `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}

	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "setProperty")
	}
	store, err := node.Properties(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "setProperty")
	}
	key := c.Params("property")
	if err := store.Set(h.DB, key, body.Value); err != nil {
		return domainErrorResponse(c, err, "setProperty")
	}
	value, _ := store.Get(key)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": key, "value": value})
}

// DeleteProperty handles DELETE /api/sites/:site/folders/:folder/nodes/:node/properties/:property
// @Summary Delete node property
// @Description Remove a property and return its last value
// @Tags Properties
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Param property path string true "Property name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node}/properties/{property} [delete]
func (h *NodeHandler) DeleteProperty(c *fiber.Ctx) error {
	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "deleteProperty")
	}
	store, err := node.Properties(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "deleteProperty")
	}
	key := c.Params("property")
	value, err := store.Pop(h.DB, key)
	if err != nil {
		return domainErrorResponse(c, err, "deleteProperty")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": key, "value": value})
}

// ReplaceProperties handles POST /api/sites/:site/folders/:folder/nodes/:node/properties
// @Summary Replace node properties
// @Description Swap the node's whole property mapping in one transaction
// @Tags Properties
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param folder path string true "Folder name or _root"
// @Param node path string true "Node name or _index"
// @Param body body object true "New property mapping"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/folders/{folder}/nodes/{node}/properties [post]
func (h *NodeHandler) ReplaceProperties(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}

	node, err := h.loadNode(c)
	if err != nil {
		return domainErrorResponse(c, err, "replaceProperties")
	}
	store, err := node.Properties(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "replaceProperties")
	}
	if err := store.Replace(h.DB, body); err != nil {
		return domainErrorResponse(c, err, "replaceProperties")
	}
	return c.Status(fiber.StatusOK).JSON(store.Map())
}
