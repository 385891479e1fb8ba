// sites.go
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
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SiteHandler handles website and hostname routes
type SiteHandler struct {
	DB *gorm.DB
}

// ListSites handles GET /api/sites
// @Summary List websites
// @Description List all websites ordered by name
// @Tags Sites
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites [get]
func (h *SiteHandler) ListSites(c *fiber.Ctx) error {
	sites, err := services.ListWebsites(h.DB)
	if err != nil {
		return domainErrorResponse(c, err, "listSites")
	}
	out := make([]fiber.Map, 0, len(sites))
	for i := range sites {
		out = append(out, websiteJSON(&sites[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// CreateSite handles POST /api/sites
// @Summary Create website
// @Description Create a website together with its root folder
// @Tags Sites
// @Accept json
// @Produce json
// @Param body body services.CreateWebsiteInput true "Website fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites [post]
func (h *SiteHandler) CreateSite(c *fiber.Ctx) error {
	var in services.CreateWebsiteInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}
	if in.Name == "" && in.Title == "" {
		return utils.ErrorResponse(c, "A name or title is required", fiber.StatusBadRequest, "content.validation.input")
	}

	site, err := services.CreateWebsite(h.DB, in)
	if err != nil {
		return domainErrorResponse(c, err, "createSite")
	}
	return c.Status(fiber.StatusCreated).JSON(websiteJSON(site))
}

// GetSite handles GET /api/sites/:site
// @Summary Get website
// @Description Get a website with its folders and hostnames
// @Tags Sites
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site} [get]
func (h *SiteHandler) GetSite(c *fiber.Ctx) error {
	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return domainErrorResponse(c, err, "getSite")
	}

	folders := make([]fiber.Map, 0, len(site.Folders))
	for i := range site.Folders {
		site.Folders[i].Website = site
		folder, err := folderJSON(&site.Folders[i])
		if err != nil {
			return domainErrorResponse(c, err, "getSite")
		}
		folders = append(folders, folder)
	}
	hostnames := make([]string, 0, len(site.Hostnames))
	for i := range site.Hostnames {
		hostnames = append(hostnames, site.Hostnames[i].Name)
	}

	out := websiteJSON(site)
	out["folders"] = folders
	out["hostnames"] = hostnames
	return c.Status(fiber.StatusOK).JSON(out)
}

// UpdateSite handles PUT /api/sites/:site
// @Summary Update website
// @Description Update the mutable fields of a website
// @Tags Sites
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param body body services.UpdateWebsiteInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site} [put]
func (h *SiteHandler) UpdateSite(c *fiber.Ctx) error {
	var in services.UpdateWebsiteInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "content.validation.input")
	}

	site, err := services.UpdateWebsite(h.DB, c.Params("site"), in)
	if err != nil {
		return domainErrorResponse(c, err, "updateSite")
	}
	return c.Status(fiber.StatusOK).JSON(websiteJSON(site))
}

// DeleteSite handles DELETE /api/sites/:site
// @Summary Delete website
// @Description Delete a website and everything it owns
// @Tags Sites
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site} [delete]
func (h *SiteHandler) DeleteSite(c *fiber.Ctx) error {
	if err := services.DeleteWebsite(h.DB, c.Params("site")); err != nil {
		return domainErrorResponse(c, err, "deleteSite")
	}
	return utils.MutationSuccessResponse(c, 1)
}

// AttachHostname handles POST /api/sites/:site/hostnames
// @Summary Attach hostname
// @Description Get or create a hostname bound to the website
// @Tags Sites
// @Accept json
// @Produce json
// @Param site path string true "Website name"
// @Param body body object true "Hostname to attach"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /sites/{site}/hostnames [post]
func (h *SiteHandler) AttachHostname(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return utils.ErrorResponse(c, "A hostname is required", fiber.StatusBadRequest, "content.validation.input")
	}

	site, err := services.GetWebsite(h.DB, c.Params("site"))
	if err != nil {
		return domainErrorResponse(c, err, "attachHostname")
	}

	hostname, err := services.GetOrCreateHostname(h.DB, body.Name, site)
	if err != nil {
		return domainErrorResponse(c, err, "attachHostname")
	}

	attached := hostname.WebsiteID != nil && *hostname.WebsiteID == site.ID
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"name":     hostname.Name,
		"attached": attached,
	})
}

// GetHostname handles GET /api/hostnames/:hostname
// @Summary Look up hostname
// @Description Resolve a hostname to the website it serves
// @Tags Sites
// @Accept json
// @Produce json
// @Param hostname path string true "Hostname"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hostnames/{hostname} [get]
func (h *SiteHandler) GetHostname(c *fiber.Ctx) error {
	hostname, err := services.GetHostname(h.DB, c.Params("hostname"))
	if err != nil {
		return domainErrorResponse(c, err, "getHostname")
	}
	out := fiber.Map{"name": hostname.Name}
	if hostname.Website != nil {
		out["website"] = hostname.Website.Name
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
