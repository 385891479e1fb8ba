// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/framekit/sitedb/internal/handlers"
	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/tests/helpers"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp builds the API surface against an in-memory database. The auth
// middleware is replaced by a stub that installs a fixed session user, so
// these tests exercise the handlers, not the authorizer.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Website{},
		&models.Hostname{},
		&models.Folder{},
		&models.Node{},
		&models.Property{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := db.AutoMigrate(models.VariantModels()...); err != nil {
		t.Fatalf("Failed to migrate variants: %v", err)
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{
			"id":    "00000000-0000-0000-0000-000000000001",
			"email": "admin@example.com",
		})
		return c.Next()
	})

	siteHandler := &handlers.SiteHandler{DB: db}
	folderHandler := &handlers.FolderHandler{DB: db}
	nodeHandler := &handlers.NodeHandler{DB: db}

	api.Get("/sites", siteHandler.ListSites)
	api.Get("/sites/:site", siteHandler.GetSite)
	api.Get("/hostnames/:hostname", siteHandler.GetHostname)
	api.Post("/sites", siteHandler.CreateSite)
	api.Put("/sites/:site", siteHandler.UpdateSite)
	api.Delete("/sites/:site", siteHandler.DeleteSite)
	api.Post("/sites/:site/hostnames", siteHandler.AttachHostname)

	api.Get("/sites/:site/folders/:folder", folderHandler.GetFolder)
	api.Get("/sites/:site/folders/:folder/export", folderHandler.ExportFolder)
	api.Post("/sites/:site/folders", folderHandler.CreateFolder)
	api.Put("/sites/:site/folders/:folder/theme", folderHandler.UpdateFolderTheme)
	api.Delete("/sites/:site/folders/:folder", folderHandler.DeleteFolder)
	api.Post("/sites/:site/folders/:folder/import", folderHandler.ImportFolder)

	api.Get("/sites/:site/folders/:folder/nodes/:node", nodeHandler.GetNode)
	api.Post("/sites/:site/folders/:folder/nodes", nodeHandler.CreateNode)
	api.Put("/sites/:site/folders/:folder/nodes/:node", nodeHandler.RenameNode)
	api.Delete("/sites/:site/folders/:folder/nodes/:node", nodeHandler.DeleteNode)

	api.Get("/sites/:site/folders/:folder/nodes/:node/properties", nodeHandler.GetProperties)
	api.Get("/sites/:site/folders/:folder/nodes/:node/properties/:property", nodeHandler.GetProperty)
	api.Post("/sites/:site/folders/:folder/nodes/:node/properties", nodeHandler.ReplaceProperties)
	api.Put("/sites/:site/folders/:folder/nodes/:node/properties/:property", nodeHandler.SetProperty)
	api.Delete("/sites/:site/folders/:folder/nodes/:node/properties/:property", nodeHandler.DeleteProperty)

	return app, db
}

// request performs one JSON round trip against the test app.
func request(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	return resp
}

func createSite(t *testing.T, app *fiber.App, name, title string) {
	t.Helper()
	resp := request(t, app, "POST", "/api/sites", fiber.Map{
		"name": name, "title": title, "url": "http://" + name + ".example.com/",
	})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)
}

func TestSiteEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	resp := request(t, app, "POST", "/api/sites", fiber.Map{"title": "Acme Corp"})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)
	var created map[string]interface{}
	helpers.ParseJSON(t, resp, &created)
	if created["name"] != "acme-corp" {
		t.Errorf("Expected derived name acme-corp, got %v", created["name"])
	}

	// A taken name conflicts
	resp = request(t, app, "POST", "/api/sites", fiber.Map{"name": "acme-corp", "title": "Other"})
	helpers.AssertStatus(t, resp, fiber.StatusConflict)

	// A body with neither name nor title is rejected
	resp = request(t, app, "POST", "/api/sites", fiber.Map{"url": "http://example.com/"})
	helpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = request(t, app, "GET", "/api/sites", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var list []map[string]interface{}
	helpers.ParseJSON(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("Expected 1 site, got %d", len(list))
	}

	// The detail view embeds the root folder under its placeholder name
	resp = request(t, app, "GET", "/api/sites/acme-corp", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var detail struct {
		Name    string                   `json:"name"`
		Folders []map[string]interface{} `json:"folders"`
	}
	helpers.ParseJSON(t, resp, &detail)
	if len(detail.Folders) != 1 || detail.Folders[0]["name"] != "_root" {
		t.Errorf("Expected root folder placeholder, got %v", detail.Folders)
	}

	resp = request(t, app, "GET", "/api/sites/nope", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = request(t, app, "PUT", "/api/sites/acme-corp", fiber.Map{"title": "Acme Incorporated"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var updated map[string]interface{}
	helpers.ParseJSON(t, resp, &updated)
	if updated["title"] != "Acme Incorporated" {
		t.Errorf("Expected updated title, got %v", updated["title"])
	}

	resp = request(t, app, "DELETE", "/api/sites/acme-corp", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = request(t, app, "GET", "/api/sites/acme-corp", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestHostnameEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	createSite(t, app, "acme", "Acme")

	resp := request(t, app, "POST", "/api/sites/acme/hostnames", fiber.Map{"name": "acme.example.com"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = request(t, app, "GET", "/api/hostnames/acme.example.com", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var hostname map[string]interface{}
	helpers.ParseJSON(t, resp, &hostname)
	if hostname["website"] != "acme" {
		t.Errorf("Expected website acme, got %v", hostname["website"])
	}

	resp = request(t, app, "GET", "/api/hostnames/unknown.example.com", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestFolderEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	createSite(t, app, "acme", "Acme")

	resp := request(t, app, "POST", "/api/sites/acme/folders", fiber.Map{"name": "blog", "title": "Blog"})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)

	resp = request(t, app, "POST", "/api/sites/acme/folders", fiber.Map{"name": "blog", "title": "Blog"})
	helpers.AssertStatus(t, resp, fiber.StatusConflict)

	// The root folder resolves through its placeholder segment
	resp = request(t, app, "GET", "/api/sites/acme/folders/_root", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var root map[string]interface{}
	helpers.ParseJSON(t, resp, &root)
	if root["name"] != "_root" {
		t.Errorf("Expected _root, got %v", root["name"])
	}

	resp = request(t, app, "PUT", "/api/sites/acme/folders/blog/theme", fiber.Map{"theme": "minimal"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var themed map[string]interface{}
	helpers.ParseJSON(t, resp, &themed)
	if themed["theme"] != "minimal" {
		t.Errorf("Expected theme minimal, got %v", themed["theme"])
	}

	// The root folder cannot be deleted
	resp = request(t, app, "DELETE", "/api/sites/acme/folders/_root", nil)
	helpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = request(t, app, "DELETE", "/api/sites/acme/folders/blog", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = request(t, app, "GET", "/api/sites/acme/folders/blog", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestNodeEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	createSite(t, app, "acme", "Acme")
	resp := request(t, app, "POST", "/api/sites/acme/folders", fiber.Map{"name": "blog", "title": "Blog"})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)

	resp = request(t, app, "POST", "/api/sites/acme/folders/blog/nodes", fiber.Map{
		"type": "post", "title": "First Post",
		"properties": fiber.Map{"summary": "hello"},
	})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)
	var created map[string]interface{}
	helpers.ParseJSON(t, resp, &created)
	uuid, _ := created["uuid"].(string)
	if len(uuid) != 22 {
		t.Errorf("Expected 22-char uuid, got %q", uuid)
	}
	if created["name"] != "first-post" {
		t.Errorf("Expected derived name first-post, got %v", created["name"])
	}

	// A node without a registered type is rejected
	resp = request(t, app, "POST", "/api/sites/acme/folders/blog/nodes", fiber.Map{
		"type": "widget", "title": "Widget",
	})
	helpers.AssertStatus(t, resp, fiber.StatusBadRequest)

	resp = request(t, app, "GET", "/api/sites/acme/folders/blog/nodes/first-post", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var node map[string]interface{}
	helpers.ParseJSON(t, resp, &node)
	route, ok := node["url"].(map[string]interface{})
	if !ok || route["kind"] != "node" || route["folder"] != "blog" {
		t.Errorf("Expected node route request, got %v", node["url"])
	}

	resp = request(t, app, "PUT", "/api/sites/acme/folders/blog/nodes/first-post", fiber.Map{"name": "hello-world"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = request(t, app, "GET", "/api/sites/acme/folders/blog/nodes/first-post", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = request(t, app, "DELETE", "/api/sites/acme/folders/blog/nodes/hello-world", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = request(t, app, "GET", "/api/sites/acme/folders/blog/nodes/hello-world", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)
}

func TestPropertyEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	createSite(t, app, "acme", "Acme")
	resp := request(t, app, "POST", "/api/sites/acme/folders/_root/nodes", fiber.Map{
		"type": "page", "title": "About",
	})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)

	base := "/api/sites/acme/folders/_root/nodes/about/properties"

	resp = request(t, app, "PUT", base+"/color", fiber.Map{"value": "blue"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)

	resp = request(t, app, "GET", base+"/color", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var property map[string]interface{}
	helpers.ParseJSON(t, resp, &property)
	if property["value"] != "blue" {
		t.Errorf("Expected blue, got %v", property["value"])
	}

	resp = request(t, app, "GET", base+"/missing", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)

	// Values coerce to strings on the way in
	resp = request(t, app, "PUT", base+"/count", fiber.Map{"value": 42})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	helpers.ParseJSON(t, resp, &property)
	if property["value"] != "42" {
		t.Errorf("Expected coerced 42, got %v", property["value"])
	}

	// Bulk replace swaps the whole mapping
	resp = request(t, app, "POST", base, fiber.Map{"color": "red", "size": "large"})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var mapping map[string]string
	helpers.ParseJSON(t, resp, &mapping)
	if len(mapping) != 2 || mapping["color"] != "red" || mapping["size"] != "large" {
		t.Errorf("Unexpected mapping after replace: %v", mapping)
	}

	resp = request(t, app, "DELETE", base+"/color", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	resp = request(t, app, "DELETE", base+"/color", nil)
	helpers.AssertStatus(t, resp, fiber.StatusNotFound)

	resp = request(t, app, "GET", base, nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	helpers.ParseJSON(t, resp, &mapping)
	if len(mapping) != 1 || mapping["size"] != "large" {
		t.Errorf("Unexpected final mapping: %v", mapping)
	}
}

func TestExportImportEndpoints(t *testing.T) {
	app, _ := setupApp(t)
	createSite(t, app, "source", "Source")
	createSite(t, app, "target", "Target")

	resp := request(t, app, "POST", "/api/sites/source/folders/_root/nodes", fiber.Map{
		"type": "page", "title": "About",
		"properties": fiber.Map{"summary": "hello"},
	})
	helpers.AssertStatus(t, resp, fiber.StatusCreated)

	resp = request(t, app, "GET", "/api/sites/source/folders/_root/export", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var export struct {
		Website string                   `json:"website"`
		Folder  string                   `json:"folder"`
		Nodes   []map[string]interface{} `json:"nodes"`
	}
	helpers.ParseJSON(t, resp, &export)
	if export.Website != "source" || len(export.Nodes) != 1 {
		t.Fatalf("Unexpected export: website=%q nodes=%d", export.Website, len(export.Nodes))
	}

	resp = request(t, app, "POST", "/api/sites/target/folders/_root/import", fiber.Map{
		"nodes": export.Nodes,
	})
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if result["affectedRows"] != float64(1) {
		t.Errorf("Expected 1 affected row, got %v", result["affectedRows"])
	}

	resp = request(t, app, "GET", "/api/sites/target/folders/_root/nodes/about", nil)
	helpers.AssertStatus(t, resp, fiber.StatusOK)
	var imported map[string]interface{}
	helpers.ParseJSON(t, resp, &imported)
	if imported["uuid"] != export.Nodes[0]["uuid"] {
		t.Errorf("Expected uuid carried over, got %v", imported["uuid"])
	}
}
