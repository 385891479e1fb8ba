// e2e_test.go
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

package e2e_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/framekit/sitedb/internal/config"
	"github.com/framekit/sitedb/internal/database"
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	sitedbHost, _ := tc.SiteDBContainer.Host(ctx)
	sitedbPort, _ := tc.SiteDBContainer.MappedPort(ctx, nat.Port(os.Getenv("PORT")))
	baseURL := fmt.Sprintf("http://%s:%s", sitedbHost, sitedbPort.Port())

	authzHost, _ := tc.AuthorizerContainer.Host(ctx)
	authzPort, _ := tc.AuthorizerContainer.MappedPort(ctx, nat.Port(os.Getenv("AUTHZ_PORT")))
	authzURL := fmt.Sprintf("http://%s:%s", authzHost, authzPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, tc, authzURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("PublicAPIAccess", func(t *testing.T) {
		testPublicAPIAccess(t, baseURL)
	})

	t.Run("MutationRequiresSession", func(t *testing.T) {
		testMutationRequiresSession(t, baseURL)
	})

	t.Run("AdminContentFlow", func(t *testing.T) {
		testAdminContentFlow(t, baseURL, authzURL)
	})
}

func testHealthCheck(t *testing.T, tc *helpers.TestContainers, authzURL string) {
	ctx := context.Background()

	// Point the config at the mapped ports on localhost, not the internal
	// container names
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	dbHost, _ := tc.DBContainer.Host(ctx)
	dbPort, _ := tc.DBContainer.MappedPort(ctx, nat.Port(os.Getenv("DB_PORT")))
	cfg.DBHost = dbHost
	cfg.DBPort = dbPort.Port()
	cfg.AuthzURL = authzURL

	gormDB, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer database.Close(gormDB)

	result := services.HealthCheck(cfg, gormDB)
	if result.Status != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}

	t.Logf("Health check passed: status=%s, database=%s, authorizer=%s",
		result.Status, result.Database, result.Authorizer)
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

func testPublicAPIAccess(t *testing.T, baseURL string) {
	// The site list is public and empty on a fresh database
	resp, err := http.Get(baseURL + "/api/sites")
	if err != nil {
		t.Fatalf("Failed to access public API: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusOK)
	var sites []map[string]interface{}
	helpers.ParseJSON(t, resp, &sites)
	if len(sites) != 0 {
		t.Errorf("Expected no sites, got %d", len(sites))
	}

	// A missing site returns proper JSON, not a bare error
	resp, err = http.Get(baseURL + "/api/sites/nope")
	if err != nil {
		t.Fatalf("Failed to access public API: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusNotFound)
	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
}

func testMutationRequiresSession(t *testing.T, baseURL string) {
	resp, err := http.Post(baseURL+"/api/sites", "application/json",
		bytes.NewReader([]byte(`{"name":"intruder","title":"Intruder"}`)))
	if err != nil {
		t.Fatalf("Failed to post: %v", err)
	}
	helpers.AssertStatus(t, resp, http.StatusForbidden)
	resp.Body.Close()
}

func testAdminContentFlow(t *testing.T, baseURL, authzURL string) {
	password := helpers.GeneratePassword()
	session := helpers.AcquireAccount(t, authzURL, "admin-e2e@example.com", password, []string{"admin"})

	client := &http.Client{}
	doJSON := func(method, path string, body []byte) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
		if err != nil {
			t.Fatalf("Failed to build request: %v", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.AddCookie(&http.Cookie{Name: "cookie_session", Value: session})
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Request %s %s failed: %v", method, path, err)
		}
		return resp
	}

	resp := doJSON("POST", "/api/sites", []byte(`{"name":"acme","title":"Acme","url":"http://acme.example.com/"}`))
	helpers.AssertStatus(t, resp, http.StatusCreated)
	var site map[string]interface{}
	helpers.ParseJSON(t, resp, &site)
	if site["name"] != "acme" {
		t.Errorf("Expected site acme, got %v", site["name"])
	}

	resp = doJSON("POST", "/api/sites/acme/folders/_root/nodes",
		[]byte(`{"type":"page","title":"Welcome","properties":{"summary":"hello"}}`))
	helpers.AssertStatus(t, resp, http.StatusCreated)
	var node map[string]interface{}
	helpers.ParseJSON(t, resp, &node)
	if uuid, _ := node["uuid"].(string); len(uuid) != 22 {
		t.Errorf("Expected 22-char uuid, got %v", node["uuid"])
	}

	// The created content is publicly readable
	getResp, err := http.Get(baseURL + "/api/sites/acme/folders/_root/nodes/welcome")
	if err != nil {
		t.Fatalf("Failed to get node: %v", err)
	}
	helpers.AssertStatus(t, getResp, http.StatusOK)
	var fetched map[string]interface{}
	helpers.ParseJSON(t, getResp, &fetched)
	if props, ok := fetched["properties"].(map[string]interface{}); !ok || props["summary"] != "hello" {
		t.Errorf("Expected summary property, got %v", fetched["properties"])
	}
	// Ownership comes from the session that made the mutation
	if userid, _ := fetched["userid"].(string); userid == "" {
		t.Error("Expected the node to carry its owner's external id")
	}
}
