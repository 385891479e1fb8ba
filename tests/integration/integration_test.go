package integration_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/framekit/sitedb/internal/config"
	"github.com/framekit/sitedb/internal/database"
	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:               "mysql",
		DBHost:               host,
		DBPort:               port.Port(),
		DBAppDatabase:        "testdb",
		DBAppUser:            "testuser",
		DBAppPassword:        "testpass",
		DBAppConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runContentTests(t, db)
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:               "postgres",
		DBHost:               host,
		DBPort:               port.Port(),
		DBAppDatabase:        "testdb",
		DBAppUser:            "testuser",
		DBAppPassword:        "testpass",
		DBAppConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	runContentTests(t, db)
}

func runContentTests(t *testing.T, db *gorm.DB) {
	t.Run("WebsiteRootFolder", func(t *testing.T) {
		testWebsiteRootFolder(t, db)
	})

	t.Run("NodeLifecycle", func(t *testing.T) {
		testNodeLifecycle(t, db)
	})

	t.Run("ExportImportRoundTrip", func(t *testing.T) {
		testExportImportRoundTrip(t, db)
	})
}

// testWebsiteRootFolder tests that a website always carries its root folder
func testWebsiteRootFolder(t *testing.T, db *gorm.DB) {
	site := helpers.CreateTestSite(t, db, "Integration Site", "http://example.com/")

	root := helpers.RootFolder(t, db, site)
	if !root.IsRoot() {
		t.Errorf("Expected root folder, got name %q", root.Name)
	}

	// A second website with the same derived name must conflict
	_, err := services.CreateWebsite(db, services.CreateWebsiteInput{
		Name: site.Name, Title: "Other",
	})
	if !models.IsUniqueness(err) {
		t.Errorf("Expected uniqueness error, got: %v", err)
	}
}

// testNodeLifecycle tests node create, properties and delete across tables
func testNodeLifecycle(t *testing.T, db *gorm.DB) {
	user := helpers.CreateTestUser(t, db, "11111111-2222-3333-4444-555555555555", "int@example.com")
	site := helpers.CreateTestSite(t, db, "Lifecycle Site", "http://example.com/")
	folder := helpers.CreateTestFolder(t, db, site, "Blog")

	node := helpers.CreateTestNode(t, db, folder, user, "post", "First Post", map[string]interface{}{
		"summary": "hello",
	})
	if len(node.UUID) != 22 {
		t.Errorf("Expected 22-char uuid, got %q", node.UUID)
	}

	// Reload and check the property row survived
	reloaded, err := services.GetNode(db, folder, node.Name)
	if err != nil {
		t.Fatalf("Failed to reload node: %v", err)
	}
	store, err := reloaded.Properties(db)
	if err != nil {
		t.Fatalf("Failed to load properties: %v", err)
	}
	if v, ok := store.Get("summary"); !ok || v != "hello" {
		t.Errorf("Expected summary=hello, got %q (%v)", v, ok)
	}

	// Delete removes node, property and variant rows
	if err := services.DeleteNode(db, reloaded); err != nil {
		t.Fatalf("Failed to delete node: %v", err)
	}
	if _, err := services.GetNode(db, folder, node.Name); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}
	var count int64
	db.Model(&models.Property{}).Where("node_id = ?", node.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no property rows after delete, got %d", count)
	}
}

// testExportImportRoundTrip tests export and re-import into another website
func testExportImportRoundTrip(t *testing.T, db *gorm.DB) {
	user := helpers.CreateTestUser(t, db, "66666666-7777-8888-9999-000000000000", "rt@example.com")
	source := helpers.CreateTestSite(t, db, "Round Trip Source", "http://source.example.com/")
	folder := helpers.CreateTestFolder(t, db, source, "Content")
	helpers.CreateTestNode(t, db, folder, user, "page", "About", map[string]interface{}{
		"headline": "About us",
	})

	export, err := services.ExportFolder(db, folder)
	if err != nil {
		t.Fatalf("Failed to export folder: %v", err)
	}
	records := export["nodes"].([]map[string]interface{})
	if len(records) != 1 {
		t.Fatalf("Expected 1 exported record, got %d", len(records))
	}

	target := helpers.CreateTestSite(t, db, "Round Trip Target", "http://target.example.com/")
	targetFolder := helpers.CreateTestFolder(t, db, target, "Content")

	imported, err := services.ImportNodes(db, targetFolder, records, user.ID)
	if err != nil {
		t.Fatalf("Failed to import nodes: %v", err)
	}
	if imported != 1 {
		t.Errorf("Expected 1 imported node, got %d", imported)
	}

	node, err := services.GetNode(db, targetFolder, "about")
	if err != nil {
		t.Fatalf("Failed to load imported node: %v", err)
	}
	if node.UUID != records[0]["uuid"] {
		t.Errorf("Expected uuid %v to survive import, got %q", records[0]["uuid"], node.UUID)
	}
}

// TestHealthCheck tests the health check functionality
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:        "mysql",
		DBHost:        host,
		DBPort:        port.Port(),
		DBAppDatabase: "testdb",
		DBAppUser:     "testuser",
		DBAppPassword: "testpass",
		AuthzURL:      "http://localhost:9999", // Non-existent service
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run health check
	result := services.HealthCheck(cfg, db)

	// Database should be healthy
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}

	// Authorizer should be unreachable
	if result.Authorizer != "unreachable" {
		t.Errorf("Expected authorizer to be unreachable, got: %s", result.Authorizer)
	}

	// Overall status should be unhealthy
	if result.Status != "unhealthy" {
		t.Errorf("Expected status to be unhealthy, got: %s", result.Status)
	}
}
