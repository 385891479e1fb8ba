package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/framekit/sitedb/internal/models"
	"github.com/framekit/sitedb/internal/names"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedNode(t *testing.T, db *gorm.DB) *models.Node {
	t.Helper()
	user := models.User{UserID: "00000000-0000-0000-0000-000000000001"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	site := models.Website{Name: "test-site", Title: "Test Site"}
	if err := db.Create(&site).Error; err != nil {
		t.Fatalf("Failed to create website: %v", err)
	}
	folder := models.Folder{Name: "", WebsiteID: site.ID}
	if err := db.Create(&folder).Error; err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	node := models.Node{
		UUID:        names.NewID(),
		Name:        "test-node",
		Title:       "Test Node",
		FolderID:    folder.ID,
		UserID:      user.ID,
		Type:        "page",
		PublishedAt: time.Now().UTC(),
	}
	if err := db.Create(&node).Error; err != nil {
		t.Fatalf("Failed to create node: %v", err)
	}
	node.Folder = &folder
	node.User = &user
	return &node
}

func TestPropertySetCreatesOneRow(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, err := node.Properties(db)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	if err := store.Set(db, "color", "blue"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var count int64
	db.Model(&models.Property{}).Where("node_id = ? AND name = ?", node.ID, "color").Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 row, got %d", count)
	}
	if v, ok := store.Get("color"); !ok || v != "blue" {
		t.Errorf("Expected blue in cache, got %q (%v)", v, ok)
	}
}

func TestPropertySetUpdatesInPlace(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	if err := store.Set(db, "color", "blue"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var before models.Property
	db.Where("node_id = ? AND name = ?", node.ID, "color").First(&before)

	if err := store.Set(db, "color", "red"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var after models.Property
	db.Where("node_id = ? AND name = ?", node.ID, "color").First(&after)

	if after.ID != before.ID {
		t.Errorf("Expected row identity preserved, %d != %d", after.ID, before.ID)
	}
	if after.Value != "red" {
		t.Errorf("Expected red, got %q", after.Value)
	}
	var count int64
	db.Model(&models.Property{}).Where("node_id = ?", node.ID).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single row, got %d", count)
	}
}

func TestPropertyPop(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	store.Set(db, "color", "blue")

	v, err := store.Pop(db, "color")
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if v != "blue" {
		t.Errorf("Expected blue, got %q", v)
	}

	// Key is gone from cache and rows
	if _, ok := store.Get("color"); ok {
		t.Error("Expected color gone from cache")
	}
	var count int64
	db.Model(&models.Property{}).Where("node_id = ?", node.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected no rows, got %d", count)
	}

	// A second pop reports the missing key
	if _, err := store.Pop(db, "color"); !errors.Is(err, models.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestPropertyDeleteMissingKey(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	if err := store.Delete(db, "nope"); !errors.Is(err, models.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestPropertyPopDefault(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	v, err := store.PopDefault(db, "missing", "fallback")
	if err != nil {
		t.Fatalf("PopDefault failed: %v", err)
	}
	if v != "fallback" {
		t.Errorf("Expected fallback, got %q", v)
	}
}

func TestPropertyReplace(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	store.Set(db, "keep", "old")
	store.Set(db, "drop", "gone")

	var keepBefore models.Property
	db.Where("node_id = ? AND name = ?", node.ID, "keep").First(&keepBefore)

	err := store.Replace(db, map[string]interface{}{
		"keep": "new",
		"add":  42,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if got := store.Map(); len(got) != 2 || got["keep"] != "new" || got["add"] != "42" {
		t.Errorf("Unexpected mapping after replace: %v", got)
	}

	// The surviving key kept its row identity
	var keepAfter models.Property
	db.Where("node_id = ? AND name = ?", node.ID, "keep").First(&keepAfter)
	if keepAfter.ID != keepBefore.ID {
		t.Errorf("Expected row identity preserved for kept key, %d != %d", keepAfter.ID, keepBefore.ID)
	}

	// The dropped key's row is gone
	var count int64
	db.Model(&models.Property{}).Where("node_id = ? AND name = ?", node.ID, "drop").Count(&count)
	if count != 0 {
		t.Error("Expected dropped key's row deleted")
	}
}

func TestPropertyReplaceRejectsNonMapping(t *testing.T) {
	db := openTestDB(t)
	node := seedNode(t, db)

	store, _ := node.Properties(db)
	store.Set(db, "keep", "old")

	for _, bad := range []interface{}{"a string", 42, []string{"a"}, nil} {
		if err := store.Replace(db, bad); !errors.Is(err, models.ErrInvalidArgument) {
			t.Errorf("Replace(%T) expected ErrInvalidArgument, got: %v", bad, err)
		}
	}

	// The store is untouched by the rejected replaces
	if v, ok := store.Get("keep"); !ok || v != "old" {
		t.Errorf("Expected keep=old to survive, got %q (%v)", v, ok)
	}
}

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{"plain", "plain"},
		{true, "true"},
		{false, "false"},
		{float64(42), "42"},
		{float64(1.5), "1.5"},
		{int(7), "7"},
	}
	for _, c := range cases {
		if got := models.CoerceValue(c.in); got != c.want {
			t.Errorf("CoerceValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
