package models

import (
	"sort"
	"sync"

	"gorm.io/gorm"
)

// Variant is the side record a concrete content type keeps for a node,
// keyed by the node's primary key.
type Variant interface {
	// SetNodeID binds the variant row to its node before persisting.
	SetNodeID(id uint64)
}

// ImportInternalFunc resolves a variant's references to other nodes after a
// whole batch has been imported. Nil when a variant keeps none.
type ImportInternalFunc func(db *gorm.DB, n *Node, data map[string]interface{}) error

// VariantRecord is a registered content type. Each concrete type supplies
// its tag and display title explicitly at registration; nothing is derived
// from type metadata.
type VariantRecord struct {
	// Tag is the polymorphic identity stored in Node.Type.
	Tag string
	// Title is the human display name for the type.
	Title string
	// Render reports whether nodes of this type are rendered directly.
	Render bool
	// New creates an empty variant row.
	New func() Variant
	// ImportInternal is the post-batch import hook, may be nil.
	ImportInternal ImportInternalFunc
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]VariantRecord)
)

// RegisterType adds a content type to the registry. Called from package
// init; a duplicate tag panics.
func RegisterType(rec VariantRecord) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[rec.Tag]; exists {
		panic("models: duplicate node type tag " + rec.Tag)
	}
	registry[rec.Tag] = rec
}

// LookupType returns the registered record for a type tag.
func LookupType(tag string) (VariantRecord, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	rec, ok := registry[tag]
	return rec, ok
}

// TypeTags returns the registered tags in sorted order.
func TypeTags() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// VariantModels returns one empty variant per registered type, in tag
// order, for schema migration.
func VariantModels() []interface{} {
	registryMu.RLock()
	defer registryMu.RUnlock()
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	out := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		out = append(out, registry[tag].New())
	}
	return out
}
