// property.go
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

package models

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Property is a single named string attribute of a node, persisted as its
// own row. (name, node_id) is unique: a node cannot carry two properties
// with the same name.
type Property struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	NodeID    uint64 `gorm:"not null;uniqueIndex:idx_property_node_name,priority:1"`
	Name      string `gorm:"size:40;not null;uniqueIndex:idx_property_node_name,priority:2"`
	Value     string `gorm:"size:250;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "property"
}

// PropertyStore is the mapping view over a node's property rows. It keeps an
// in-memory cache in sync with the persisted relation: reads come from the
// cache, every mutation is mirrored into the rows through a single
// apply-and-persist routine, and rows become durable when the enclosing
// transaction commits.
//
// A store belongs to one loaded node instance. Concurrent writers must each
// load their own instance; row-level database isolation arbitrates
// conflicting writes to the same property.
type PropertyStore struct {
	node  *Node
	cache map[string]string
}

// Properties returns the node's property store, building the cache from the
// persisted rows on first access per node instance.
func (n *Node) Properties(db *gorm.DB) (*PropertyStore, error) {
	if n.store != nil {
		return n.store, nil
	}
	if n.NodeProperties == nil && n.ID != 0 {
		var rows []Property
		if err := db.Where("node_id = ?", n.ID).Order("name").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load properties for node %d: %w", n.ID, err)
		}
		n.NodeProperties = rows
	}
	cache := make(map[string]string, len(n.NodeProperties))
	for _, row := range n.NodeProperties {
		cache[row.Name] = row.Value
	}
	n.store = &PropertyStore{node: n, cache: cache}
	return n.store, nil
}

// Get returns the cached value for key.
func (s *PropertyStore) Get(key string) (string, bool) {
	v, ok := s.cache[key]
	return v, ok
}

// Len returns the number of properties.
func (s *PropertyStore) Len() int {
	return len(s.cache)
}

// Keys returns the property names in sorted order.
func (s *PropertyStore) Keys() []string {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the full key/value mapping.
func (s *PropertyStore) Map() map[string]string {
	m := make(map[string]string, len(s.cache))
	for k, v := range s.cache {
		m[k] = v
	}
	return m
}

// Set writes one property. The value is coerced to text. An existing row for
// the key is updated in place, preserving its identity; otherwise a new row
// is created and attached to the node. The cache reflects the write
// immediately, the row when db commits.
func (s *PropertyStore) Set(db *gorm.DB, key string, value interface{}) error {
	return s.apply(db, key, CoerceValue(value))
}

// apply is the single mirroring routine every mutation funnels through. It
// upserts the row and the cache entry together so the mapping invariant
// holds for all entry points.
func (s *PropertyStore) apply(db *gorm.DB, key, value string) error {
	for i := range s.node.NodeProperties {
		row := &s.node.NodeProperties[i]
		if row.Name != key {
			continue
		}
		if row.Value != value {
			if err := db.Model(row).Update("value", value).Error; err != nil {
				return fmt.Errorf("failed to update property %q: %w", key, err)
			}
			row.Value = value
		}
		s.cache[key] = value
		return nil
	}
	row := Property{NodeID: s.node.ID, Name: key, Value: value}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create property %q: %w", key, err)
	}
	s.node.NodeProperties = append(s.node.NodeProperties, row)
	s.cache[key] = value
	return nil
}

// Delete removes the cached entry and the underlying row. Returns
// ErrKeyNotFound if the key is absent.
func (s *PropertyStore) Delete(db *gorm.DB, key string) error {
	_, err := s.Pop(db, key)
	return err
}

// Pop removes the property and returns its value, or ErrKeyNotFound if the
// key is absent.
func (s *PropertyStore) Pop(db *gorm.DB, key string) (string, error) {
	if _, ok := s.cache[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return s.remove(db, key)
}

// PopDefault removes the property and returns its value, or def when the key
// is absent.
func (s *PropertyStore) PopDefault(db *gorm.DB, key, def string) (string, error) {
	if _, ok := s.cache[key]; !ok {
		return def, nil
	}
	return s.remove(db, key)
}

func (s *PropertyStore) remove(db *gorm.DB, key string) (string, error) {
	value := s.cache[key]
	for i := range s.node.NodeProperties {
		if s.node.NodeProperties[i].Name != key {
			continue
		}
		if err := db.Delete(&s.node.NodeProperties[i]).Error; err != nil {
			return "", fmt.Errorf("failed to delete property %q: %w", key, err)
		}
		s.node.NodeProperties = append(s.node.NodeProperties[:i], s.node.NodeProperties[i+1:]...)
		break
	}
	delete(s.cache, key)
	return value, nil
}

// Replace swaps the whole mapping. Rows whose key is absent from the new
// mapping are deleted; the rest are created or updated in place exactly as
// Set does. Returns ErrInvalidArgument unless value is a string-keyed
// mapping. The operation runs in its own transaction (a savepoint when db is
// already transactional) so the caller observes either the full new mapping
// or the store unmodified.
func (s *PropertyStore) Replace(db *gorm.DB, value interface{}) error {
	mapping, err := CoerceMapping(value)
	if err != nil {
		return err
	}
	// Snapshot so a rolled-back transaction leaves the in-memory view
	// unmodified too, not just the rows.
	savedCache := s.Map()
	savedRows := make([]Property, len(s.node.NodeProperties))
	copy(savedRows, s.node.NodeProperties)
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, key := range s.Keys() {
			if _, keep := mapping[key]; !keep {
				if _, err := s.remove(tx, key); err != nil {
					return err
				}
			}
		}
		for key, val := range mapping {
			if err := s.apply(tx, key, val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.cache = savedCache
		s.node.NodeProperties = savedRows
		return err
	}
	return nil
}

// CoerceValue renders a property value as text, the way the value column
// stores it. Strings pass through; everything else is formatted.
func CoerceValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// JSON numbers decode as float64; render integral ones without the
		// trailing ".0" so round trips stay stable
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// CoerceMapping validates a bulk-replace argument: it must be a string-keyed
// mapping. Values are coerced to text per CoerceValue.
func CoerceMapping(value interface{}) (map[string]string, error) {
	switch m := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = CoerceValue(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: properties must be a string-keyed mapping, got %T", ErrInvalidArgument, value)
	}
}
