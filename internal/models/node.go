package models

import (
	"time"

	"github.com/framekit/sitedb/internal/utils"
	"gorm.io/gorm"
)

// Node is the shared base record for every content item. Concrete variants
// (page, post, fragment, redirect) dispatch on the Type tag and keep their
// extra columns in side tables keyed by the node id; identity, naming,
// timing, ownership and the property bag all live here.
type Node struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	// Id of the node across environments (staging, production, etc) for
	// import/export. Independent of the database primary key.
	UUID     string `gorm:"type:char(22);uniqueIndex;not null"`
	Name     string `gorm:"size:250;not null;uniqueIndex:idx_node_folder_name,priority:2"`
	FolderID uint64 `gorm:"not null;uniqueIndex:idx_node_folder_name,priority:1"`
	Title    string `gorm:"size:250;not null"`
	// User who made this node
	UserID uint64 `gorm:"not null"`
	// Publication date, defaults to creation time
	PublishedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Type tag for polymorphic identity, set at creation from the variant
	// registry and never chosen by name elsewhere
	Type string `gorm:"size:20"`

	Folder         *Folder    `gorm:"foreignKey:FolderID"`
	User           *User      `gorm:"foreignKey:UserID"`
	NodeProperties []Property `gorm:"foreignKey:NodeID;constraint:OnDelete:CASCADE"`

	// Per-instance property cache, built on first access. Not shared across
	// concurrently loaded instances of the same node.
	store *PropertyStore `gorm:"-"`
}

// TableName overrides the table name for Node
func (Node) TableName() string {
	return "node"
}

// Parent returns the owning folder. It is a read-only view of the true
// owning foreign key, not a separate relationship.
func (n *Node) Parent() *Folder {
	return n.Folder
}

// RouteKind selects which external route a node resolves to.
type RouteKind string

const (
	// RouteFolder is the folder-style route, keyed by a single name segment.
	RouteFolder RouteKind = "folder"
	// RouteNode is the node-style route, keyed by (folder name, node name).
	RouteNode RouteKind = "node"
)

// RouteRequest asks the external routing collaborator for a URL. The core
// only decides the route kind and keys; resolution happens outside.
type RouteRequest struct {
	Kind   RouteKind `json:"kind"`
	Folder string    `json:"folder"`
	Node   string    `json:"node,omitempty"`
}

// RouteResolver is the routing collaborator consumed by callers that need a
// concrete URL for a node.
type RouteResolver interface {
	Resolve(req RouteRequest) (string, error)
}

// URL returns the route request for this node: a folder-style route keyed by
// the node's name when the owning folder is the website root, a node-style
// route keyed by (folder, node) otherwise. Requires Folder to be loaded.
func (n *Node) URL() RouteRequest {
	if n.Folder != nil && n.Folder.IsRoot() {
		return RouteRequest{Kind: RouteFolder, Folder: n.Name}
	}
	folderName := ""
	if n.Folder != nil {
		folderName = n.Folder.Name
	}
	return RouteRequest{Kind: RouteNode, Folder: folderName, Node: n.Name}
}

// AsJSON serializes the node's portable surface: identity, naming, timing,
// owner and the full property mapping. Timestamps are ISO-8601 UTC with a
// trailing 'Z'. Pure aside from lazily loading the property rows.
func (n *Node) AsJSON(db *gorm.DB) (map[string]interface{}, error) {
	store, err := n.Properties(db)
	if err != nil {
		return nil, err
	}
	userid := ""
	if n.User != nil {
		userid = n.User.UserID
	}
	return map[string]interface{}{
		"uuid":         n.UUID,
		"name":         n.Name,
		"title":        n.Title,
		"created_at":   utils.FormatISO(n.CreatedAt),
		"updated_at":   utils.FormatISO(n.UpdatedAt),
		"published_at": utils.FormatISO(n.PublishedAt),
		"userid":       userid,
		"type":         n.Type,
		"properties":   store.Map(),
	}, nil
}

// ImportFrom overwrites uuid, name, title, published_at and properties from
// an external record produced by AsJSON. Ownership and the local timestamps
// are left untouched. The caller persists the node after this returns; the
// property replace itself is transactional.
func (n *Node) ImportFrom(db *gorm.DB, data map[string]interface{}) error {
	if v, ok := data["uuid"].(string); ok && v != "" {
		n.UUID = v
	}
	if v, ok := data["name"].(string); ok {
		n.Name = v
	}
	if v, ok := data["title"].(string); ok {
		n.Title = v
	}
	if v, ok := data["published_at"].(string); ok && v != "" {
		t, err := utils.ParseISO(v)
		if err != nil {
			return err
		}
		n.PublishedAt = t
	}
	props, ok := data["properties"]
	if !ok {
		return nil
	}
	store, err := n.Properties(db)
	if err != nil {
		return err
	}
	return store.Replace(db, props)
}

// ImportFromInternal is the extension point for variants that keep internal
// references to other nodes. It runs after every node of a batch has been
// imported, when those references can resolve. Dispatches through the
// variant registry; types without a hook do nothing.
func (n *Node) ImportFromInternal(db *gorm.DB, data map[string]interface{}) error {
	rec, ok := LookupType(n.Type)
	if !ok || rec.ImportInternal == nil {
		return nil
	}
	return rec.ImportInternal(db, n, data)
}
