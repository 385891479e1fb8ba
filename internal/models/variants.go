package models

import (
	"time"

	"gorm.io/gorm"
)

// The built-in content types. Each keeps its extra columns in a side table
// keyed by the node id and registers itself with an explicit tag and display
// title. Fragments and redirects are not rendered directly.

// Page is a standalone content page.
type Page struct {
	NodeID    uint64 `gorm:"primaryKey"`
	Template  string `gorm:"size:80;not null;default:'page.html'"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Page
func (Page) TableName() string { return "page" }

// SetNodeID binds the row to its node.
func (p *Page) SetNodeID(id uint64) { p.NodeID = id }

// Post is a dated blog entry.
type Post struct {
	NodeID    uint64 `gorm:"primaryKey"`
	Template  string `gorm:"size:80;not null;default:'post.html'"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Post
func (Post) TableName() string { return "post" }

// SetNodeID binds the row to its node.
func (p *Post) SetNodeID(id uint64) { p.NodeID = id }

// Fragment is a reusable block embedded into other content.
type Fragment struct {
	NodeID    uint64 `gorm:"primaryKey"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Fragment
func (Fragment) TableName() string { return "fragment" }

// SetNodeID binds the row to its node.
func (f *Fragment) SetNodeID(id uint64) { f.NodeID = id }

// Redirect sends visitors to another location. The target may be an external
// URL or the uuid of another node; uuid targets resolve to that node's name
// once a whole import batch is present.
type Redirect struct {
	NodeID    uint64 `gorm:"primaryKey"`
	Target    string `gorm:"size:250;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Redirect
func (Redirect) TableName() string { return "redirect" }

// SetNodeID binds the row to its node.
func (r *Redirect) SetNodeID(id uint64) { r.NodeID = id }

// redirectImportInternal resolves a "target_uuid" reference from an import
// record to the named target node. It runs after the batch so the target
// exists regardless of import order.
func redirectImportInternal(db *gorm.DB, n *Node, data map[string]interface{}) error {
	targetUUID, ok := data["target_uuid"].(string)
	if !ok || targetUUID == "" {
		return nil
	}
	var target Node
	if err := db.Where("uuid = ?", targetUUID).First(&target).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return db.Model(&Redirect{}).Where("node_id = ?", n.ID).
		Update("target", target.Name).Error
}

func init() {
	RegisterType(VariantRecord{Tag: "page", Title: "Page", Render: true,
		New: func() Variant { return &Page{} }})
	RegisterType(VariantRecord{Tag: "post", Title: "Post", Render: true,
		New: func() Variant { return &Post{} }})
	RegisterType(VariantRecord{Tag: "fragment", Title: "Fragment", Render: false,
		New: func() Variant { return &Fragment{} }})
	RegisterType(VariantRecord{Tag: "redirect", Title: "Redirect", Render: false,
		New: func() Variant { return &Redirect{} },
		ImportInternal: redirectImportInternal})
}
