package models

import (
	"net/url"
	"time"
)

// Folder groups nodes under a website. Names are unique per website; the
// folder with the empty name is the website's root. A folder strictly owns
// its nodes: deleting the folder deletes them.
type Folder struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:250;not null;uniqueIndex:idx_folder_website_name,priority:2"`
	WebsiteID uint64 `gorm:"not null;uniqueIndex:idx_folder_website_name,priority:1"`
	Title     string `gorm:"size:250;not null"`
	// Local theme override. Empty means inherit the website's theme; read it
	// through Theme(), never directly.
	ThemeOverride string `gorm:"column:theme;size:80;not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Website *Website `gorm:"foreignKey:WebsiteID"`
	Nodes   []Node   `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Folder
func (Folder) TableName() string {
	return "folder"
}

// Parent returns the owning website. It is a read-only view of the true
// owning foreign key, not a separate relationship.
func (f *Folder) Parent() *Website {
	return f.Website
}

// IsRoot reports whether this is the website's root folder.
func (f *Folder) IsRoot() bool {
	return f.Name == ""
}

// Theme returns the folder's own override when set, else the owning
// website's theme. Requires Website to be loaded for the fallback.
func (f *Folder) Theme() string {
	if f.ThemeOverride != "" {
		return f.ThemeOverride
	}
	if f.Website != nil {
		return f.Website.Theme
	}
	return ""
}

// SetTheme writes the folder-local override column. It never touches the
// website's theme; setting the empty string restores inheritance.
func (f *Folder) SetTheme(theme string) {
	f.ThemeOverride = theme
}

// ViewURL joins the owning website's base URL with the folder's name using
// standard base/relative join semantics: a folder name that is itself an
// absolute URL replaces the base entirely, and the root folder's empty name
// resolves to the base. Requires Website to be loaded.
func (f *Folder) ViewURL() (string, error) {
	base := ""
	if f.Website != nil {
		base = f.Website.URL
	}
	bu, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(f.Name)
	if err != nil {
		return "", err
	}
	return bu.ResolveReference(ref).String(), nil
}
