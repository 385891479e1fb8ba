package models

import "time"

// Website is the top-level scope of the content tree. It strictly owns its
// hostnames and folders: deleting a website deletes both sets.
//
// Invariant: every website has exactly one folder with the empty name (the
// root folder), created in the same transaction as the website itself. See
// services.CreateWebsite.
type Website struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:250;uniqueIndex;not null"`
	Title string `gorm:"size:250;not null"`
	// URL the website is served at, base for folder view URLs
	URL string `gorm:"size:80;not null;default:''"`
	// Theme used as the default for all folders (folders can override)
	Theme string `gorm:"size:80;not null;default:'default'"`
	// Typekit code, if used
	TypekitCode string `gorm:"size:20;not null;default:''"`
	// Google Analytics code, if used
	GoogleAnalyticsCode string `gorm:"size:20;not null;default:''"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Hostnames []Hostname `gorm:"foreignKey:WebsiteID;constraint:OnDelete:CASCADE"`
	Folders   []Folder   `gorm:"foreignKey:WebsiteID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Website
func (Website) TableName() string {
	return "website"
}

// Hostname maps a host[:port] string to a website. The name is globally
// unique; the website reference is nullable so a hostname can exist as an
// unattached lookup key before assignment.
type Hostname struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"size:80;uniqueIndex;not null"`
	WebsiteID *uint64 `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Website *Website `gorm:"foreignKey:WebsiteID"`
}

// TableName overrides the table name for Hostname
func (Hostname) TableName() string {
	return "hostname"
}
