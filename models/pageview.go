package models

import (
	"time"

	"gorm.io/gorm"
)

// PageView stores one row per recorded page view. Rows are append-only and
// never read back individually; they are only counted in aggregate.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Page      string    `gorm:"size:255;not null;default:'/'" json:"page"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate defaults the page to the root path when the caller omits it.
func (p *PageView) BeforeCreate(tx *gorm.DB) error {
	if p.Page == "" {
		p.Page = "/"
	}
	return nil
}
