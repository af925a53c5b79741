package models

import (
	"time"

	"gorm.io/gorm"
)

// Sighting represents a visitor-submitted report of a stolen monument.
// ID and Timestamp are assigned by the store layer on insert and are never
// accepted from the API boundary. Sightings are append-only: there are no
// update or delete operations.
type Sighting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WitnessName  string    `gorm:"size:255;not null" json:"witnessName"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	MonumentSeen string    `gorm:"size:255;not null" json:"monumentSeen"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Coordinates  *string   `gorm:"size:255" json:"coordinates"`
	Timestamp    time.Time `gorm:"index;not null" json:"timestamp"`
}

// BeforeCreate hook assigns the creation timestamp when not already set.
func (s *Sighting) BeforeCreate(tx *gorm.DB) error {
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	return nil
}
