// Package services holds the application-level operations between the HTTP
// boundary and the record store.
package services

import (
	"context"

	"gorm.io/gorm"

	"monumentwatch/models"
	"monumentwatch/validation"
)

const (
	// DefaultSightingLimit applies when the caller does not specify one.
	DefaultSightingLimit = 50
	// MaxSightingLimit bounds a single listing to keep responses small.
	MaxSightingLimit = 200
)

// Stats is the derived aggregate of page views and sighting reports. It is
// computed fresh on every request, never cached.
type Stats struct {
	TotalViews     int64 `json:"totalViews"`
	TotalSightings int64 `json:"totalSightings"`
}

// ReportService implements sighting-report and page-view operations over the
// record store. It holds no state beyond the database handle; every read
// re-queries the store.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a ReportService backed by db.
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// CreateSighting inserts one sighting report and returns the fully populated
// record, with id and timestamp assigned by the store. Identical payloads
// always create distinct rows; there is no deduplication.
func (s *ReportService) CreateSighting(ctx context.Context, payload validation.InsertSighting) (models.Sighting, error) {
	sighting := models.Sighting{
		WitnessName:  payload.WitnessName,
		Location:     payload.Location,
		MonumentSeen: payload.MonumentSeen,
		Description:  payload.Description,
		Coordinates:  payload.Coordinates,
	}
	if err := s.db.WithContext(ctx).Create(&sighting).Error; err != nil {
		return models.Sighting{}, err
	}
	return sighting, nil
}

// ListSightings returns up to limit sightings, newest first. A non-positive
// limit falls back to DefaultSightingLimit. The id tiebreak keeps the order
// of same-timestamp rows deterministic within a call.
func (s *ReportService) ListSightings(ctx context.Context, limit int) ([]models.Sighting, error) {
	if limit <= 0 {
		limit = DefaultSightingLimit
	}
	if limit > MaxSightingLimit {
		limit = MaxSightingLimit
	}

	sightings := make([]models.Sighting, 0, limit)
	err := s.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&sightings).Error
	if err != nil {
		return nil, err
	}
	return sightings, nil
}

// RecordPageView appends one page-view event. An empty page defaults to "/".
// Fire-and-forget: the caller only learns success or failure.
func (s *ReportService) RecordPageView(ctx context.Context, page string) error {
	return s.db.WithContext(ctx).Create(&models.PageView{Page: page}).Error
}

// GetStats counts both tables at call time.
func (s *ReportService) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := s.db.WithContext(ctx).Model(&models.PageView{}).Count(&stats.TotalViews).Error; err != nil {
		return Stats{}, err
	}
	if err := s.db.WithContext(ctx).Model(&models.Sighting{}).Count(&stats.TotalSightings).Error; err != nil {
		return Stats{}, err
	}
	return stats, nil
}
