package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"monumentwatch/models"
	"monumentwatch/validation"
)

func newTestService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Sighting{}, &models.PageView{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewReportService(db), db
}

func insertPayload(name string) validation.InsertSighting {
	return validation.InsertSighting{
		WitnessName:  name,
		Location:     "Paris",
		MonumentSeen: "Eiffel Tower",
		Description:  "saw it",
	}
}

func TestCreateSighting_AssignsIDAndTimestamp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	created, err := svc.CreateSighting(ctx, insertPayload("A"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Timestamp.Before(before) {
		t.Errorf("timestamp %v not assigned at insert time", created.Timestamp)
	}
	if created.Coordinates != nil {
		t.Errorf("expected nil coordinates, got %v", created.Coordinates)
	}
}

func TestListSightings_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateSighting(ctx, insertPayload("first"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.CreateSighting(ctx, insertPayload("second"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ListSightings(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sightings, got %d", len(got))
	}
	if got[0].ID != second.ID {
		t.Errorf("expected newest first, got id %d want %d", got[0].ID, second.ID)
	}
	if got[1].ID != first.ID {
		t.Errorf("expected oldest last, got id %d want %d", got[1].ID, first.ID)
	}
}

func TestListSightings_LimitApplied(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.CreateSighting(ctx, insertPayload("w")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := svc.ListSightings(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("limit=3 returned %d rows", len(got))
	}

	// Non-positive limits fall back to the default, which covers all 5 rows.
	got, err = svc.ListSightings(ctx, -1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("default limit returned %d rows, want 5", len(got))
	}

	// Oversized limits are clamped, not rejected.
	if _, err := svc.ListSightings(ctx, MaxSightingLimit*10); err != nil {
		t.Errorf("clamped list: %v", err)
	}
}

func TestCreateSighting_NoDeduplication(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateSighting(ctx, insertPayload("A"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := svc.CreateSighting(ctx, insertPayload("A"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("identical payloads shared id %d", a.ID)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSightings != 2 {
		t.Errorf("totalSightings = %d, want 2", stats.TotalSightings)
	}
}

func TestRecordPageView_DefaultsPage(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if err := svc.RecordPageView(ctx, ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	var view models.PageView
	if err := db.First(&view).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if view.Page != "/" {
		t.Errorf("page = %q, want /", view.Page)
	}
}

func TestGetStats_CountsBothTables(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, page := range []string{"/", "/about", "/"} {
		if err := svc.RecordPageView(ctx, page); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.CreateSighting(ctx, insertPayload("w")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalViews != 3 || stats.TotalSightings != 2 {
		t.Errorf("stats = %+v, want {3 2}", stats)
	}
}
