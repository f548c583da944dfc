package storage

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/giygas/protocols-api/entities"
	"github.com/google/go-cmp/cmp"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "db", "plans.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePlan() entities.PlanRecord {
	return entities.PlanRecord{
		Name:        "Spring cleanse",
		Description: "14 day gentle parasite cleanse",
		Type:        entities.PlanTypeParasiteCleanse,
		Duration:    14,
		Intensity:   entities.IntensityGentle,
		Config: entities.PlanConfig{
			OriginalRequest: json.RawMessage(`{"planName":"Spring cleanse","duration":"14"}`),
			GeneratedPlan:   json.RawMessage(`{"days":[1,2]}`),
		},
		Tags:      []string{"parasite_cleanse", "gentle"},
		CreatedAt: time.Date(2026, 4, 2, 10, 0, 0, 123, time.UTC),
	}
}

func TestSaveAndGetPlan(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SavePlan(ctx, samplePlan())
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a uuid, got %q", id)
	}

	got, err := s.GetPlan(ctx, id)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}

	want := samplePlan()
	want.ID = id
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestSavePlanDefaults(t *testing.T) {
	s := newTestStore(t)
	s.newID = func() string { return "fixed-id" }
	ctx := context.Background()

	plan := samplePlan()
	plan.Tags = nil
	plan.CreatedAt = time.Time{}

	id, err := s.SavePlan(ctx, plan)
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %s", id)
	}

	got, err := s.GetPlan(ctx, id)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("tags = %#v, want empty", got.Tags)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at should be set on save")
	}

	if _, err := s.SavePlan(ctx, plan); err == nil {
		t.Error("duplicate id should fail")
	}
}

func TestGetPlanNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetPlan(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCountPlans(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	longevity := samplePlan()
	longevity.Type = entities.PlanTypeLongevity
	for _, p := range []entities.PlanRecord{samplePlan(), longevity, longevity} {
		if _, err := s.SavePlan(ctx, p); err != nil {
			t.Fatalf("SavePlan: %v", err)
		}
	}

	tests := []struct {
		planType entities.PlanType
		want     int
	}{
		{"", 3},
		{entities.PlanTypeLongevity, 2},
		{entities.PlanTypeParasiteCleanse, 1},
	}
	for _, tt := range tests {
		got, err := s.CountPlans(ctx, tt.planType)
		if err != nil {
			t.Fatalf("CountPlans(%q): %v", tt.planType, err)
		}
		if got != tt.want {
			t.Errorf("CountPlans(%q) = %d, want %d", tt.planType, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")
	ctx := context.Background()

	s, err := Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id, err := s.SavePlan(ctx, samplePlan())
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	s.Close()

	s, err = Open(ctx, DriverSQLite, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, err := s.GetPlan(ctx, id); err != nil {
		t.Errorf("GetPlan after reopen: %v", err)
	}
}

func TestPingAfterClose(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	s.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("ping on a closed store should fail")
	}
}

func TestRebind(t *testing.T) {
	q := `SELECT * FROM protocol_plans WHERE id = ? AND type = ?`

	sqlite := &Store{driver: DriverSQLite}
	if got := sqlite.rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %s", got)
	}

	pg := &Store{driver: DriverPostgres}
	want := `SELECT * FROM protocol_plans WHERE id = $1 AND type = $2`
	if got := pg.rebind(q); got != want {
		t.Errorf("postgres rebind = %s", got)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
