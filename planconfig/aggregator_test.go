package planconfig

import (
	"errors"
	"sync"
	"testing"

	"github.com/giygas/protocols-api/catalog"
	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/nutrition"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	mu      sync.Mutex
	configs []Configuration
}

func (r *recorder) observe(c Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, c)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.configs)
}

func (r *recorder) last() Configuration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.configs[len(r.configs)-1]
}

func newTestAggregator(opts ...AggregatorOption) (*Aggregator, *recorder) {
	rec := &recorder{}
	opts = append(opts, WithObserver(rec.observe))
	return NewAggregator(catalog.Default(), opts...), rec
}

func TestUpdateLongevityBatchesEdits(t *testing.T) {
	agg, rec := newTestAggregator()

	err := agg.UpdateLongevity(func(l *LongevityConfig) {
		l.FastingStrategy = Fasting18x6
		l.CalorieRestriction = CalorieModerate
		l.IncludeBrainHealth = false
		l.TargetServings.Vegetables = 9
	})
	if err != nil {
		t.Fatalf("UpdateLongevity: %v", err)
	}

	if rec.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", rec.count())
	}
	got := rec.last().Longevity
	if got.FastingStrategy != Fasting18x6 || got.CalorieRestriction != CalorieModerate ||
		got.IncludeBrainHealth || got.TargetServings.Vegetables != 9 {
		t.Errorf("unexpected longevity config: %+v", got)
	}
	if diff := cmp.Diff(rec.last(), agg.Snapshot()); diff != "" {
		t.Errorf("notification differs from snapshot (-notified +snapshot):\n%s", diff)
	}
}

func TestUpdateCannotEnable(t *testing.T) {
	agg, _ := newTestAggregator()

	if err := agg.UpdateLongevity(func(l *LongevityConfig) { l.Enabled = true }); err != nil {
		t.Fatalf("UpdateLongevity: %v", err)
	}
	if err := agg.UpdateCleanse(func(c *CleanseConfig) { c.Enabled = true }); err != nil {
		t.Fatalf("UpdateCleanse: %v", err)
	}

	snap := agg.Snapshot()
	if snap.Longevity.Enabled || snap.Cleanse.Enabled {
		t.Error("update functions must not switch families on")
	}
	if agg.HasActiveProtocols() {
		t.Error("no protocol should be active")
	}
}

func TestSeededConfigurationStartsDisabled(t *testing.T) {
	seed := DefaultConfiguration()
	seed.Longevity.Enabled = true
	seed.Longevity.CalorieRestriction = CalorieStrict
	seed.Cleanse.Enabled = true

	agg, _ := newTestAggregator(WithConfiguration(seed))
	gate := NewGate(agg)

	snap := agg.Snapshot()
	if snap.Longevity.Enabled || snap.Cleanse.Enabled {
		t.Error("seeded families must start disabled")
	}
	if snap.Longevity.CalorieRestriction != CalorieStrict {
		t.Errorf("calorie restriction = %s, want strict", snap.Longevity.CalorieRestriction)
	}
	if state, _ := gate.State(FamilyLongevity); state != StateDisabled {
		t.Errorf("longevity state = %s, want disabled", state)
	}
	if !snap.HasValidConsent() {
		t.Error("a disabled configuration needs no consent")
	}
}

func TestUpdateRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Aggregator) error
	}{
		{"fasting", func(a *Aggregator) error {
			return a.UpdateLongevity(func(l *LongevityConfig) { l.FastingStrategy = "weekly" })
		}},
		{"restriction", func(a *Aggregator) error {
			return a.UpdateLongevity(func(l *LongevityConfig) { l.CalorieRestriction = "extreme" })
		}},
		{"duration", func(a *Aggregator) error {
			return a.UpdateCleanse(func(c *CleanseConfig) { c.DurationDays = 0 })
		}},
		{"intensity", func(a *Aggregator) error {
			return a.UpdateCleanse(func(c *CleanseConfig) { c.Intensity = "extreme" })
		}},
		{"priority", func(a *Aggregator) error {
			return a.UpdateAilmentSettings(true, "urgent")
		}},
		{"progress", func(a *Aggregator) error {
			return a.UpdateProgress(func(p *ProtocolProgress) { p.CurrentDay = -1 })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, rec := newTestAggregator()
			before := agg.Snapshot()

			err := tt.apply(agg)
			if !errors.Is(err, ErrInvalidSetting) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected invalid setting validation error, got %v", err)
			}
			if rec.count() != 0 {
				t.Error("rejected mutation must not notify")
			}
			if diff := cmp.Diff(before, agg.Snapshot()); diff != "" {
				t.Errorf("rejected mutation changed state:\n%s", diff)
			}
		})
	}
}

func TestSelectAilmentRecomputesFocus(t *testing.T) {
	agg, rec := newTestAggregator()

	for _, id := range []string{"hypertension", "diabetes"} {
		if err := agg.SelectAilment(id); err != nil {
			t.Fatalf("SelectAilment(%s): %v", id, err)
		}
	}
	if rec.count() != 2 {
		t.Fatalf("expected 2 notifications, got %d", rec.count())
	}

	snap := agg.Snapshot()
	if diff := cmp.Diff([]string{"hypertension", "diabetes"}, snap.Ailments.SelectedAilments); diff != "" {
		t.Errorf("selection mismatch:\n%s", diff)
	}
	want := nutrition.Aggregate(catalog.Default(), []string{"hypertension", "diabetes"})
	if snap.Ailments.NutritionalFocus == nil {
		t.Fatal("nutritional focus should be set")
	}
	if diff := cmp.Diff(want, *snap.Ailments.NutritionalFocus); diff != "" {
		t.Errorf("focus mismatch (-want +got):\n%s", diff)
	}

	if err := agg.DeselectAilment("hypertension"); err != nil {
		t.Fatalf("DeselectAilment: %v", err)
	}
	if err := agg.DeselectAilment("diabetes"); err != nil {
		t.Fatalf("DeselectAilment: %v", err)
	}
	if agg.Snapshot().Ailments.NutritionalFocus != nil {
		t.Error("focus should be cleared when the selection is empty")
	}
}

func TestSelectAilmentDuplicateIsNoop(t *testing.T) {
	agg, rec := newTestAggregator()

	_ = agg.SelectAilment("ibs")
	if err := agg.SelectAilment("ibs"); err != nil {
		t.Fatalf("duplicate select: %v", err)
	}
	if err := agg.DeselectAilment("acne"); err != nil {
		t.Fatalf("deselect of unselected id: %v", err)
	}
	if rec.count() != 1 {
		t.Errorf("expected 1 notification, got %d", rec.count())
	}
	if got := len(agg.Snapshot().Ailments.SelectedAilments); got != 1 {
		t.Errorf("expected 1 selected ailment, got %d", got)
	}
}

func TestSelectAilmentMaxSelections(t *testing.T) {
	agg, rec := newTestAggregator(WithMaxSelections(3))

	for _, id := range []string{"ibs", "acne", "asthma"} {
		if err := agg.SelectAilment(id); err != nil {
			t.Fatalf("SelectAilment(%s): %v", id, err)
		}
	}
	before := agg.Snapshot()

	err := agg.SelectAilment("eczema")
	if !errors.Is(err, ErrMaxSelections) {
		t.Fatalf("expected ErrMaxSelections, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("max selections should be a validation failure")
	}
	if rec.count() != 3 {
		t.Errorf("rejected selection must not notify, got %d notifications", rec.count())
	}
	if diff := cmp.Diff(before, agg.Snapshot()); diff != "" {
		t.Errorf("rejected selection changed state:\n%s", diff)
	}

	// Deselect is always allowed, which frees a slot
	if err := agg.DeselectAilment("ibs"); err != nil {
		t.Fatalf("DeselectAilment: %v", err)
	}
	if err := agg.SelectAilment("eczema"); err != nil {
		t.Errorf("select after freeing a slot: %v", err)
	}
}

func TestUpdateAilmentSettings(t *testing.T) {
	agg, rec := newTestAggregator()

	if err := agg.UpdateAilmentSettings(true, PriorityHigh); err != nil {
		t.Fatalf("UpdateAilmentSettings: %v", err)
	}
	if agg.HasActiveProtocols() {
		t.Error("ailments without selection should not be active")
	}
	_ = agg.SelectAilment("candida")

	if rec.count() != 2 {
		t.Errorf("expected 2 notifications, got %d", rec.count())
	}
	if diff := cmp.Diff([]string{"Health Conditions (1)"}, agg.ActiveProtocolLabels()); diff != "" {
		t.Errorf("labels mismatch:\n%s", diff)
	}
	if agg.Snapshot().Ailments.PriorityLevel != PriorityHigh {
		t.Error("priority not applied")
	}
}

func TestUpdateProgress(t *testing.T) {
	agg, _ := newTestAggregator()

	err := agg.UpdateProgress(func(p *ProtocolProgress) {
		p.CurrentDay = 4
		p.CompletedPhases = append(p.CompletedPhases, "preparation")
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	got := agg.Snapshot().Progress
	if got.CurrentDay != 4 || len(got.CompletedPhases) != 1 {
		t.Errorf("unexpected progress: %+v", got)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	agg, _ := newTestAggregator()
	_ = agg.SelectAilment("ibs")

	snap := agg.Snapshot()
	snap.Ailments.SelectedAilments[0] = "acne"
	snap.Longevity.Enabled = true

	again := agg.Snapshot()
	if again.Ailments.SelectedAilments[0] != "ibs" || again.Longevity.Enabled {
		t.Error("snapshot mutation leaked into aggregator")
	}
}

func TestObserversSeeEveryMutationInOrder(t *testing.T) {
	agg, rec := newTestAggregator()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_ = agg.UpdateProgress(func(p *ProtocolProgress) { p.CurrentDay = day })
		}(i)
	}
	wg.Wait()

	if rec.count() != 20 {
		t.Fatalf("expected 20 notifications, got %d", rec.count())
	}
	if rec.last().Progress.CurrentDay != agg.Snapshot().Progress.CurrentDay {
		t.Error("last notification should match final state")
	}
}

func TestCleanseDatesValidated(t *testing.T) {
	agg, _ := newTestAggregator()
	start := mustTime(t, "2026-03-10T00:00:00Z")
	end := mustTime(t, "2026-03-01T00:00:00Z")

	err := agg.UpdateCleanse(func(c *CleanseConfig) {
		c.StartDate = &start
		c.EndDate = &end
	})
	if !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("expected ErrInvalidSetting, got %v", err)
	}
	if agg.Snapshot().Cleanse.Intensity != entities.IntensityModerate {
		t.Error("default intensity should be unchanged")
	}
}
