package planconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/giygas/protocols-api/entities"
	"github.com/google/go-cmp/cmp"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func fullConsent() MedicalConsent {
	return MedicalConsent{
		HasReadDisclaimer:             true,
		HasConsented:                  true,
		AcknowledgedRisks:             true,
		HasHealthcareProviderApproval: true,
		PregnancyScreeningComplete:    true,
		MedicalConditionsScreened:     true,
	}
}

type gateFixture struct {
	agg         *Aggregator
	gate        *Gate
	transitions []Transition
	now         time.Time
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	f := &gateFixture{now: mustTime(t, "2026-05-01T09:30:00Z")}
	f.agg, _ = newTestAggregator()
	f.gate = NewGate(f.agg)
	f.gate.now = func() time.Time { return f.now }
	f.gate.Subscribe(func(tr Transition) { f.transitions = append(f.transitions, tr) })
	return f
}

func TestStrictLongevityWaitsForConsent(t *testing.T) {
	f := newGateFixture(t)
	if err := f.agg.UpdateLongevity(func(l *LongevityConfig) { l.CalorieRestriction = CalorieStrict }); err != nil {
		t.Fatalf("UpdateLongevity: %v", err)
	}

	state, err := f.gate.RequestEnable(FamilyLongevity)
	if err != nil {
		t.Fatalf("RequestEnable: %v", err)
	}
	if state != StatePendingConsent {
		t.Errorf("state = %s, want %s", state, StatePendingConsent)
	}
	if f.agg.Snapshot().Longevity.Enabled {
		t.Error("longevity must stay disabled until consent is accepted")
	}
	if fam, ok := f.gate.Pending(); !ok || fam != FamilyLongevity {
		t.Errorf("pending = %q, %v", fam, ok)
	}

	want := []Transition{{Family: FamilyLongevity, From: StateDisabled, To: StatePendingConsent, At: f.now}}
	if diff := cmp.Diff(want, f.transitions); diff != "" {
		t.Errorf("transitions mismatch:\n%s", diff)
	}
}

func TestGentleFamiliesStillAskForConsent(t *testing.T) {
	f := newGateFixture(t)
	_ = f.agg.UpdateCleanse(func(c *CleanseConfig) { c.Intensity = entities.IntensityGentle })

	state, err := f.gate.RequestEnable(FamilyCleanse)
	if err != nil {
		t.Fatalf("RequestEnable: %v", err)
	}
	if state != StatePendingConsent {
		t.Errorf("state = %s, want %s", state, StatePendingConsent)
	}
}

func TestAcceptCleanseConsent(t *testing.T) {
	f := newGateFixture(t)
	_ = f.agg.UpdateCleanse(func(c *CleanseConfig) { c.Intensity = entities.IntensityIntensive })

	if _, err := f.gate.RequestEnable(FamilyCleanse); err != nil {
		t.Fatalf("RequestEnable: %v", err)
	}
	fam, err := f.gate.Accept(fullConsent())
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if fam != FamilyCleanse {
		t.Errorf("accepted family = %s", fam)
	}

	snap := f.agg.Snapshot()
	if !snap.Cleanse.Enabled {
		t.Error("cleanse should be enabled")
	}
	if snap.Longevity.Enabled {
		t.Error("longevity must be unaffected")
	}
	if !f.agg.HasValidConsent() {
		t.Error("consent should be valid after accept")
	}
	if snap.Consent.ConsentTimestamp == nil || !snap.Consent.ConsentTimestamp.Equal(f.now) {
		t.Errorf("consent timestamp = %v, want %v", snap.Consent.ConsentTimestamp, f.now)
	}
	if state, _ := f.gate.State(FamilyCleanse); state != StateEnabled {
		t.Errorf("state = %s, want enabled", state)
	}
	if _, ok := f.gate.Pending(); ok {
		t.Error("nothing should be pending after accept")
	}
}

func TestAcceptKeepsSuppliedTimestamp(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyLongevity)

	consent := fullConsent()
	ts := mustTime(t, "2026-04-30T08:00:00Z")
	consent.ConsentTimestamp = &ts
	if _, err := f.gate.Accept(consent); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if got := f.agg.Snapshot().Consent.ConsentTimestamp; got == nil || !got.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", got, ts)
	}
}

func TestAcceptRejectsIncompleteConsent(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyLongevity)

	consent := fullConsent()
	consent.AcknowledgedRisks = false
	_, err := f.gate.Accept(consent)
	if !errors.Is(err, ErrIncompleteConsent) {
		t.Fatalf("expected ErrIncompleteConsent, got %v", err)
	}

	if state, _ := f.gate.State(FamilyLongevity); state != StatePendingConsent {
		t.Errorf("state = %s, want pending", state)
	}
	if f.agg.Snapshot().Consent.HasConsented {
		t.Error("incomplete consent must not be written")
	}
}

func TestDeclineWritesNothing(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyCleanse)
	before := f.agg.Snapshot()

	fam, err := f.gate.Decline()
	if err != nil {
		t.Fatalf("Decline: %v", err)
	}
	if fam != FamilyCleanse {
		t.Errorf("declined family = %s", fam)
	}
	if diff := cmp.Diff(before, f.agg.Snapshot()); diff != "" {
		t.Errorf("decline changed configuration:\n%s", diff)
	}
	if state, _ := f.gate.State(FamilyCleanse); state != StateDisabled {
		t.Errorf("state = %s, want disabled", state)
	}

	if _, err := f.gate.Decline(); !errors.Is(err, ErrNoPendingConsent) {
		t.Errorf("second decline: expected ErrNoPendingConsent, got %v", err)
	}
	if _, err := f.gate.Accept(fullConsent()); !errors.Is(err, ErrNoPendingConsent) {
		t.Errorf("accept without pending: expected ErrNoPendingConsent, got %v", err)
	}
}

func TestEnableDirectlyWithRecordedConsent(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyLongevity)
	if _, err := f.gate.Accept(fullConsent()); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	state, err := f.gate.RequestEnable(FamilyCleanse)
	if err != nil {
		t.Fatalf("RequestEnable: %v", err)
	}
	if state != StateEnabled {
		t.Errorf("state = %s, want enabled", state)
	}
	if !f.agg.Snapshot().Cleanse.Enabled {
		t.Error("cleanse should be enabled without a pending step")
	}
	last := f.transitions[len(f.transitions)-1]
	if last.From != StateDisabled || last.To != StateEnabled {
		t.Errorf("last transition = %+v", last)
	}
}

func TestDisableRetainsConsent(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyLongevity)
	_, _ = f.gate.Accept(fullConsent())

	if err := f.gate.Disable(FamilyLongevity); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	snap := f.agg.Snapshot()
	if snap.Longevity.Enabled {
		t.Error("longevity should be disabled")
	}
	if !snap.Consent.HasConsented {
		t.Error("consent must be retained after disable")
	}

	// Disabling again is a no-op
	before := len(f.transitions)
	if err := f.gate.Disable(FamilyLongevity); err != nil || len(f.transitions) != before {
		t.Errorf("second Disable: err=%v, transitions %d -> %d", err, before, len(f.transitions))
	}

	// Re-enabling does not prompt again
	state, _ := f.gate.RequestEnable(FamilyLongevity)
	if state != StateEnabled {
		t.Errorf("state = %s, want enabled", state)
	}
}

func TestSinglePendingSlot(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyLongevity)

	_, err := f.gate.RequestEnable(FamilyCleanse)
	if !errors.Is(err, ErrConsentPending) {
		t.Fatalf("expected ErrConsentPending, got %v", err)
	}
	if fam, _ := f.gate.Pending(); fam != FamilyLongevity {
		t.Errorf("pending = %s, want longevity", fam)
	}

	// Repeating the pending request is a no-op
	state, err := f.gate.RequestEnable(FamilyLongevity)
	if err != nil || state != StatePendingConsent {
		t.Errorf("repeat request = %s, %v", state, err)
	}
	if len(f.transitions) != 1 {
		t.Errorf("expected 1 transition, got %d", len(f.transitions))
	}
}

func TestDisableWithdrawsPendingRequest(t *testing.T) {
	f := newGateFixture(t)
	_, _ = f.gate.RequestEnable(FamilyCleanse)

	if err := f.gate.Disable(FamilyCleanse); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if _, ok := f.gate.Pending(); ok {
		t.Error("pending request should be withdrawn")
	}
	if err := f.gate.Disable(FamilyCleanse); err != nil {
		t.Errorf("disabling a disabled family should be a no-op, got %v", err)
	}
	if len(f.transitions) != 2 {
		t.Errorf("expected 2 transitions, got %d", len(f.transitions))
	}
}

func TestUngatedFamily(t *testing.T) {
	f := newGateFixture(t)

	if _, err := f.gate.RequestEnable(FamilyAilments); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("RequestEnable: expected ErrUnknownFamily, got %v", err)
	}
	if err := f.gate.Disable(Family("sleep")); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("Disable: expected ErrUnknownFamily, got %v", err)
	}
	if _, err := f.gate.State(FamilyAilments); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("State: expected ErrUnknownFamily, got %v", err)
	}
}
