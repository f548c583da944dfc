package planconfig

import (
	"sync"
	"time"
)

// State is the consent gate state of one protocol family
type State string

const (
	StateDisabled       State = "disabled"
	StatePendingConsent State = "pending_consent"
	StateEnabled        State = "enabled"
)

// Transition describes one state change of the gate
type Transition struct {
	Family Family    `json:"family"`
	From   State     `json:"from"`
	To     State     `json:"to"`
	At     time.Time `json:"at"`
}

type TransitionListener func(Transition)

// Gate is the only path that switches the longevity and cleanse families on or off.
// At most one family waits for consent at any time. The gate lock is always taken
// before the aggregator lock.
type Gate struct {
	mu        sync.Mutex
	agg       *Aggregator
	pending   Family
	listeners []TransitionListener
	now       func() time.Time
}

func NewGate(agg *Aggregator) *Gate {
	return &Gate{agg: agg, now: time.Now}
}

func gated(f Family) bool {
	return f == FamilyLongevity || f == FamilyCleanse
}

// Subscribe registers a listener. Listeners run under the gate lock.
func (g *Gate) Subscribe(l TransitionListener) {
	if l == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// State reports the gate state of a family
func (g *Gate) State(f Family) (State, error) {
	if !gated(f) {
		return "", ErrUnknownFamily
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked(f), nil
}

// Pending returns the family waiting for consent, if any
func (g *Gate) Pending() (Family, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending, g.pending != ""
}

func (g *Gate) stateLocked(f Family) State {
	if g.pending == f {
		return StatePendingConsent
	}
	if g.agg.Snapshot().FamilyEnabled(f) {
		return StateEnabled
	}
	return StateDisabled
}

func (g *Gate) emit(f Family, from, to State) {
	t := Transition{Family: f, From: from, To: to, At: g.now()}
	for _, l := range g.listeners {
		l(t)
	}
}

// RequestEnable asks to switch a family on. With consent already on record the
// family is enabled at once, otherwise it waits in pending_consent.
func (g *Gate) RequestEnable(f Family) (State, error) {
	if !gated(f) {
		return "", ErrUnknownFamily
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	from := g.stateLocked(f)
	if from != StateDisabled {
		return from, nil
	}
	if g.pending != "" {
		return from, ErrConsentPending
	}

	if g.agg.Snapshot().Consent.HasConsented {
		if err := g.agg.setEnabled(f, true); err != nil {
			return from, err
		}
		g.emit(f, from, StateEnabled)
		return StateEnabled, nil
	}

	g.pending = f
	g.emit(f, from, StatePendingConsent)
	return StatePendingConsent, nil
}

// Accept records a complete consent and enables the pending family. The consent
// timestamp is set to now when absent.
func (g *Gate) Accept(consent MedicalConsent) (Family, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.pending
	if f == "" {
		return "", ErrNoPendingConsent
	}
	if !consent.Complete() {
		return f, ErrIncompleteConsent
	}
	if consent.ConsentTimestamp == nil {
		ts := g.now()
		consent.ConsentTimestamp = &ts
	}

	if err := g.agg.acceptConsent(consent, f); err != nil {
		return f, err
	}
	g.pending = ""
	g.emit(f, StatePendingConsent, StateEnabled)
	return f, nil
}

// Decline drops the pending request without writing anything
func (g *Gate) Decline() (Family, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.pending
	if f == "" {
		return "", ErrNoPendingConsent
	}
	g.pending = ""
	g.emit(f, StatePendingConsent, StateDisabled)
	return f, nil
}

// Disable switches a family off. Recorded consent is kept. Disabling a pending
// family withdraws the request.
func (g *Gate) Disable(f Family) error {
	if !gated(f) {
		return ErrUnknownFamily
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.stateLocked(f) {
	case StatePendingConsent:
		g.pending = ""
		g.emit(f, StatePendingConsent, StateDisabled)
	case StateEnabled:
		if err := g.agg.setEnabled(f, false); err != nil {
			return err
		}
		g.emit(f, StateEnabled, StateDisabled)
	}
	return nil
}
