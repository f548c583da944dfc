package planconfig

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/giygas/protocols-api/nutrition"
)

// DefaultMaxSelections caps the number of ailments a session can target
const DefaultMaxSelections = 10

// Observer receives the full configuration after every applied mutation
type Observer func(Configuration)

// errUnchanged short-circuits a mutation that turned out to be a no-op
var errUnchanged = errors.New("unchanged")

// Aggregator owns one session's Configuration. Mutations are serialised and each
// applied mutation is followed by exactly one notification to every observer before
// the next mutation starts. Observers run under the aggregator lock and must not call
// back into it.
type Aggregator struct {
	mu            sync.Mutex
	cfg           Configuration
	source        nutrition.AilmentSource
	maxSelections int
	observers     []Observer
}

type AggregatorOption func(*Aggregator)

func WithMaxSelections(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.maxSelections = n
		}
	}
}

func WithObserver(o Observer) AggregatorOption {
	return func(a *Aggregator) {
		if o != nil {
			a.observers = append(a.observers, o)
		}
	}
}

// WithConfiguration seeds the aggregator instead of DefaultConfiguration.
// Families always start disabled; only the Gate turns them on.
func WithConfiguration(cfg Configuration) AggregatorOption {
	return func(a *Aggregator) {
		a.cfg = cfg.Clone()
		a.cfg.Longevity.Enabled = false
		a.cfg.Cleanse.Enabled = false
	}
}

// NewAggregator creates an aggregator resolving ailments through source
func NewAggregator(source nutrition.AilmentSource, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		cfg:           DefaultConfiguration(),
		source:        source,
		maxSelections: DefaultMaxSelections,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe registers an observer for subsequent mutations
func (a *Aggregator) Subscribe(o Observer) {
	if o == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, o)
}

// Snapshot returns a copy of the current configuration
func (a *Aggregator) Snapshot() Configuration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Clone()
}

func (a *Aggregator) MaxSelections() int {
	return a.maxSelections
}

func (a *Aggregator) HasActiveProtocols() bool { return a.Snapshot().HasActiveProtocols() }
func (a *Aggregator) ActiveProtocolLabels() []string { return a.Snapshot().ActiveProtocolLabels() }
func (a *Aggregator) RequiresMedicalConsent() bool { return a.Snapshot().RequiresMedicalConsent() }
func (a *Aggregator) HasValidConsent() bool { return a.Snapshot().HasValidConsent() }

// mutate applies fn to a working copy and commits it only when fn succeeds
func (a *Aggregator) mutate(fn func(*Configuration) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.cfg.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	a.cfg = next

	for _, o := range a.observers {
		o(next.Clone())
	}
	return nil
}

// UpdateLongevity applies several longevity edits as one mutation. The enabled flag
// is owned by the consent gate and is restored after fn runs.
func (a *Aggregator) UpdateLongevity(fn func(*LongevityConfig)) error {
	return a.mutate(func(c *Configuration) error {
		enabled := c.Longevity.Enabled
		fn(&c.Longevity)
		c.Longevity.Enabled = enabled
		return c.Longevity.validate()
	})
}

// UpdateCleanse is UpdateLongevity for the cleanse settings
func (a *Aggregator) UpdateCleanse(fn func(*CleanseConfig)) error {
	return a.mutate(func(c *Configuration) error {
		enabled := c.Cleanse.Enabled
		fn(&c.Cleanse)
		c.Cleanse.Enabled = enabled
		return c.Cleanse.validate()
	})
}

// UpdateAilmentSettings changes how selected ailments take part in planning
func (a *Aggregator) UpdateAilmentSettings(includeInPlanning bool, priority PriorityLevel) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: unknown priority level %q", ErrInvalidSetting, priority)
	}
	return a.mutate(func(c *Configuration) error {
		c.Ailments.IncludeInPlanning = includeInPlanning
		c.Ailments.PriorityLevel = priority
		return nil
	})
}

// SelectAilment adds an ailment to the selection. A full selection is rejected with
// ErrMaxSelections and leaves the configuration untouched.
func (a *Aggregator) SelectAilment(id string) error {
	return a.mutate(func(c *Configuration) error {
		if slices.Contains(c.Ailments.SelectedAilments, id) {
			return errUnchanged
		}
		if len(c.Ailments.SelectedAilments) >= a.maxSelections {
			return fmt.Errorf("%w: limit is %d", ErrMaxSelections, a.maxSelections)
		}
		c.Ailments.SelectedAilments = append(c.Ailments.SelectedAilments, id)
		a.refreshFocus(c)
		return nil
	})
}

// DeselectAilment removes id; ids not selected are a no-op
func (a *Aggregator) DeselectAilment(id string) error {
	return a.mutate(func(c *Configuration) error {
		i := slices.Index(c.Ailments.SelectedAilments, id)
		if i < 0 {
			return errUnchanged
		}
		c.Ailments.SelectedAilments = slices.Delete(c.Ailments.SelectedAilments, i, i+1)
		a.refreshFocus(c)
		return nil
	})
}

func (a *Aggregator) refreshFocus(c *Configuration) {
	if len(c.Ailments.SelectedAilments) == 0 {
		c.Ailments.NutritionalFocus = nil
		return
	}
	focus := nutrition.Aggregate(a.source, c.Ailments.SelectedAilments)
	c.Ailments.NutritionalFocus = &focus
}

func (a *Aggregator) UpdateProgress(fn func(*ProtocolProgress)) error {
	return a.mutate(func(c *Configuration) error {
		fn(&c.Progress)
		if c.Progress.CurrentDay < 0 {
			return fmt.Errorf("%w: current day cannot be negative", ErrInvalidSetting)
		}
		if c.Progress.CompletedPhases == nil {
			c.Progress.CompletedPhases = []string{}
		}
		return nil
	})
}

// setEnabled is reserved for the consent gate
func (a *Aggregator) setEnabled(f Family, enabled bool) error {
	return a.mutate(func(c *Configuration) error {
		switch f {
		case FamilyLongevity:
			if c.Longevity.Enabled == enabled {
				return errUnchanged
			}
			c.Longevity.Enabled = enabled
		case FamilyCleanse:
			if c.Cleanse.Enabled == enabled {
				return errUnchanged
			}
			c.Cleanse.Enabled = enabled
		default:
			return ErrUnknownFamily
		}
		return nil
	})
}

// acceptConsent writes the consent record and enables f in one mutation
func (a *Aggregator) acceptConsent(consent MedicalConsent, f Family) error {
	return a.mutate(func(c *Configuration) error {
		c.Consent = consent.clone()
		switch f {
		case FamilyLongevity:
			c.Longevity.Enabled = true
		case FamilyCleanse:
			c.Cleanse.Enabled = true
		default:
			return ErrUnknownFamily
		}
		return nil
	})
}
