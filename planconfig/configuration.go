package planconfig

import (
	"fmt"

	"github.com/giygas/protocols-api/entities"
)

// Configuration is the composed view of one session's protocol settings. It is a
// value: predicates evaluated on it never observe later mutations.
type Configuration struct {
	Longevity LongevityConfig  `json:"longevity"`
	Cleanse   CleanseConfig    `json:"cleanse"`
	Ailments  AilmentsConfig   `json:"ailments"`
	Consent   MedicalConsent   `json:"consent"`
	Progress  ProtocolProgress `json:"progress"`
}

// DefaultConfiguration returns the settings a new session starts with.
// Every family is disabled and no consent is recorded.
func DefaultConfiguration() Configuration {
	return Configuration{
		Longevity: LongevityConfig{
			FastingStrategy:         Fasting16x8,
			CalorieRestriction:      CalorieMild,
			AntioxidantFocus:        []string{"berries", "leafy greens", "green tea"},
			IncludeAntiInflammatory: true,
			IncludeBrainHealth:      true,
			IncludeHeartHealth:      true,
			TargetServings:          TargetServings{Vegetables: 7, Fruits: 3, AntioxidantFoods: 5},
		},
		Cleanse: CleanseConfig{
			DurationDays:             30,
			Intensity:                entities.IntensityModerate,
			CurrentPhase:             PhasePreparation,
			IncludeHerbalSupplements: true,
			TargetFoods: TargetFoods{
				AntiParasitic: []string{"garlic", "pumpkin seeds", "papaya seeds"},
				FiberRich:     []string{"chia seeds", "psyllium", "leafy greens"},
				Probiotic:     []string{"kefir", "sauerkraut", "kimchi"},
			},
		},
		Ailments: AilmentsConfig{
			SelectedAilments: []string{},
			PriorityLevel:    PriorityMedium,
		},
		Progress: ProtocolProgress{CompletedPhases: []string{}},
	}
}

// Clone returns a deep copy
func (c Configuration) Clone() Configuration {
	return Configuration{
		Longevity: c.Longevity.clone(),
		Cleanse:   c.Cleanse.clone(),
		Ailments:  c.Ailments.clone(),
		Consent:   c.Consent.clone(),
		Progress:  c.Progress.clone(),
	}
}

// AilmentsActive reports whether ailment targeting takes part in planning
func (c Configuration) AilmentsActive() bool {
	return c.Ailments.IncludeInPlanning && len(c.Ailments.SelectedAilments) > 0
}

// FamilyEnabled reports whether a family is switched on
func (c Configuration) FamilyEnabled(f Family) bool {
	switch f {
	case FamilyLongevity:
		return c.Longevity.Enabled
	case FamilyCleanse:
		return c.Cleanse.Enabled
	case FamilyAilments:
		return c.AilmentsActive()
	}
	return false
}

// HasActiveProtocols reports whether any family contributes to a plan
func (c Configuration) HasActiveProtocols() bool {
	return c.Longevity.Enabled || c.Cleanse.Enabled || c.AilmentsActive()
}

// ActiveProtocolLabels lists display labels of active families, always in the
// order longevity, cleanse, ailments
func (c Configuration) ActiveProtocolLabels() []string {
	labels := []string{}
	if c.Longevity.Enabled {
		labels = append(labels, "Longevity Mode")
	}
	if c.Cleanse.Enabled {
		labels = append(labels, "Parasite Cleanse")
	}
	if c.AilmentsActive() {
		labels = append(labels, fmt.Sprintf("Health Conditions (%d)", len(c.Ailments.SelectedAilments)))
	}
	return labels
}

// RequiresMedicalConsent is true when calorie restriction or a non-gentle cleanse is active
func (c Configuration) RequiresMedicalConsent() bool {
	return (c.Longevity.Enabled && c.Longevity.CalorieRestriction != CalorieNone) ||
		(c.Cleanse.Enabled && c.Cleanse.Intensity != entities.IntensityGentle)
}

// HasValidConsent holds when no consent is needed or the recorded one covers it
func (c Configuration) HasValidConsent() bool {
	if !c.RequiresMedicalConsent() {
		return true
	}
	return c.Consent.HasConsented && c.Consent.HasHealthcareProviderApproval
}

func (l LongevityConfig) validate() error {
	if !l.FastingStrategy.Valid() {
		return fmt.Errorf("%w: unknown fasting strategy %q", ErrInvalidSetting, l.FastingStrategy)
	}
	if !l.CalorieRestriction.Valid() {
		return fmt.Errorf("%w: unknown calorie restriction %q", ErrInvalidSetting, l.CalorieRestriction)
	}
	ts := l.TargetServings
	if ts.Vegetables < 0 || ts.Fruits < 0 || ts.AntioxidantFoods < 0 {
		return fmt.Errorf("%w: target servings cannot be negative", ErrInvalidSetting)
	}
	return nil
}

const maxCleanseDays = 180

func (c CleanseConfig) validate() error {
	if c.DurationDays < 1 || c.DurationDays > maxCleanseDays {
		return fmt.Errorf("%w: cleanse duration must be between 1 and %d days, got %d", ErrInvalidSetting, maxCleanseDays, c.DurationDays)
	}
	if !validIntensity(c.Intensity) {
		return fmt.Errorf("%w: unknown intensity %q", ErrInvalidSetting, c.Intensity)
	}
	if !c.CurrentPhase.Valid() {
		return fmt.Errorf("%w: unknown cleanse phase %q", ErrInvalidSetting, c.CurrentPhase)
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidSetting)
	}
	return nil
}
