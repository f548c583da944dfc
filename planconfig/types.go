// Package planconfig holds the per-session protocol configuration: the longevity,
// cleanse and ailment-targeting settings, the medical consent record and the
// consent gate that is the only way to switch a protocol family on.
package planconfig

import (
	"slices"
	"time"

	"github.com/giygas/protocols-api/entities"
)

// Family names a protocol family that can be planned
type Family string

const (
	FamilyLongevity Family = "longevity"
	FamilyCleanse   Family = "cleanse"
	FamilyAilments  Family = "ailments"
)

// ParseFamily maps a path segment to a Family
func ParseFamily(s string) (Family, bool) {
	switch Family(s) {
	case FamilyLongevity, FamilyCleanse, FamilyAilments:
		return Family(s), true
	}
	return "", false
}

// FastingStrategy is the eating window used by longevity mode
type FastingStrategy string

const (
	FastingNone FastingStrategy = "none"
	Fasting16x8 FastingStrategy = "16_8"
	Fasting18x6 FastingStrategy = "18_6"
	Fasting20x4 FastingStrategy = "20_4"
	FastingOMAD FastingStrategy = "omad"
	Fasting5x2  FastingStrategy = "5_2"
)

// Valid reports whether f is a known strategy
func (f FastingStrategy) Valid() bool {
	switch f {
	case FastingNone, Fasting16x8, Fasting18x6, Fasting20x4, FastingOMAD, Fasting5x2:
		return true
	}
	return false
}

// CalorieRestriction is the longevity calorie level; anything but none needs consent
type CalorieRestriction string

const (
	CalorieNone     CalorieRestriction = "none"
	CalorieMild     CalorieRestriction = "mild"
	CalorieModerate CalorieRestriction = "moderate"
	CalorieStrict   CalorieRestriction = "strict"
)

// Valid reports whether c is a known restriction level
func (c CalorieRestriction) Valid() bool {
	switch c {
	case CalorieNone, CalorieMild, CalorieModerate, CalorieStrict:
		return true
	}
	return false
}

// CleansePhase is the stage of a running parasite cleanse
type CleansePhase string

const (
	PhasePreparation CleansePhase = "preparation"
	PhaseElimination CleansePhase = "elimination"
	PhaseRestoration CleansePhase = "restoration"
	PhaseMaintenance CleansePhase = "maintenance"
)

// Valid reports whether p is a known phase
func (p CleansePhase) Valid() bool {
	switch p {
	case PhasePreparation, PhaseElimination, PhaseRestoration, PhaseMaintenance:
		return true
	}
	return false
}

// PriorityLevel weights the health condition plan
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// Valid reports whether p is a known priority
func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func validIntensity(i entities.Intensity) bool {
	switch i {
	case entities.IntensityGentle, entities.IntensityModerate, entities.IntensityIntensive:
		return true
	}
	return false
}

// TargetServings are daily serving goals
type TargetServings struct {
	Vegetables       int `json:"vegetables"`
	Fruits           int `json:"fruits"`
	AntioxidantFoods int `json:"antioxidantFoods"`
}

// LongevityConfig drives the longevity plan. Enabled is owned by the Gate.
type LongevityConfig struct {
	Enabled                 bool               `json:"enabled"`
	FastingStrategy         FastingStrategy    `json:"fastingStrategy"`
	CalorieRestriction      CalorieRestriction `json:"calorieRestriction"`
	AntioxidantFocus        []string           `json:"antioxidantFocus"`
	IncludeAntiInflammatory bool               `json:"includeAntiInflammatory"`
	IncludeBrainHealth      bool               `json:"includeBrainHealth"`
	IncludeHeartHealth      bool               `json:"includeHeartHealth"`
	TargetServings          TargetServings     `json:"targetServings"`
}

// TargetFoods lists the food groups a cleanse leans on
type TargetFoods struct {
	AntiParasitic []string `json:"antiParasitic"`
	FiberRich     []string `json:"fiberRich"`
	Probiotic     []string `json:"probiotic"`
}

// CleanseConfig drives the parasite cleanse plan. Enabled is owned by the Gate.
type CleanseConfig struct {
	Enabled                  bool               `json:"enabled"`
	DurationDays             int                `json:"duration"`
	Intensity                entities.Intensity `json:"intensity"`
	CurrentPhase             CleansePhase       `json:"currentPhase"`
	IncludeHerbalSupplements bool               `json:"includeHerbalSupplements"`
	FollowStrictDiet         bool               `json:"followStrictDiet"`
	StartDate                *time.Time         `json:"startDate,omitempty"`
	EndDate                  *time.Time         `json:"endDate,omitempty"`
	TargetFoods              TargetFoods        `json:"targetFoods"`
}

// AilmentsConfig targets meal planning at selected ailments. NutritionalFocus is
// derived from SelectedAilments and is nil while the selection is empty.
type AilmentsConfig struct {
	SelectedAilments  []string                   `json:"selectedAilments"`
	NutritionalFocus  *entities.NutritionalFocus `json:"nutritionalFocus"`
	IncludeInPlanning bool                       `json:"includeInPlanning"`
	PriorityLevel     PriorityLevel              `json:"priorityLevel"`
}

// MedicalConsent is written as a whole by the consent gate
type MedicalConsent struct {
	HasReadDisclaimer             bool       `json:"hasReadDisclaimer"`
	HasConsented                  bool       `json:"hasConsented"`
	ConsentTimestamp              *time.Time `json:"consentTimestamp"`
	AcknowledgedRisks             bool       `json:"acknowledgedRisks"`
	HasHealthcareProviderApproval bool       `json:"hasHealthcareProviderApproval"`
	PregnancyScreeningComplete    bool       `json:"pregnancyScreeningComplete"`
	MedicalConditionsScreened     bool       `json:"medicalConditionsScreened"`
}

// Complete reports whether every acknowledgement has been given
func (m MedicalConsent) Complete() bool {
	return m.HasReadDisclaimer && m.HasConsented && m.AcknowledgedRisks &&
		m.HasHealthcareProviderApproval && m.PregnancyScreeningComplete && m.MedicalConditionsScreened
}

// ProtocolProgress tracks how far a user is into an active protocol
type ProtocolProgress struct {
	CurrentDay      int        `json:"currentDay"`
	CompletedPhases []string   `json:"completedPhases"`
	LastCheckIn     *time.Time `json:"lastCheckIn"`
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (l LongevityConfig) clone() LongevityConfig {
	l.AntioxidantFocus = slices.Clone(l.AntioxidantFocus)
	return l
}

func (c CleanseConfig) clone() CleanseConfig {
	c.StartDate = cloneTime(c.StartDate)
	c.EndDate = cloneTime(c.EndDate)
	c.TargetFoods = TargetFoods{
		AntiParasitic: slices.Clone(c.TargetFoods.AntiParasitic),
		FiberRich:     slices.Clone(c.TargetFoods.FiberRich),
		Probiotic:     slices.Clone(c.TargetFoods.Probiotic),
	}
	return c
}

func (a AilmentsConfig) clone() AilmentsConfig {
	a.SelectedAilments = slices.Clone(a.SelectedAilments)
	if a.NutritionalFocus != nil {
		f := entities.NutritionalFocus{
			BeneficialFoods: slices.Clone(a.NutritionalFocus.BeneficialFoods),
			AvoidFoods:      slices.Clone(a.NutritionalFocus.AvoidFoods),
			KeyNutrients:    slices.Clone(a.NutritionalFocus.KeyNutrients),
			MealPlanFocus:   slices.Clone(a.NutritionalFocus.MealPlanFocus),
		}
		a.NutritionalFocus = &f
	}
	return a
}

func (m MedicalConsent) clone() MedicalConsent {
	m.ConsentTimestamp = cloneTime(m.ConsentTimestamp)
	return m
}

func (p ProtocolProgress) clone() ProtocolProgress {
	p.CompletedPhases = slices.Clone(p.CompletedPhases)
	p.LastCheckIn = cloneTime(p.LastCheckIn)
	return p
}
