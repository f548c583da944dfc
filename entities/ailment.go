// Package entities holds the immutable value types of the health-protocol knowledge base.
package entities

// Severity grades how serious an ailment usually is
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// AilmentCategory groups ailments for browsing
type AilmentCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// NutritionalSupport is the dietary guidance attached to a single ailment
type NutritionalSupport struct {
	BeneficialFoods []string `json:"beneficialFoods"`
	AvoidFoods      []string `json:"avoidFoods"`
	KeyNutrients    []string `json:"keyNutrients"`
	MealPlanFocus   []string `json:"mealPlanFocus"`
}

// Ailment is a named health condition with nutritional guidance.
// The Category field references AilmentCategory.ID.
type Ailment struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Category           string             `json:"category"`
	Severity           Severity           `json:"severity"`
	Description        string             `json:"description"`
	Symptoms           []string           `json:"symptoms"`
	NutritionalSupport NutritionalSupport `json:"nutritionalSupport"`
	MedicalDisclaimer  string             `json:"medicalDisclaimer,omitempty"`
}

// NutritionalFocus is the union of guidance across several ailments.
// Each field is an ordered set: no duplicates, first appearance wins.
type NutritionalFocus struct {
	BeneficialFoods []string `json:"beneficialFoods"`
	AvoidFoods      []string `json:"avoidFoods"`
	KeyNutrients    []string `json:"keyNutrients"`
	MealPlanFocus   []string `json:"mealPlanFocus"`
}

// NewNutritionalFocus returns a focus with empty, non-nil sets
func NewNutritionalFocus() NutritionalFocus {
	return NutritionalFocus{
		BeneficialFoods: []string{},
		AvoidFoods:      []string{},
		KeyNutrients:    []string{},
		MealPlanFocus:   []string{},
	}
}

// IsEmpty reports whether every set is empty
func (f NutritionalFocus) IsEmpty() bool {
	return len(f.BeneficialFoods) == 0 && len(f.AvoidFoods) == 0 &&
		len(f.KeyNutrients) == 0 && len(f.MealPlanFocus) == 0
}
