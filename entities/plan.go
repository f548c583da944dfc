package entities

import (
	"encoding/json"
	"time"
)

// PlanType is the storage category of a generated plan
type PlanType string

const (
	PlanTypeLongevity       PlanType = "longevity"
	PlanTypeParasiteCleanse PlanType = "parasite_cleanse"
)

// PlanConfig keeps the request that produced a plan next to the plan itself
type PlanConfig struct {
	OriginalRequest json.RawMessage `json:"originalRequest"`
	GeneratedPlan   json.RawMessage `json:"generatedPlan"`
}

// PlanRecord is the persisted summary of a generated plan
type PlanRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        PlanType   `json:"type"`
	Duration    int        `json:"duration"`
	Intensity   Intensity  `json:"intensity"`
	Config      PlanConfig `json:"config"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
}
