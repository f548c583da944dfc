// Package generation turns a session configuration into a plan generation request,
// sends it to the external generator and stores a summary of the result.
package generation

import (
	"slices"
	"strconv"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/planconfig"
)

// Generator endpoints relative to the service base URL
const (
	EndpointLongevity = "/generate/longevity"
	EndpointCleanse   = "/generate/parasite-cleanse"
	EndpointAilments  = "/generate/ailments"
)

const (
	defaultDurationDays    = 30
	defaultCalorieTarget   = 2000
	defaultExperienceLevel = "beginner"
)

// BuildOptions carry the request fields that are not part of the configuration.
// Zero values fall back to defaults.
type BuildOptions struct {
	PlanName                 string   `json:"planName"`
	ClientName               string   `json:"clientName"`
	ExperienceLevel          string   `json:"experienceLevel"`
	DurationDays             int      `json:"duration"`
	PrimaryGoals             []string `json:"primaryGoals"`
	DailyCalorieTarget       int      `json:"dailyCalorieTarget"`
	PregnancyOrBreastfeeding bool     `json:"pregnancyOrBreastfeeding"`
}

// LongevityRequest is the body posted to the longevity endpoint
type LongevityRequest struct {
	PlanName           string   `json:"planName"`
	Duration           int      `json:"duration"`
	FastingProtocol    string   `json:"fastingProtocol"`
	ExperienceLevel    string   `json:"experienceLevel"`
	PrimaryGoals       []string `json:"primaryGoals"`
	DailyCalorieTarget int      `json:"dailyCalorieTarget"`
	ClientName         string   `json:"clientName"`
}

// CleanseRequest is the parasite cleanse body. Duration travels as a string.
type CleanseRequest struct {
	PlanName                  string `json:"planName"`
	Duration                  string `json:"duration"`
	Intensity                 string `json:"intensity"`
	ExperienceLevel           string `json:"experienceLevel"`
	HealthcareProviderConsent bool   `json:"healthcareProviderConsent"`
	PregnancyOrBreastfeeding  bool   `json:"pregnancyOrBreastfeeding"`
	ClientName                string `json:"clientName"`
}

// AilmentsRequest is the health condition body
type AilmentsRequest struct {
	PlanName           string                    `json:"planName"`
	Duration           int                       `json:"duration"`
	SelectedAilments   []string                  `json:"selectedAilments"`
	NutritionalFocus   entities.NutritionalFocus `json:"nutritionalFocus"`
	PriorityLevel      string                    `json:"priorityLevel"`
	DailyCalorieTarget int                       `json:"dailyCalorieTarget"`
	ClientName         string                    `json:"clientName"`
}

// Request is a built generation request. Payload is one of LongevityRequest,
// CleanseRequest or AilmentsRequest.
type Request struct {
	Family   planconfig.Family
	Endpoint string
	Payload  any
}

// CalorieTarget maps a calorie restriction to a daily target
func CalorieTarget(r planconfig.CalorieRestriction) int {
	switch r {
	case planconfig.CalorieStrict:
		return 1400
	case planconfig.CalorieModerate:
		return 1600
	case planconfig.CalorieMild:
		return 1800
	}
	return 2000
}

// Build validates cfg for the family and produces the request payload. It never
// performs I/O; rejections wrap ErrValidation.
func Build(cfg planconfig.Configuration, family planconfig.Family, opts BuildOptions) (Request, error) {
	if _, ok := planconfig.ParseFamily(string(family)); !ok {
		return Request{}, ErrUnsupportedFamily
	}
	if !cfg.FamilyEnabled(family) {
		return Request{}, ErrFamilyDisabled
	}
	if cfg.RequiresMedicalConsent() && !cfg.HasValidConsent() {
		return Request{}, ErrConsentRequired
	}

	experience := opts.ExperienceLevel
	if experience == "" {
		experience = defaultExperienceLevel
	}

	switch family {
	case planconfig.FamilyLongevity:
		l := cfg.Longevity
		goals := slices.Clone(opts.PrimaryGoals)
		if len(goals) == 0 {
			goals = longevityGoals(l)
		}
		return Request{
			Family:   family,
			Endpoint: EndpointLongevity,
			Payload: LongevityRequest{
				PlanName:           orDefault(opts.PlanName, "Longevity Plan"),
				Duration:           positiveOr(opts.DurationDays, defaultDurationDays),
				FastingProtocol:    string(l.FastingStrategy),
				ExperienceLevel:    experience,
				PrimaryGoals:       goals,
				DailyCalorieTarget: CalorieTarget(l.CalorieRestriction),
				ClientName:         opts.ClientName,
			},
		}, nil

	case planconfig.FamilyCleanse:
		c := cfg.Cleanse
		return Request{
			Family:   family,
			Endpoint: EndpointCleanse,
			Payload: CleanseRequest{
				PlanName:                  orDefault(opts.PlanName, "Parasite Cleanse Plan"),
				Duration:                  strconv.Itoa(c.DurationDays),
				Intensity:                 string(c.Intensity),
				ExperienceLevel:           experience,
				HealthcareProviderConsent: cfg.Consent.HasHealthcareProviderApproval,
				PregnancyOrBreastfeeding:  opts.PregnancyOrBreastfeeding,
				ClientName:                opts.ClientName,
			},
		}, nil
	}

	a := cfg.Ailments
	focus := entities.NewNutritionalFocus()
	if a.NutritionalFocus != nil {
		focus = *a.NutritionalFocus
	}
	return Request{
		Family:   family,
		Endpoint: EndpointAilments,
		Payload: AilmentsRequest{
			PlanName:           orDefault(opts.PlanName, "Health Conditions Plan"),
			Duration:           positiveOr(opts.DurationDays, defaultDurationDays),
			SelectedAilments:   slices.Clone(a.SelectedAilments),
			NutritionalFocus:   focus,
			PriorityLevel:      string(a.PriorityLevel),
			DailyCalorieTarget: positiveOr(opts.DailyCalorieTarget, defaultCalorieTarget),
			ClientName:         opts.ClientName,
		},
	}, nil
}

func longevityGoals(l planconfig.LongevityConfig) []string {
	goals := []string{"longevity"}
	if l.IncludeAntiInflammatory {
		goals = append(goals, "reduce inflammation")
	}
	if l.IncludeBrainHealth {
		goals = append(goals, "brain health")
	}
	if l.IncludeHeartHealth {
		goals = append(goals, "heart health")
	}
	return goals
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func positiveOr(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
