package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/metrics"
	"github.com/giygas/protocols-api/planconfig"
)

// Generator sends a payload to a generation endpoint
type Generator interface {
	Generate(ctx context.Context, endpoint string, payload any) (json.RawMessage, error)
}

// Store receives plan summaries after a successful generation
type Store interface {
	SavePlan(ctx context.Context, plan entities.PlanRecord) (string, error)
}

// Result is returned for every successful generation, stored or not
type Result struct {
	Family           planconfig.Family `json:"family"`
	Plan             json.RawMessage   `json:"plan"`
	PlanID           string            `json:"planId,omitempty"`
	PersistenceError string            `json:"persistenceError,omitempty"`
}

type Service struct {
	generator Generator
	store     Store
	now       func() time.Time
}

// NewService wires a generator and an optional store. With a nil store plans are
// generated but never persisted.
func NewService(generator Generator, store Store) *Service {
	return &Service{generator: generator, store: store, now: time.Now}
}

// Generate builds the request, calls the generator and then persists a summary.
// Persistence runs strictly after the generation response is decoded and its
// failure never fails the call.
func (s *Service) Generate(ctx context.Context, cfg planconfig.Configuration, family planconfig.Family, opts BuildOptions) (Result, error) {
	req, err := Build(cfg, family, opts)
	if err != nil {
		metrics.GenerationRequests.WithLabelValues(string(family), metrics.OutcomeRejected).Inc()
		return Result{}, err
	}

	start := time.Now()
	plan, err := s.generator.Generate(ctx, req.Endpoint, req.Payload)
	if err != nil {
		metrics.GenerationRequests.WithLabelValues(string(family), metrics.OutcomeFailed).Inc()
		logging.Error("Plan generation failed", "family", family, "endpoint", req.Endpoint, "error", err)
		return Result{}, err
	}
	metrics.GenerationRequests.WithLabelValues(string(family), metrics.OutcomeSuccess).Inc()
	logging.Info("Plan generated", "family", family, "duration", time.Since(start))

	result := Result{Family: family, Plan: plan}
	if s.store == nil {
		return result, nil
	}

	record, err := Summarize(req, plan)
	if err == nil {
		record.CreatedAt = s.now().UTC()
		result.PlanID, err = s.store.SavePlan(ctx, record)
	}
	if err != nil {
		metrics.PlanPersistenceFailures.Inc()
		logging.Warn("Failed to persist generated plan", "family", family, "error", err)
		result.PersistenceError = err.Error()
		result.PlanID = ""
	}

	return result, nil
}

// Summarize turns a request and its generated plan into the stored record.
// Ailment based plans are stored under the longevity type.
func Summarize(req Request, plan json.RawMessage) (entities.PlanRecord, error) {
	original, err := json.Marshal(req.Payload)
	if err != nil {
		return entities.PlanRecord{}, fmt.Errorf("encode original request: %w", err)
	}

	record := entities.PlanRecord{
		Config: entities.PlanConfig{
			OriginalRequest: original,
			GeneratedPlan:   slices.Clone(plan),
		},
	}

	switch p := req.Payload.(type) {
	case LongevityRequest:
		record.Name = p.PlanName
		record.Description = fmt.Sprintf("Longevity plan with %s fasting and a %d kcal daily target", p.FastingProtocol, p.DailyCalorieTarget)
		record.Type = entities.PlanTypeLongevity
		record.Duration = p.Duration
		record.Intensity = intensityForCalories(p.DailyCalorieTarget)
		record.Tags = []string{string(planconfig.FamilyLongevity), "fasting_" + p.FastingProtocol}
	case CleanseRequest:
		record.Name = p.PlanName
		record.Description = fmt.Sprintf("%s day %s parasite cleanse", p.Duration, p.Intensity)
		record.Type = entities.PlanTypeParasiteCleanse
		record.Duration = atoiOr(p.Duration, 0)
		record.Intensity = entities.Intensity(p.Intensity)
		record.Tags = []string{string(entities.PlanTypeParasiteCleanse), p.Intensity}
	case AilmentsRequest:
		record.Name = p.PlanName
		record.Description = fmt.Sprintf("Nutrition plan targeting %d health conditions", len(p.SelectedAilments))
		record.Type = entities.PlanTypeLongevity
		record.Duration = p.Duration
		record.Intensity = intensityForPriority(p.PriorityLevel)
		record.Tags = append([]string{string(planconfig.FamilyAilments)}, p.SelectedAilments...)
	default:
		return entities.PlanRecord{}, fmt.Errorf("%w: payload %T", ErrUnsupportedFamily, req.Payload)
	}

	return record, nil
}

func intensityForCalories(target int) entities.Intensity {
	switch {
	case target <= CalorieTarget(planconfig.CalorieStrict):
		return entities.IntensityIntensive
	case target <= CalorieTarget(planconfig.CalorieModerate):
		return entities.IntensityModerate
	}
	return entities.IntensityGentle
}

func intensityForPriority(p string) entities.Intensity {
	switch planconfig.PriorityLevel(p) {
	case planconfig.PriorityHigh:
		return entities.IntensityIntensive
	case planconfig.PriorityMedium:
		return entities.IntensityModerate
	}
	return entities.IntensityGentle
}
