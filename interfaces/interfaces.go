// Package interfaces defines the core abstractions of the protocols API so that
// handlers, health checks and the scheduler can be tested against fakes.
package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/generation"
	"github.com/giygas/protocols-api/planconfig"
	"github.com/giygas/protocols-api/sessions"
)

// CatalogQualityReport summarises non-fatal data problems found in the catalog
type CatalogQualityReport struct {
	AilmentsWithoutSymptoms   []string
	AilmentsWithoutDisclaimer int
	UnresolvedTargetAilments  map[string][]string // protocol id -> ailment ids
	PhaseDurationMismatches   []string            // protocol ids
	UnresolvedHintProtocols   []string
	ProtocolsWithoutHerbs     []string
}

// CatalogStore gives read-only access to the ailment and protocol catalog.
// Implementations are immutable and safe for concurrent use.
type CatalogStore interface {
	Categories() []entities.AilmentCategory
	Category(id string) (entities.AilmentCategory, bool)
	Ailments() []entities.Ailment
	Lookup(id string) (entities.Ailment, bool)
	AilmentPosition(id string) (int, bool)
	ByCategory(categoryID string) []entities.Ailment
	Search(query string) []entities.Ailment

	Protocols() []entities.Protocol
	Protocol(id string) (entities.Protocol, bool)
	Hints(ailmentID string) []string
}

// SessionStore holds the per-session configuration aggregators
type SessionStore interface {
	Create() *sessions.Session
	Get(id string) (*sessions.Session, bool)
	Delete(id string) bool
	Count() int
	SweepIdle(maxIdle time.Duration) int
}

// PlanStore persists generated plan summaries
type PlanStore interface {
	SavePlan(ctx context.Context, plan entities.PlanRecord) (string, error)
	GetPlan(ctx context.Context, id string) (entities.PlanRecord, error)
	Ping(ctx context.Context) error
}

// PlanService builds a generation request from a configuration, calls the
// generator and stores the result
type PlanService interface {
	Generate(ctx context.Context, cfg planconfig.Configuration, family planconfig.Family,
		opts generation.BuildOptions) (generation.Result, error)
}

// Scheduler manages background jobs
type Scheduler interface {
	Start() error
	Stop()
}

// HTTPHandler is the contract of the JSON API handlers
type HTTPHandler interface {
	ListCategories(w http.ResponseWriter, r *http.Request)
	ListAilments(w http.ResponseWriter, r *http.Request)
	GetAilment(w http.ResponseWriter, r *http.Request)
	ListProtocols(w http.ResponseWriter, r *http.Request)
	GetProtocol(w http.ResponseWriter, r *http.Request)
	AggregateNutrition(w http.ResponseWriter, r *http.Request)
	RecommendProtocols(w http.ResponseWriter, r *http.Request)

	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
	UpdateLongevity(w http.ResponseWriter, r *http.Request)
	UpdateCleanse(w http.ResponseWriter, r *http.Request)
	UpdateAilmentSettings(w http.ResponseWriter, r *http.Request)
	SelectAilment(w http.ResponseWriter, r *http.Request)
	DeselectAilment(w http.ResponseWriter, r *http.Request)
	UpdateProgress(w http.ResponseWriter, r *http.Request)
	EnableProtocol(w http.ResponseWriter, r *http.Request)
	DisableProtocol(w http.ResponseWriter, r *http.Request)
	AcceptConsent(w http.ResponseWriter, r *http.Request)
	DeclineConsent(w http.ResponseWriter, r *http.Request)
	GeneratePlan(w http.ResponseWriter, r *http.Request)
	GetPlan(w http.ResponseWriter, r *http.Request)

	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker reports the service health
type HealthChecker interface {
	// HealthCheck returns the status string, details and the HTTP status to answer with
	HealthCheck(ctx context.Context) (status string, details map[string]any, httpStatus int)
}

// DataValidator validates the catalog at startup and user supplied input
type DataValidator interface {
	ValidateCatalog(catalog CatalogStore) error
	ReportCatalogQuality(catalog CatalogStore) *CatalogQualityReport
	ValidateInput(input string) error
	ValidateIdentifier(id string) error
}
