// Package health provides health checking functionality for the protocols API.
package health

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/giygas/protocols-api/interfaces"
)

const pingTimeout = 2 * time.Second

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	catalog   interfaces.CatalogStore
	sessions  interfaces.SessionStore
	store     interfaces.PlanStore
	startTime time.Time
}

// NewHealthChecker creates a new health checker with injected dependencies.
// store may be nil when persistence is disabled.
func NewHealthChecker(catalog interfaces.CatalogStore, sessions interfaces.SessionStore,
	store interfaces.PlanStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		catalog:   catalog,
		sessions:  sessions,
		store:     store,
		startTime: time.Now(),
	}
}

// HealthCheck returns the status used by the /health endpoint.
// An empty catalog makes the service unhealthy. An unreachable plan store only
// degrades it since persistence is best-effort.
func (h *HealthCheckerImpl) HealthCheck(ctx context.Context) (status string, data map[string]any, httpStatus int) {
	ailments := len(h.catalog.Ailments())
	protocols := len(h.catalog.Protocols())

	storeStatus := "disabled"
	var storeErr error
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		storeErr = h.store.Ping(pingCtx)
		cancel()
		storeStatus = "ok"
		if storeErr != nil {
			storeStatus = "unreachable"
		}
	}

	switch {
	case ailments == 0 || protocols == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case storeErr != nil:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	activeSessions := 0
	if h.sessions != nil {
		activeSessions = h.sessions.Count()
	}

	data = map[string]any{
		"ailments":        ailments,
		"protocols":       protocols,
		"active_sessions": activeSessions,
		"plan_store":      storeStatus,
		"uptime_seconds":  math.Round(time.Since(h.startTime).Seconds()),
	}
	if storeErr != nil {
		data["plan_store_error"] = storeErr.Error()
	}

	return status, data, httpStatus
}
