// Package health provides a registry of named subsystem health checkers and
// an HTTP handler for the diagnostics listener.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status represents the health of a single subsystem.
type Status struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

// Report is the aggregate of one CheckAll pass.
type Report struct {
	Healthy    bool      `json:"healthy"`
	Subsystems []Status  `json:"subsystems"`
	CheckedAt  time.Time `json:"checked_at"`
}

// Checker is a function that checks the health of a subsystem.
type Checker func(ctx context.Context) Status

// Registry holds named health checkers and runs them on demand.
type Registry struct {
	mu       sync.RWMutex
	checkers []namedChecker
}

type namedChecker struct {
	name  string
	check Checker
}

// NewRegistry creates a new health check registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a named health checker.
func (r *Registry) Register(name string, check Checker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, namedChecker{name: name, check: check})
	r.mu.Unlock()
}

// CheckAll runs all registered checkers and returns the aggregate report.
func (r *Registry) CheckAll(ctx context.Context) Report {
	r.mu.RLock()
	checkers := make([]namedChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	report := Report{
		Healthy:    true,
		Subsystems: make([]Status, len(checkers)),
		CheckedAt:  time.Now().UTC(),
	}

	for i, nc := range checkers {
		report.Subsystems[i] = nc.check(ctx)
		if !report.Subsystems[i].Healthy {
			report.Healthy = false
		}
	}

	return report
}

// Handler serves the report as JSON: 200 when healthy, 503 otherwise.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		report := r.CheckAll(req.Context())

		w.Header().Set("Content-Type", "application/json")
		if !report.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(report)
	})
}
