package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"homevest_backend/internal/logger"
)

// HealthChecker answers one question: can we use the real database right
// now? The decision is re-evaluated once per request, so an outage
// mid-process degrades to demo data and recovery restores live data without
// a restart.
type HealthChecker struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewHealthChecker(db *gorm.DB, timeout time.Duration) *HealthChecker {
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &HealthChecker{db: db, timeout: timeout}
}

type probeKey struct{}

// WithProbe runs the reachability probe once and stamps the result into the
// context. Every DemoMode call seeing that context reuses the answer, so a
// request pays at most one ping no matter how many repository calls it makes.
func (h *HealthChecker) WithProbe(ctx context.Context) context.Context {
	return context.WithValue(ctx, probeKey{}, h.probe(ctx))
}

// DemoMode reports whether the current call should be served from the demo
// store. True when no database was configured or the ping fails within the
// bounded timeout. A probe result cached by WithProbe takes precedence.
func (h *HealthChecker) DemoMode(ctx context.Context) bool {
	if demo, ok := ctx.Value(probeKey{}).(bool); ok {
		return demo
	}
	return h.probe(ctx)
}

func (h *HealthChecker) probe(ctx context.Context) bool {
	if h == nil || h.db == nil {
		return true
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.CtxWarn(ctx, "database handle unavailable, serving demo data", "error", err.Error())
		return true
	}

	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		logger.CtxWarn(ctx, "database ping failed, serving demo data", "error", err.Error())
		return true
	}
	return false
}

// DB exposes the underlying handle for repositories. Nil in demo-only runs.
func (h *HealthChecker) DB() *gorm.DB {
	if h == nil {
		return nil
	}
	return h.db
}
