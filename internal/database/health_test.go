package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoModeWithoutDatabase(t *testing.T) {
	h := NewHealthChecker(nil, 0)
	assert.True(t, h.DemoMode(context.Background()))

	var nilChecker *HealthChecker
	assert.True(t, nilChecker.DemoMode(context.Background()))
}

func TestWithProbeStampsResultIntoContext(t *testing.T) {
	h := NewHealthChecker(nil, 0)

	ctx := h.WithProbe(context.Background())
	assert.True(t, h.DemoMode(ctx))
}

func TestDemoModePrefersCachedProbe(t *testing.T) {
	h := NewHealthChecker(nil, 0)

	// A nil database always probes as demo; a cached "live" answer winning
	// over it proves DemoMode consults the context before re-probing.
	ctx := context.WithValue(context.Background(), probeKey{}, false)
	require.False(t, h.DemoMode(ctx))

	ctx = context.WithValue(context.Background(), probeKey{}, true)
	assert.True(t, h.DemoMode(ctx))
}
