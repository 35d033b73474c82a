package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

// With a nil database handle the health checker reports demo mode for every
// call, so these tests exercise the full repository dispatch against the
// in-memory store.
func demoSessionRepo() SessionRepository {
	health := database.NewHealthChecker(nil, 0)
	return NewSessionRepository(nil, health, demo.NewStore())
}

func TestSessionResolveRoundTrip(t *testing.T) {
	repo := demoSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.RoleInvestor, "inv-1", "tok-1", time.Now().Add(time.Hour)))

	ownerID, err := repo.Resolve(ctx, models.RoleInvestor, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", ownerID)

	// A token is scoped to its role's table.
	ownerID, err = repo.Resolve(ctx, models.RoleAdmin, "tok-1")
	require.NoError(t, err)
	assert.Empty(t, ownerID)
}

func TestSessionRejectsRoleWithoutTable(t *testing.T) {
	repo := demoSessionRepo()
	ctx := context.Background()

	err := repo.Create(ctx, models.RolePartner, "p-1", "tok", time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = repo.Resolve(ctx, models.RolePartner, "tok")
	assert.Error(t, err)
}

func TestDeleteExpiredRemovesOnlyExpired(t *testing.T) {
	repo := demoSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.RoleInvestor, "inv-1", "live", time.Now().Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, models.RoleInvestor, "inv-1", "dead-1", time.Now().Add(-time.Minute)))
	require.NoError(t, repo.Create(ctx, models.RoleAdmin, "adm-1", "dead-2", time.Now().Add(-time.Hour)))

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	ownerID, err := repo.Resolve(ctx, models.RoleInvestor, "live")
	require.NoError(t, err)
	assert.Equal(t, "inv-1", ownerID)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := demoSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.RoleAdmin, "adm-1", "tok", time.Now().Add(time.Hour)))
	require.NoError(t, repo.Delete(ctx, models.RoleAdmin, "tok"))

	ownerID, err := repo.Resolve(ctx, models.RoleAdmin, "tok")
	require.NoError(t, err)
	assert.Empty(t, ownerID)
}
