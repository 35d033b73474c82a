package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/models"
)

func TestNewStoreSeedsSampleData(t *testing.T) {
	s := NewStore()

	admin := s.GetAdminByUsername("admin")
	require.NotNil(t, admin)
	assert.True(t, admin.IsActive)

	inv := s.GetInvestorByUsername("demo")
	require.NotNil(t, inv)
	assert.True(t, inv.HasForeclosureSubscription)

	assert.NotEmpty(t, s.ListProperties())
	assert.NotEmpty(t, s.ListBlogs(true))
}

func TestCreateInvestorAssignsIDAndTimestamps(t *testing.T) {
	s := NewStore()

	created := s.CreateInvestor(&models.CommonInvestor{
		Username: "alice", Email: "alice@example.com", PasswordHash: "x",
	})
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found := s.GetInvestorByUsername("ALICE")
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewStore()

	s.CreateSession(models.RoleInvestor, "owner-1", "tok-live", time.Now().Add(time.Hour))
	s.CreateSession(models.RoleInvestor, "owner-1", "tok-expired", time.Now().Add(-time.Minute))
	s.CreateSession(models.RoleAdmin, "owner-2", "tok-admin", time.Now().Add(time.Hour))

	ownerID, ok := s.LookupSession(models.RoleInvestor, "tok-live")
	require.True(t, ok)
	assert.Equal(t, "owner-1", ownerID)

	// Expired sessions read as absent even before cleanup runs.
	_, ok = s.LookupSession(models.RoleInvestor, "tok-expired")
	assert.False(t, ok)

	removed := s.DeleteExpiredSessions()
	assert.Equal(t, 1, removed)

	// Cleanup must not touch live sessions in any table.
	_, ok = s.LookupSession(models.RoleInvestor, "tok-live")
	assert.True(t, ok)
	_, ok = s.LookupSession(models.RoleAdmin, "tok-admin")
	assert.True(t, ok)
}

func TestDeactivatePropertyKeepsRow(t *testing.T) {
	s := NewStore()
	p := s.CreateProperty(&models.Property{Title: "Test", Address: "1 Main St", IsActive: true})

	require.True(t, s.DeactivateProperty(p.ID))

	for _, listed := range s.ListProperties() {
		assert.NotEqual(t, p.ID, listed.ID, "deactivated listing must not appear publicly")
	}
	got := s.GetPropertyByID(p.ID)
	require.NotNil(t, got, "row survives soft delete")
	assert.False(t, got.IsActive)
}

func TestDeactivateForeclosureKeepsRow(t *testing.T) {
	s := NewStore()
	f := s.CreateForeclosure(&models.ForeclosureListing{Address: "3 Pine St", IsActive: true})

	require.True(t, s.DeactivateForeclosure(f.ID))

	for _, listed := range s.ListForeclosures(true) {
		assert.NotEqual(t, f.ID, listed.ID, "deactivated listing must not appear in active queries")
	}
	got := s.GetForeclosureByID(f.ID)
	require.NotNil(t, got, "row survives soft delete")
	assert.False(t, got.IsActive)
}

func TestToggleForeclosureRoundTrips(t *testing.T) {
	s := NewStore()
	f := s.CreateForeclosure(&models.ForeclosureListing{Address: "5 Oak St", IsActive: true})

	active, ok := s.ToggleForeclosure(f.ID)
	require.True(t, ok)
	assert.False(t, active)

	active, ok = s.ToggleForeclosure(f.ID)
	require.True(t, ok)
	assert.True(t, active)

	_, ok = s.ToggleForeclosure("missing")
	assert.False(t, ok)
}

func TestResultsAreCopies(t *testing.T) {
	s := NewStore()
	p := s.CreateProperty(&models.Property{Title: "Original", Address: "9 Elm St", IsActive: true})

	got := s.GetPropertyByID(p.ID)
	got.Title = "Mutated"

	again := s.GetPropertyByID(p.ID)
	assert.Equal(t, "Original", again.Title)
}
