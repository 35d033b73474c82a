package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/models"
)

// SessionRepository manages the three opaque-token session tables. The role
// argument selects the table; partners are JWT-only and are rejected here.
type SessionRepository interface {
	Create(ctx context.Context, role models.AccountRole, ownerID, token string, expiresAt time.Time) error
	// Resolve returns the owner id for a live session, or ("", nil) when the
	// token is unknown or expired.
	Resolve(ctx context.Context, role models.AccountRole, token string) (string, error)
	Delete(ctx context.Context, role models.AccountRole, token string) error
	// DeleteExpired removes sessions whose expiry has passed, across all
	// three tables, and returns the number removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db     *gorm.DB
	health *database.HealthChecker
	store  *demo.Store
}

func NewSessionRepository(db *gorm.DB, health *database.HealthChecker, store *demo.Store) SessionRepository {
	return &sessionRepository{db: db, health: health, store: store}
}

func sessionModel(role models.AccountRole) (interface{}, error) {
	switch role {
	case models.RoleInvestor:
		return &models.InvestorSession{}, nil
	case models.RoleInstitutional:
		return &models.InstitutionalSession{}, nil
	case models.RoleAdmin:
		return &models.AdminSession{}, nil
	default:
		return nil, fmt.Errorf("role %q has no session table", role)
	}
}

func (r *sessionRepository) Create(ctx context.Context, role models.AccountRole, ownerID, token string, expiresAt time.Time) error {
	if _, err := sessionModel(role); err != nil {
		return err
	}
	if r.health.DemoMode(ctx) {
		r.store.CreateSession(role, ownerID, token, expiresAt)
		return nil
	}
	switch role {
	case models.RoleInvestor:
		return r.db.WithContext(ctx).Create(&models.InvestorSession{OwnerID: ownerID, Token: token, ExpiresAt: expiresAt}).Error
	case models.RoleInstitutional:
		return r.db.WithContext(ctx).Create(&models.InstitutionalSession{OwnerID: ownerID, Token: token, ExpiresAt: expiresAt}).Error
	default:
		return r.db.WithContext(ctx).Create(&models.AdminSession{OwnerID: ownerID, Token: token, ExpiresAt: expiresAt}).Error
	}
}

func (r *sessionRepository) Resolve(ctx context.Context, role models.AccountRole, token string) (string, error) {
	model, err := sessionModel(role)
	if err != nil {
		return "", err
	}
	if r.health.DemoMode(ctx) {
		ownerID, ok := r.store.LookupSession(role, token)
		if !ok {
			return "", nil
		}
		return ownerID, nil
	}

	// The expiry predicate is part of the query: an expired session is
	// indistinguishable from a missing one.
	var row struct{ OwnerID string }
	err = r.db.WithContext(ctx).Model(model).
		Select("owner_id").
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&row).Error
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.OwnerID, nil
}

func (r *sessionRepository) Delete(ctx context.Context, role models.AccountRole, token string) error {
	model, err := sessionModel(role)
	if err != nil {
		return err
	}
	if r.health.DemoMode(ctx) {
		r.store.DeleteSession(role, token)
		return nil
	}
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(model).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if r.health.DemoMode(ctx) {
		return int64(r.store.DeleteExpiredSessions()), nil
	}
	var total int64
	now := time.Now()
	for _, model := range []interface{}{
		&models.InvestorSession{},
		&models.InstitutionalSession{},
		&models.AdminSession{},
	} {
		res := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(model)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}
