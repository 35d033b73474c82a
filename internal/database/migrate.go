package database

import (
	"fmt"

	"gorm.io/gorm"

	"homevest_backend/internal/models"
)

// Migrate auto-migrates the full schema. Safe to call on every start.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	err := db.AutoMigrate(
		&models.CommonInvestor{},
		&models.InstitutionalInvestor{},
		&models.Partner{},
		&models.AdminUser{},
		&models.InvestorSession{},
		&models.InstitutionalSession{},
		&models.AdminSession{},
		&models.PasswordResetToken{},
		&models.Property{},
		&models.ForeclosureListing{},
		&models.Blog{},
		&models.EmailCampaign{},
		&models.Offer{},
		&models.Lead{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
