package validator

import (
	"github.com/go-playground/validator/v10"

	"homevest_backend/internal/models"
)

func registerRules(v *validator.Validate) {
	v.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		switch models.AccountRole(fl.Field().String()) {
		case models.RoleInvestor, models.RoleInstitutional, models.RolePartner, models.RoleAdmin:
			return true
		}
		return false
	})

	v.RegisterValidation("approval_status", func(fl validator.FieldLevel) bool {
		switch models.ApprovalStatus(fl.Field().String()) {
		case models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected:
			return true
		}
		return false
	})

	v.RegisterValidation("campaign_audience", func(fl validator.FieldLevel) bool {
		switch models.CampaignAudience(fl.Field().String()) {
		case models.AudienceAll, models.AudienceInvestors, models.AudiencePartners:
			return true
		}
		return false
	})
}
