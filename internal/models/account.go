package models

import "time"

// CommonInvestor self-registers and is active immediately.
type CommonInvestor struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string `json:"phone"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	EmailVerified bool  `gorm:"default:false" json:"email_verified"`

	// Foreclosure access is a paid add-on.
	HasForeclosureSubscription   bool       `gorm:"default:false" json:"has_foreclosure_subscription"`
	ForeclosureSubscriptionExpiry *time.Time `json:"foreclosure_subscription_expiry,omitempty"`
	SubscriptionPlan             string     `json:"subscription_plan"`

	VerificationToken string `json:"-"`
}

// InstitutionalInvestor is created pending with no credentials; an admin
// approval assigns username/password and activates the account.
type InstitutionalInvestor struct {
	BaseModel
	PersonName      string         `gorm:"not null" json:"person_name"`
	InstitutionName string         `gorm:"not null" json:"institution_name"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone           string         `json:"phone"`
	Username        *string        `gorm:"uniqueIndex" json:"username,omitempty"`
	PasswordHash    string         `json:"-"`
	Status          ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsActive        bool           `gorm:"default:false" json:"is_active"`
}

// Partner (seller) follows the same pending-to-approved lifecycle but
// registers with credentials up front.
type Partner struct {
	BaseModel
	Username       string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	CompanyName    string         `json:"company_name"`
	Phone          string         `json:"phone"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"approval_status"`
	IsActive       bool           `gorm:"default:false" json:"is_active"`
}

// AdminUser is the explicit back-office role table. Admin rights require a
// row here plus a live admin session; no other table can confer them.
type AdminUser struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}
