package models

import "time"

// Three parallel session tables, one per opaque-token role. A session is
// valid only while expires_at is in the future; multiple concurrent sessions
// per owner are allowed. Partners use stateless JWTs and have no table.

type InvestorSession struct {
	BaseModel
	OwnerID   string    `gorm:"not null;index" json:"owner_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

type InstitutionalSession struct {
	BaseModel
	OwnerID   string    `gorm:"not null;index" json:"owner_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

type AdminSession struct {
	BaseModel
	OwnerID   string    `gorm:"not null;index" json:"owner_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// PasswordResetToken rows are never deleted; consumption flips Used so the
// table doubles as an audit trail.
type PasswordResetToken struct {
	BaseModel
	UserID    string      `gorm:"not null;index" json:"user_id"`
	UserType  AccountRole `gorm:"type:varchar(20);not null" json:"user_type"`
	Token     string      `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time   `gorm:"not null" json:"expires_at"`
	Used      bool        `gorm:"default:false" json:"used"`
}
