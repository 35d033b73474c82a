package models

import "time"

// Property is the main marketplace listing. "Deletion" is soft: IsActive
// flips to false and the row stays retrievable by id.
type Property struct {
	BaseModel
	Title        string  `gorm:"not null" json:"title"`
	Slug         string  `gorm:"index" json:"slug"`
	Description  string  `json:"description"`
	Address      string  `gorm:"not null" json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Zip          string  `json:"zip"`
	Price        float64 `json:"price"`
	Beds         int     `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         int     `json:"sqft"`
	PropertyType string  `json:"property_type"`
	ImageURL     string  `json:"image_url"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
	IsFeatured   bool    `gorm:"default:false" json:"is_featured"`
}

// ForeclosureListing is visible only to investors with an active
// foreclosure subscription (a truncated preview is public).
type ForeclosureListing struct {
	BaseModel
	Address        string     `gorm:"not null" json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Zip            string     `json:"zip"`
	County         string     `json:"county"`
	CaseNumber     string     `json:"case_number"`
	AuctionDate    *time.Time `json:"auction_date,omitempty"`
	OpeningBid     float64    `json:"opening_bid"`
	EstimatedValue float64    `json:"estimated_value"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
}

type Blog struct {
	BaseModel
	Title         string     `gorm:"not null" json:"title"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url"`
	Author        string     `json:"author"`
	Published     bool       `gorm:"default:false" json:"published"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type EmailCampaign struct {
	BaseModel
	Subject        string           `gorm:"not null" json:"subject"`
	Body           string           `json:"body"`
	Audience       CampaignAudience `gorm:"type:varchar(20);default:'all'" json:"audience"`
	Status         CampaignStatus   `gorm:"type:varchar(20);default:'draft'" json:"status"`
	SentAt         *time.Time       `json:"sent_at,omitempty"`
	RecipientCount int              `json:"recipient_count"`
}

// Offer references a property and one of the two investor tables; the
// InvestorType discriminator says which.
type Offer struct {
	BaseModel
	PropertyID   string      `gorm:"not null;index" json:"property_id"`
	InvestorID   string      `gorm:"not null;index" json:"investor_id"`
	InvestorType AccountRole `gorm:"type:varchar(20);not null" json:"investor_type"`
	Amount       float64     `gorm:"not null" json:"amount"`
	Message      string      `json:"message"`
	Status       OfferStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}

type Lead struct {
	BaseModel
	Name       string     `gorm:"not null" json:"name"`
	Email      string     `gorm:"not null" json:"email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	Source     string     `json:"source"`
	PropertyID *string    `json:"property_id,omitempty"`
	Status     LeadStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
}
