package demo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"homevest_backend/internal/models"
)

// Store is the in-process fallback behind every repository. When the
// database is unreachable a request is served from here instead of failing.
// Writes land in memory only and vanish on restart; that is acceptable for
// a demo surface and documented in the API via the X-Data-Mode header.
//
// All maps are guarded by a single RWMutex. Methods return copies so
// callers can mutate results without racing the store.
type Store struct {
	mu sync.RWMutex

	investors     map[string]*models.CommonInvestor
	institutional map[string]*models.InstitutionalInvestor
	partners      map[string]*models.Partner
	admins        map[string]*models.AdminUser

	sessions    map[models.AccountRole]map[string]*sessionRec
	resetTokens map[string]*models.PasswordResetToken

	properties   map[string]*models.Property
	foreclosures map[string]*models.ForeclosureListing
	blogs        map[string]*models.Blog
	campaigns    map[string]*models.EmailCampaign
	offers       map[string]*models.Offer
	leads        map[string]*models.Lead
}

type sessionRec struct {
	ID        string
	OwnerID   string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewStore builds a store pre-seeded with sample accounts and listings.
// Seed credentials use plain text and only authenticate in runs without a
// configured database, where the plain hasher is active.
func NewStore() *Store {
	s := &Store{
		investors:     make(map[string]*models.CommonInvestor),
		institutional: make(map[string]*models.InstitutionalInvestor),
		partners:      make(map[string]*models.Partner),
		admins:        make(map[string]*models.AdminUser),
		sessions: map[models.AccountRole]map[string]*sessionRec{
			models.RoleInvestor:      {},
			models.RoleInstitutional: {},
			models.RoleAdmin:         {},
		},
		resetTokens:  make(map[string]*models.PasswordResetToken),
		properties:   make(map[string]*models.Property),
		foreclosures: make(map[string]*models.ForeclosureListing),
		blogs:        make(map[string]*models.Blog),
		campaigns:    make(map[string]*models.EmailCampaign),
		offers:       make(map[string]*models.Offer),
		leads:        make(map[string]*models.Lead),
	}
	s.seed()
	return s
}

func newID() string { return uuid.NewString() }

func stamp(b *models.BaseModel) {
	now := time.Now()
	if b.ID == "" {
		b.ID = newID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (s *Store) seed() {
	now := time.Now()

	admin := &models.AdminUser{
		Username:     "admin",
		PasswordHash: "admin123",
		IsActive:     true,
	}
	stamp(&admin.BaseModel)
	s.admins[admin.ID] = admin

	demoInvestor := &models.CommonInvestor{
		Username:                   "demo",
		PasswordHash:               "demo123",
		Email:                      "demo@example.com",
		Phone:                      "+1-555-0100",
		IsActive:                   true,
		EmailVerified:              true,
		HasForeclosureSubscription: true,
		SubscriptionPlan:           "monthly",
	}
	expiry := now.AddDate(0, 1, 0)
	demoInvestor.ForeclosureSubscriptionExpiry = &expiry
	stamp(&demoInvestor.BaseModel)
	s.investors[demoInvestor.ID] = demoInvestor

	for _, p := range sampleProperties() {
		stamp(&p.BaseModel)
		s.properties[p.ID] = p
	}
	for _, f := range sampleForeclosures() {
		stamp(&f.BaseModel)
		s.foreclosures[f.ID] = f
	}
	for _, b := range sampleBlogs() {
		stamp(&b.BaseModel)
		s.blogs[b.ID] = b
	}
}

func sampleProperties() []*models.Property {
	return []*models.Property{
		{
			Title: "Renovated Craftsman Bungalow", Slug: "renovated-craftsman-bungalow",
			Description: "Fully renovated three bedroom craftsman with a new roof and HVAC.",
			Address:     "412 Maple Ave", City: "Atlanta", State: "GA", Zip: "30312",
			Price: 289000, Beds: 3, Baths: 2, Sqft: 1480,
			PropertyType: "single_family", IsActive: true, IsFeatured: true,
		},
		{
			Title: "Brick Duplex Near Midtown", Slug: "brick-duplex-near-midtown",
			Description: "Tenant occupied duplex, 7.1% cap rate at asking.",
			Address:     "88 Linden St", City: "Atlanta", State: "GA", Zip: "30308",
			Price: 415000, Beds: 4, Baths: 2, Sqft: 2100,
			PropertyType: "multi_family", IsActive: true,
		},
		{
			Title: "Lakefront Fixer Upper", Slug: "lakefront-fixer-upper",
			Description: "Needs cosmetic work, strong ARV comps on the same street.",
			Address:     "17 Shoreline Dr", City: "Gainesville", State: "GA", Zip: "30501",
			Price: 164500, Beds: 2, Baths: 1, Sqft: 1120,
			PropertyType: "single_family", IsActive: true,
		},
		{
			Title: "Downtown Condo With Parking", Slug: "downtown-condo-with-parking",
			Description: "Ninth floor corner unit, deeded parking spot included.",
			Address:     "255 Peachtree St Unit 904", City: "Atlanta", State: "GA", Zip: "30303",
			Price: 232000, Beds: 1, Baths: 1, Sqft: 780,
			PropertyType: "condo", IsActive: true,
		},
		{
			Title: "Suburban Ranch On Half Acre", Slug: "suburban-ranch-on-half-acre",
			Description: "One level living, fenced yard, new water heater.",
			Address:     "1901 Willow Bend Ct", City: "Marietta", State: "GA", Zip: "30062",
			Price: 348000, Beds: 3, Baths: 2, Sqft: 1750,
			PropertyType: "single_family", IsActive: true, IsFeatured: true,
		},
		{
			Title: "Retired Listing", Slug: "retired-listing",
			Description: "Kept for history, not shown in public search.",
			Address:     "7 Old Mill Rd", City: "Decatur", State: "GA", Zip: "30030",
			Price: 199000, Beds: 2, Baths: 1, Sqft: 980,
			PropertyType: "single_family", IsActive: false,
		},
	}
}

func sampleForeclosures() []*models.ForeclosureListing {
	nextAuction := time.Now().AddDate(0, 0, 21)
	later := time.Now().AddDate(0, 1, 14)
	return []*models.ForeclosureListing{
		{
			Address: "540 Birchwood Ln", City: "Atlanta", State: "GA", Zip: "30310",
			County: "Fulton", CaseNumber: "24-FC-01187",
			AuctionDate: &nextAuction, OpeningBid: 98000, EstimatedValue: 215000,
			IsActive: true,
		},
		{
			Address: "23 Cypress Hollow", City: "Lawrenceville", State: "GA", Zip: "30043",
			County: "Gwinnett", CaseNumber: "24-FC-02240",
			AuctionDate: &later, OpeningBid: 142500, EstimatedValue: 268000,
			IsActive: true,
		},
		{
			Address: "702 Granite Way", City: "Stone Mountain", State: "GA", Zip: "30083",
			County: "DeKalb", CaseNumber: "23-FC-09912",
			OpeningBid: 76000, EstimatedValue: 158000,
			IsActive: false,
		},
	}
}

func sampleBlogs() []*models.Blog {
	published := time.Now().AddDate(0, 0, -12)
	recent := time.Now().AddDate(0, 0, -3)
	return []*models.Blog{
		{
			Title: "Reading a Foreclosure Auction Notice", Slug: "reading-a-foreclosure-auction-notice",
			Excerpt: "What the case number, opening bid, and sale date actually tell you.",
			Content: "Every county publishes auction notices in a slightly different format...",
			Author:  "HomeVest Team", Published: true, PublishedAt: &published,
		},
		{
			Title: "Cap Rate vs Cash-on-Cash", Slug: "cap-rate-vs-cash-on-cash",
			Excerpt: "Two return metrics, two different questions.",
			Content: "Cap rate ignores financing on purpose. Cash-on-cash does not...",
			Author:  "HomeVest Team", Published: true, PublishedAt: &recent,
		},
		{
			Title: "2026 Market Outlook (draft)", Slug: "2026-market-outlook",
			Excerpt: "Where we think inventory is heading.",
			Content: "Draft. Do not publish until the Q3 numbers land.",
			Author:  "HomeVest Team", Published: false,
		},
	}
}
