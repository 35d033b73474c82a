package models

// AccountRole names the four principal types. Each role has its own table;
// admin rights come from membership in admin_users, never from a username.
type AccountRole string

const (
	RoleInvestor      AccountRole = "investor"
	RoleInstitutional AccountRole = "institutional"
	RolePartner       AccountRole = "partner"
	RoleAdmin         AccountRole = "admin"
)

// ApprovalStatus is the lifecycle of accounts that require admin approval.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferAccepted  OfferStatus = "accepted"
	OfferDeclined  OfferStatus = "declined"
	OfferWithdrawn OfferStatus = "withdrawn"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadClosed    LeadStatus = "closed"
)

type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "draft"
	CampaignSending CampaignStatus = "sending"
	CampaignSent    CampaignStatus = "sent"
	CampaignFailed  CampaignStatus = "failed"
)

// CampaignAudience selects which account tables a campaign mails to.
type CampaignAudience string

const (
	AudienceAll       CampaignAudience = "all"
	AudienceInvestors CampaignAudience = "investors"
	AudiencePartners  CampaignAudience = "partners"
)
