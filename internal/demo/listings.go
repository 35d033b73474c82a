package demo

import (
	"sort"
	"strings"
	"time"

	"homevest_backend/internal/models"
)

// Listing, blog, campaign, offer, and lead operations.

func (s *Store) CreateProperty(p *models.Property) *models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	stamp(&cp.BaseModel)
	s.properties[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetPropertyByID(id string) *models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.properties[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

// ListProperties returns active listings only, newest first. Admin views
// that need retired rows use ListAllProperties.
func (s *Store) ListProperties() []*models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(p *models.Property) time.Time { return p.CreatedAt })
	return out
}

func (s *Store) ListAllProperties() []*models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		cp := *p
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(p *models.Property) time.Time { return p.CreatedAt })
	return out
}

func (s *Store) UpdateProperty(p *models.Property) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[p.ID]; !ok {
		return false
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	s.properties[cp.ID] = &cp
	return true
}

// DeactivateProperty is the soft delete: the row stays, public listing
// queries skip it.
func (s *Store) DeactivateProperty(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return false
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	return true
}

func (s *Store) CreateForeclosure(f *models.ForeclosureListing) *models.ForeclosureListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	stamp(&cp.BaseModel)
	s.foreclosures[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetForeclosureByID(id string) *models.ForeclosureListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.foreclosures[id]; ok {
		cp := *f
		return &cp
	}
	return nil
}

func (s *Store) ListForeclosures(activeOnly bool) []*models.ForeclosureListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ForeclosureListing, 0, len(s.foreclosures))
	for _, f := range s.foreclosures {
		if activeOnly && !f.IsActive {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(f *models.ForeclosureListing) time.Time { return f.CreatedAt })
	return out
}

func (s *Store) UpdateForeclosure(f *models.ForeclosureListing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foreclosures[f.ID]; !ok {
		return false
	}
	cp := *f
	cp.UpdatedAt = time.Now()
	s.foreclosures[cp.ID] = &cp
	return true
}

// ToggleForeclosure flips IsActive and returns the new value.
func (s *Store) ToggleForeclosure(id string) (active bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, found := s.foreclosures[id]
	if !found {
		return false, false
	}
	f.IsActive = !f.IsActive
	f.UpdatedAt = time.Now()
	return f.IsActive, true
}

// DeactivateForeclosure is the soft delete: the row stays for admin views,
// active-only queries skip it.
func (s *Store) DeactivateForeclosure(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.foreclosures[id]
	if !ok {
		return false
	}
	f.IsActive = false
	f.UpdatedAt = time.Now()
	return true
}

func (s *Store) CreateBlog(b *models.Blog) *models.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	stamp(&cp.BaseModel)
	s.blogs[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetBlogByID(id string) *models.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.blogs[id]; ok {
		cp := *b
		return &cp
	}
	return nil
}

func (s *Store) GetBlogBySlug(slug string) *models.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blogs {
		if strings.EqualFold(b.Slug, slug) {
			cp := *b
			return &cp
		}
	}
	return nil
}

func (s *Store) ListBlogs(publishedOnly bool) []*models.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		if publishedOnly && !b.Published {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(b *models.Blog) time.Time { return b.CreatedAt })
	return out
}

func (s *Store) UpdateBlog(b *models.Blog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[b.ID]; !ok {
		return false
	}
	cp := *b
	cp.UpdatedAt = time.Now()
	s.blogs[cp.ID] = &cp
	return true
}

func (s *Store) DeleteBlog(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blogs[id]; !ok {
		return false
	}
	delete(s.blogs, id)
	return true
}

func (s *Store) CreateCampaign(c *models.EmailCampaign) *models.EmailCampaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	stamp(&cp.BaseModel)
	s.campaigns[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetCampaignByID(id string) *models.EmailCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.campaigns[id]; ok {
		cp := *c
		return &cp
	}
	return nil
}

func (s *Store) ListCampaigns() []*models.EmailCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.EmailCampaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		cp := *c
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(c *models.EmailCampaign) time.Time { return c.CreatedAt })
	return out
}

func (s *Store) UpdateCampaign(c *models.EmailCampaign) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[c.ID]; !ok {
		return false
	}
	cp := *c
	cp.UpdatedAt = time.Now()
	s.campaigns[cp.ID] = &cp
	return true
}

func (s *Store) DeleteCampaign(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[id]; !ok {
		return false
	}
	delete(s.campaigns, id)
	return true
}

func (s *Store) CreateOffer(o *models.Offer) *models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	stamp(&cp.BaseModel)
	s.offers[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetOfferByID(id string) *models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.offers[id]; ok {
		cp := *o
		return &cp
	}
	return nil
}

// ListOffers filters by property and/or investor; empty strings match all.
func (s *Store) ListOffers(propertyID, investorID string) []*models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if propertyID != "" && o.PropertyID != propertyID {
			continue
		}
		if investorID != "" && o.InvestorID != investorID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(o *models.Offer) time.Time { return o.CreatedAt })
	return out
}

func (s *Store) UpdateOffer(o *models.Offer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[o.ID]; !ok {
		return false
	}
	cp := *o
	cp.UpdatedAt = time.Now()
	s.offers[cp.ID] = &cp
	return true
}

func (s *Store) CreateLead(l *models.Lead) *models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	stamp(&cp.BaseModel)
	s.leads[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetLeadByID(id string) *models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.leads[id]; ok {
		cp := *l
		return &cp
	}
	return nil
}

func (s *Store) ListLeads() []*models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		cp := *l
		out = append(out, &cp)
	}
	sortByCreatedDesc(out, func(l *models.Lead) time.Time { return l.CreatedAt })
	return out
}

func (s *Store) UpdateLead(l *models.Lead) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[l.ID]; !ok {
		return false
	}
	cp := *l
	cp.UpdatedAt = time.Now()
	s.leads[cp.ID] = &cp
	return true
}

func sortByCreatedDesc[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
}
