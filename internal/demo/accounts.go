package demo

import (
	"strings"
	"time"

	"homevest_backend/internal/models"
)

// Account and session operations. Lookups return nil for not-found, matching
// the repository contract.

func (s *Store) CreateInvestor(inv *models.CommonInvestor) *models.CommonInvestor {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *inv
	stamp(&cp.BaseModel)
	s.investors[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetInvestorByID(id string) *models.CommonInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inv, ok := s.investors[id]; ok {
		cp := *inv
		return &cp
	}
	return nil
}

func (s *Store) GetInvestorByUsername(username string) *models.CommonInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.investors {
		if strings.EqualFold(inv.Username, username) {
			cp := *inv
			return &cp
		}
	}
	return nil
}

func (s *Store) GetInvestorByEmail(email string) *models.CommonInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.investors {
		if strings.EqualFold(inv.Email, email) {
			cp := *inv
			return &cp
		}
	}
	return nil
}

func (s *Store) ListInvestors() []*models.CommonInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CommonInvestor, 0, len(s.investors))
	for _, inv := range s.investors {
		cp := *inv
		out = append(out, &cp)
	}
	return out
}

func (s *Store) UpdateInvestor(inv *models.CommonInvestor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investors[inv.ID]; !ok {
		return false
	}
	cp := *inv
	cp.UpdatedAt = time.Now()
	s.investors[cp.ID] = &cp
	return true
}

func (s *Store) DeleteInvestor(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investors[id]; !ok {
		return false
	}
	delete(s.investors, id)
	return true
}

func (s *Store) CreateInstitutional(ii *models.InstitutionalInvestor) *models.InstitutionalInvestor {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ii
	stamp(&cp.BaseModel)
	s.institutional[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetInstitutionalByID(id string) *models.InstitutionalInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ii, ok := s.institutional[id]; ok {
		cp := *ii
		return &cp
	}
	return nil
}

func (s *Store) GetInstitutionalByUsername(username string) *models.InstitutionalInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ii := range s.institutional {
		if ii.Username != nil && strings.EqualFold(*ii.Username, username) {
			cp := *ii
			return &cp
		}
	}
	return nil
}

func (s *Store) GetInstitutionalByEmail(email string) *models.InstitutionalInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ii := range s.institutional {
		if strings.EqualFold(ii.Email, email) {
			cp := *ii
			return &cp
		}
	}
	return nil
}

func (s *Store) ListInstitutional() []*models.InstitutionalInvestor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.InstitutionalInvestor, 0, len(s.institutional))
	for _, ii := range s.institutional {
		cp := *ii
		out = append(out, &cp)
	}
	return out
}

func (s *Store) UpdateInstitutional(ii *models.InstitutionalInvestor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.institutional[ii.ID]; !ok {
		return false
	}
	cp := *ii
	cp.UpdatedAt = time.Now()
	s.institutional[cp.ID] = &cp
	return true
}

func (s *Store) CreatePartner(p *models.Partner) *models.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	stamp(&cp.BaseModel)
	s.partners[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetPartnerByID(id string) *models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.partners[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *Store) GetPartnerByUsername(username string) *models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.partners {
		if strings.EqualFold(p.Username, username) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (s *Store) GetPartnerByEmail(email string) *models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.partners {
		if strings.EqualFold(p.Email, email) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (s *Store) ListPartners() []*models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *Store) UpdatePartner(p *models.Partner) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.partners[p.ID]; !ok {
		return false
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	s.partners[cp.ID] = &cp
	return true
}

func (s *Store) CreateAdmin(a *models.AdminUser) *models.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	stamp(&cp.BaseModel)
	s.admins[cp.ID] = &cp
	out := cp
	return &out
}

func (s *Store) GetAdminByID(id string) *models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.admins[id]; ok {
		cp := *a
		return &cp
	}
	return nil
}

func (s *Store) GetAdminByUsername(username string) *models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Username, username) {
			cp := *a
			return &cp
		}
	}
	return nil
}

func (s *Store) ListAdmins() []*models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AdminUser, 0, len(s.admins))
	for _, a := range s.admins {
		cp := *a
		out = append(out, &cp)
	}
	return out
}

// CreateSession records an opaque-token session for one of the three
// session-backed roles.
func (s *Store) CreateSession(role models.AccountRole, ownerID, token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byToken, ok := s.sessions[role]
	if !ok {
		byToken = make(map[string]*sessionRec)
		s.sessions[role] = byToken
	}
	byToken[token] = &sessionRec{
		ID:        newID(),
		OwnerID:   ownerID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

// LookupSession resolves a token to its owner id. Expired sessions are
// treated as absent.
func (s *Store) LookupSession(role models.AccountRole, token string) (ownerID string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[role][token]
	if !ok || time.Now().After(rec.ExpiresAt) {
		return "", false
	}
	return rec.OwnerID, true
}

func (s *Store) DeleteSession(role models.AccountRole, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions[role], token)
}

// DeleteExpiredSessions removes sessions whose expiry is in the past and
// returns the number removed. Live sessions are never touched.
func (s *Store) DeleteExpiredSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for _, byToken := range s.sessions {
		for token, rec := range byToken {
			if rec.ExpiresAt.Before(now) {
				delete(byToken, token)
				removed++
			}
		}
	}
	return removed
}

func (s *Store) CreateResetToken(t *models.PasswordResetToken) *models.PasswordResetToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	stamp(&cp.BaseModel)
	s.resetTokens[cp.Token] = &cp
	out := cp
	return &out
}

func (s *Store) GetResetToken(token string) *models.PasswordResetToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.resetTokens[token]; ok {
		cp := *t
		return &cp
	}
	return nil
}

// MarkResetTokenUsed flips Used; the row stays for auditing.
func (s *Store) MarkResetTokenUsed(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.resetTokens[token]
	if !ok {
		return false
	}
	t.Used = true
	t.UpdatedAt = time.Now()
	return true
}
