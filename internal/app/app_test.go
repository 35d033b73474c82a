package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/config"
	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/email"
	"homevest_backend/internal/storage"
)

// The whole HTTP stack runs without Postgres: a nil database handle keeps
// the health checker in demo mode, so every repository call lands in the
// in-memory store and the plain hasher matches the seeded credentials.
func newTestRouter(t *testing.T) (*gin.Engine, *email.MockSender) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTTTLDays = 1
	cfg.Auth.SessionTTLHours = 1
	cfg.Auth.ResetTTLMinutes = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	config.AppConfig = cfg

	mailer := email.NewMockSender()
	router, _ := SetupRouter(cfg, Deps{
		DB:     nil,
		Health: database.NewHealthChecker(nil, 0),
		Store:  demo.NewStore(),
		Hasher: auth.PlainHasher{},
		Mailer: mailer,
		Files:  storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL),
	})
	return router, mailer
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return envelope.Data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	return envelope.Data
}

func login(t *testing.T, router *gin.Engine, role, username, password string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/"+role+"/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s/%s: %s", role, username, w.Body.String())
	token, _ := dataField(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthReportsDemoMode(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "demo", w.Header().Get("X-Data-Mode"))
	assert.Contains(t, w.Body.String(), `"data_mode":"demo"`)
}

func TestInvestorRegisterLoginMeLogout(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/investor/register", "", gin.H{
		"username": "alice",
		"password": "password123",
		"email":    "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := login(t, router, "investor", "alice", "password123")

	w = doJSON(t, router, http.MethodGet, "/api/v1/investor/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", dataField(t, w)["username"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/investor/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/investor/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	router, _ := newTestRouter(t)

	wrongPass := doJSON(t, router, http.MethodPost, "/api/v1/auth/admin/login", "", gin.H{
		"username": "admin", "password": "nope12345",
	})
	unknownUser := doJSON(t, router, http.MethodPost, "/api/v1/auth/admin/login", "", gin.H{
		"username": "ghost", "password": "nope12345",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Same body for both failure kinds, no account enumeration.
	assert.JSONEq(t, wrongPass.Body.String(), unknownUser.Body.String())

	// A pending account with the correct password must be indistinguishable
	// too, or login would confirm the credential pair.
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/partner/register", "", gin.H{
		"username": "pendco", "password": "password123", "email": "ops@pendco.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	pendingRight := doJSON(t, router, http.MethodPost, "/api/v1/auth/partner/login", "", gin.H{
		"username": "pendco", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, pendingRight.Code)
	assert.JSONEq(t, wrongPass.Body.String(), pendingRight.Body.String())
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/v1/investor/me", "/api/v1/foreclosures", "/api/v1/admin/properties"} {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminTokenDoesNotOpenInvestorSurface(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := login(t, router, "admin", "admin", "admin123")

	w := doJSON(t, router, http.MethodGet, "/api/v1/investor/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminPropertyLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := login(t, router, "admin", "admin", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/properties", adminToken, gin.H{
		"title":   "Corner Lot Special",
		"address": "700 Corner St",
		"city":    "Atlanta",
		"price":   250000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := dataField(t, w)["id"].(string)
	require.NotEmpty(t, id)

	inPublicList := func() bool {
		w := doJSON(t, router, http.MethodGet, "/api/v1/public/properties", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		for _, p := range dataList(t, w) {
			if p["id"] == id {
				return true
			}
		}
		return false
	}
	assert.True(t, inPublicList())

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/properties/"+id, adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Soft delete: gone from the public list, still readable by id.
	assert.False(t, inPublicList())
	w = doJSON(t, router, http.MethodGet, "/api/v1/public/properties/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataField(t, w)["is_active"])
}

func TestInstitutionalApprovalFlow(t *testing.T) {
	router, mailer := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/institutional/register", "", gin.H{
		"person_name":      "Dana Reyes",
		"institution_name": "Acme Capital",
		"email":            "dana@acmecap.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := dataField(t, w)["id"].(string)
	require.NotEmpty(t, id)

	adminToken := login(t, router, "admin", "admin", "admin123")

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/institutional-investors?status=pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, dataList(t, w))

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/institutional-investors/"+id+"/approve", adminToken, gin.H{
		"username": "acme-capital",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "approved", dataField(t, w)["status"])

	// The approval email carries the generated temporary password.
	sent := mailer.Sent()
	require.NotEmpty(t, sent)
	m := regexp.MustCompile(`Temporary password: (\S+)`).FindStringSubmatch(sent[len(sent)-1].Text)
	require.Len(t, m, 2)

	token := login(t, router, "institutional", "acme-capital", m[1])
	w = doJSON(t, router, http.MethodGet, "/api/v1/investor/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme Capital", dataField(t, w)["institution_name"])
}

func TestPartnerApprovalAndJWT(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/partner/register", "", gin.H{
		"username": "sellco",
		"password": "password123",
		"email":    "ops@sellco.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := dataField(t, w)["id"].(string)

	// Pending partners cannot log in; the answer matches a bad password.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/partner/login", "", gin.H{
		"username": "sellco", "password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	adminToken := login(t, router, "admin", "admin", "admin123")
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/partners/"+id+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/partner/login", "", gin.H{
		"username": "sellco", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt", data["token_type"])

	token, _ := data["token"].(string)
	w = doJSON(t, router, http.MethodGet, "/api/v1/partner/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sellco", dataField(t, w)["username"])
}

func TestForeclosureSubscriptionGate(t *testing.T) {
	router, _ := newTestRouter(t)

	// Seeded demo investor holds an active subscription.
	subscribed := login(t, router, "investor", "demo", "demo123")
	w := doJSON(t, router, http.MethodGet, "/api/v1/foreclosures", subscribed, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, dataList(t, w))

	// A fresh registration has no subscription.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/investor/register", "", gin.H{
		"username": "bob", "password": "password123", "email": "bob@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	unsubscribed := login(t, router, "investor", "bob", "password123")

	w = doJSON(t, router, http.MethodGet, "/api/v1/foreclosures", unsubscribed, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The public preview needs no account at all.
	w = doJSON(t, router, http.MethodGet, "/api/v1/public/foreclosures/preview", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, f := range dataList(t, w) {
		assert.NotContains(t, f, "address", "preview must not leak full addresses")
		assert.NotContains(t, f, "opening_bid")
	}
}

func TestForeclosureToggleRoundTrips(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := login(t, router, "admin", "admin", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/foreclosures", adminToken, gin.H{
		"address": "88 Auction Way", "county": "Fulton",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := dataField(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/api/v1/admin/foreclosures/"+id+"/toggle", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, dataField(t, w)["is_active"])

	w = doJSON(t, router, http.MethodPatch, "/api/v1/admin/foreclosures/"+id+"/toggle", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, dataField(t, w)["is_active"])
}

func TestForeclosureDeleteIsSoft(t *testing.T) {
	router, _ := newTestRouter(t)
	adminToken := login(t, router, "admin", "admin", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/foreclosures", adminToken, gin.H{
		"address": "12 Gavel Ct", "county": "Cobb",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := dataField(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/foreclosures/"+id, adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Gone from subscriber and preview queries.
	token := login(t, router, "investor", "demo", "demo123")
	w = doJSON(t, router, http.MethodGet, "/api/v1/foreclosures", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, f := range dataList(t, w) {
		assert.NotEqual(t, id, f["id"])
	}

	// Still present in the admin listing, flagged inactive.
	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/foreclosures", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found bool
	for _, f := range dataList(t, w) {
		if f["id"] == id {
			found = true
			assert.Equal(t, false, f["is_active"])
		}
	}
	assert.True(t, found, "soft-deleted listing must stay in admin views")
}

func TestOfferLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "investor", "demo", "demo123")

	w := doJSON(t, router, http.MethodGet, "/api/v1/public/properties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	props := dataList(t, w)
	require.NotEmpty(t, props)
	propertyID, _ := props[0]["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/properties/"+propertyID+"/offers", token, gin.H{
		"amount":  240000,
		"message": "Cash, 14 day close.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	offerID, _ := dataField(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/v1/investor/offers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, dataList(t, w), 1)

	w = doJSON(t, router, http.MethodPost, "/api/v1/investor/offers/"+offerID+"/withdraw", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "withdrawn", dataField(t, w)["status"])

	// A withdrawn offer cannot be decided.
	adminToken := login(t, router, "admin", "admin", "admin123")
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/offers/"+offerID+"/decide", adminToken, gin.H{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicLeadSubmission(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/public/leads", "", gin.H{
		"name":    "Casey Jordan",
		"email":   "casey@example.com",
		"message": "Interested in the duplex.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	adminToken := login(t, router, "admin", "admin", "admin123")
	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/leads", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	leads := dataList(t, w)
	require.Len(t, leads, 1)
	assert.Equal(t, "new", leads[0]["status"])
}

func TestCampaignSendsOnce(t *testing.T) {
	router, mailer := newTestRouter(t)
	adminToken := login(t, router, "admin", "admin", "admin123")

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/campaigns", adminToken, gin.H{
		"subject":  "New inventory this week",
		"body":     "<p>Five new listings.</p>",
		"audience": "investors",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := dataField(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/campaigns/"+id+"/send", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "sent", data["status"])
	assert.NotEmpty(t, mailer.Sent())

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/campaigns/"+id+"/send", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	router, mailer := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/password/forgot", "", gin.H{
		"role": "investor", "email": "demo@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Unknown emails get the same answer and no mail.
	before := len(mailer.Sent())
	w = doJSON(t, router, http.MethodPost, "/api/v1/password/forgot", "", gin.H{
		"role": "investor", "email": "nobody@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, len(mailer.Sent()))

	m := regexp.MustCompile(`reset code is: (\S+)`).FindStringSubmatch(mailer.Sent()[0].Text)
	require.Len(t, m, 2)

	w = doJSON(t, router, http.MethodPost, "/api/v1/password/reset", "", gin.H{
		"token": m[1], "new_password": "freshpass456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login(t, router, "investor", "demo", "freshpass456")

	// The token is single use.
	w = doJSON(t, router, http.MethodPost, "/api/v1/password/reset", "", gin.H{
		"token": m[1], "new_password": "anotherpass789",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
