package api_test

import (
	"net/http"
	"testing"

	"paycoin_backend/internal/api"
	"paycoin_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionForcesSender(t *testing.T) {
	env := newTestEnv(t)
	client := env.register(t, "client@example.com", domain.UserTypeClient)
	merchant := env.register(t, "merchant@example.com", domain.UserTypeMerchant)

	// from_user_id in the payload is ignored; the caller is always the sender
	w := env.doJSON(t, http.MethodPost, "/api/transactions", client.AccessToken, gin.H{
		"from_user_id": "spoofed-id",
		"to_user_id":   merchant.UserID,
		"amount":       42.0,
		"token_type":   domain.TokenTypePSPAY,
		"description":  "lunch",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tx := decodeJSON[domain.Transaction](t, w)
	assert.Equal(t, client.UserID, tx.FromUserID)
	assert.Equal(t, merchant.UserID, tx.ToUserID)
	assert.Equal(t, domain.TxStatusPending, tx.Status)
	assert.Equal(t, 42.0, tx.Amount)
}

func TestCreateTransactionRejectsUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	client := env.register(t, "client@example.com", domain.UserTypeClient)

	w := env.doJSON(t, http.MethodPost, "/api/transactions", client.AccessToken, gin.H{
		"to_user_id": "someone",
		"amount":     1.0,
		"token_type": "DOGE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsEmpty(t *testing.T) {
	env := newTestEnv(t)
	merchant := env.register(t, "merchant@example.com", domain.UserTypeMerchant)

	w := env.doJSON(t, http.MethodGet, "/api/analytics/dashboard", merchant.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	analytics := decodeJSON[api.DashboardAnalytics](t, w)
	assert.Zero(t, analytics.TotalRevenue)
	assert.Zero(t, analytics.TransactionCount)
	assert.Zero(t, analytics.AvgTransaction)
}

// Full flow: register both sides, build a catalog, transact, and check both
// histories and the merchant dashboard see the transaction.
func TestEndToEndPaymentFlow(t *testing.T) {
	env := newTestEnv(t)
	client := env.register(t, "client@example.com", domain.UserTypeClient)
	merchant := env.register(t, "merchant@example.com", domain.UserTypeMerchant)

	// Merchant builds a catalog
	w := env.doJSON(t, http.MethodPost, "/api/stores", merchant.AccessToken, storeBody("Mercado"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.doJSON(t, http.MethodPost, "/api/products", merchant.AccessToken, gin.H{"name": "Juice", "price": 30.0})
	require.Equal(t, http.StatusCreated, w.Code)

	// Client pays the merchant
	w = env.doJSON(t, http.MethodPost, "/api/transactions", client.AccessToken, gin.H{
		"to_user_id": merchant.UserID,
		"amount":     30.0,
		"token_type": domain.TokenTypeUSDT,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tx := decodeJSON[domain.Transaction](t, w)

	// Both histories include the transaction
	for _, token := range []string{client.AccessToken, merchant.AccessToken} {
		w = env.doJSON(t, http.MethodGet, "/api/transactions", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decodeJSON[[]domain.Transaction](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, tx.ID, list[0].ID)
	}

	// The merchant dashboard reflects the amount
	w = env.doJSON(t, http.MethodGet, "/api/analytics/dashboard", merchant.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	analytics := decodeJSON[api.DashboardAnalytics](t, w)
	assert.Equal(t, 30.0, analytics.TotalRevenue)
	assert.Equal(t, int64(1), analytics.TransactionCount)
	assert.Equal(t, 30.0, analytics.AvgTransaction)
}

func TestTransactionListScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	a := env.register(t, "a@example.com", domain.UserTypeClient)
	b := env.register(t, "b@example.com", domain.UserTypeClient)
	c := env.register(t, "c@example.com", domain.UserTypeClient)

	// a pays b; c is uninvolved
	w := env.doJSON(t, http.MethodPost, "/api/transactions", a.AccessToken, gin.H{
		"to_user_id": b.UserID,
		"amount":     5.0,
		"token_type": domain.TokenTypePSPAY,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/transactions", c.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeJSON[[]domain.Transaction](t, w), 0)
}
