package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(serverURL string) *httpGateway {
	return &httpGateway{
		apiKey:     "test-key",
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestHTTPGateway_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("Captured", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/charges", r.URL.Path)
			user, _, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "test-key", user)

			var payload chargePayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "order-1", payload.ReferenceID)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(chargeResult{
				ID:          "ch_123",
				ReferenceID: payload.ReferenceID,
				Amount:      payload.Amount,
				Status:      "SUCCEEDED",
				CreatedAt:   time.Now(),
			})
		}))
		defer server.Close()

		res, err := testGateway(server.URL).Charge(ctx, ChargeRequest{
			ReferenceID: "order-1",
			Amount:      decimal.NewFromInt(220),
			Currency:    "USD",
			CardToken:   "tok_abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "ch_123", res.ChargeID)
		assert.Equal(t, StatusSucceeded, res.Status)
		assert.True(t, res.Amount.Equal(decimal.NewFromInt(220)))
	})

	t.Run("DeclinedByStatusCode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":"card_declined"}`))
		}))
		defer server.Close()

		_, err := testGateway(server.URL).Charge(ctx, ChargeRequest{
			ReferenceID: "order-1",
			Amount:      decimal.NewFromInt(50),
		})
		assert.ErrorIs(t, err, ErrCardDeclined)
	})

	t.Run("DeclinedByBodyStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(chargeResult{
				ID:     "ch_124",
				Amount: "50",
				Status: "DECLINED",
			})
		}))
		defer server.Close()

		_, err := testGateway(server.URL).Charge(ctx, ChargeRequest{
			ReferenceID: "order-1",
			Amount:      decimal.NewFromInt(50),
		})
		assert.ErrorIs(t, err, ErrCardDeclined)
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"internal"}`))
		}))
		defer server.Close()

		_, err := testGateway(server.URL).Charge(ctx, ChargeRequest{ReferenceID: "order-1"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCardDeclined)
	})
}

func TestHTTPGateway_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/charges/ch_123/refunds", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"rf_1","status":"SUCCEEDED"}`))
		}))
		defer server.Close()

		assert.NoError(t, testGateway(server.URL).Refund(ctx, "ch_123"))
	})

	t.Run("UnknownCharge", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		err := testGateway(server.URL).Refund(ctx, "ch_missing")
		assert.ErrorIs(t, err, ErrChargeNotFound)
	})

	t.Run("ProviderError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"internal"}`))
		}))
		defer server.Close()

		assert.Error(t, testGateway(server.URL).Refund(ctx, "ch_123"))
	})
}

func TestHTTPGateway_GetCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/charges/ch_123", r.URL.Path)
			json.NewEncoder(w).Encode(chargeResult{
				ID:          "ch_123",
				ReferenceID: "order-1",
				Amount:      "220",
				Status:      "SUCCEEDED",
			})
		}))
		defer server.Close()

		res, err := testGateway(server.URL).GetCharge(ctx, "ch_123")
		require.NoError(t, err)
		assert.Equal(t, StatusSucceeded, res.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := testGateway(server.URL).GetCharge(ctx, "ch_missing")
		assert.ErrorIs(t, err, ErrChargeNotFound)
	})
}
