//go:build unit

package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petpromise/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *StripeClient {
	return NewStripeClient(config.PaymentConfig{
		SecretKey: "sk_test_dummy",
		BaseURL:   serverURL,
		Timeout:   time.Second,
		Currency:  "usd",
	})
}

func TestStripeClient_CreateIntent(t *testing.T) {
	t.Run("sends form-encoded request and parses client secret", func(t *testing.T) {
		var gotAuth, gotAmount, gotCurrency, gotMethod string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotAuth = r.Header.Get("Authorization")
			gotAmount = r.PostForm.Get("amount")
			gotCurrency = r.PostForm.Get("currency")
			gotMethod = r.PostForm.Get("payment_method_types[]")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
		}))
		defer server.Close()

		intent, err := newTestClient(server.URL).CreateIntent(context.Background(), 2500, "usd")

		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
		assert.Equal(t, "Bearer sk_test_dummy", gotAuth)
		assert.Equal(t, "2500", gotAmount)
		assert.Equal(t, "usd", gotCurrency)
		assert.Equal(t, "card", gotMethod)
	})

	t.Run("surfaces processor error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
		}))
		defer server.Close()

		intent, err := newTestClient(server.URL).CreateIntent(context.Background(), 100, "usd")

		require.Error(t, err)
		assert.Nil(t, intent)
		assert.Contains(t, err.Error(), "Your card was declined.")
	})

	t.Run("rejects response without client secret", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"pi_123"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).CreateIntent(context.Background(), 100, "usd")

		require.Error(t, err)
	})
}
