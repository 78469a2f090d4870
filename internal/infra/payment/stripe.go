package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"petpromise/internal/pkg/config"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"
)

// StripeClient creates payment intents against Stripe's form-encoded REST
// API. Only the intent id and client secret are surfaced; capture and webhook
// handling stay on the frontend/processor side.
type StripeClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewStripeClient(cfg config.PaymentConfig) *StripeClient {
	return &StripeClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*commands.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment intent request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "payment intent request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read payment intent response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.New(fmt.Sprintf("payment processor rejected intent: %s", apiErr.Error.Message))
		}
		return nil, errs.New(fmt.Sprintf("payment processor returned status %d", resp.StatusCode))
	}

	var intent intentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment intent response")
	}
	if intent.ClientSecret == "" {
		return nil, errs.New("payment intent response missing client secret")
	}

	return &commands.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

var _ commands.PaymentService = (*StripeClient)(nil)
