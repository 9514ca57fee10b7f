package reloadly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to the Reloadly airtime top-up API.
type Client struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	MockAPI      bool

	client *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// Operator describes a mobile network operator detected for a phone number.
type Operator struct {
	ID                  int64   `json:"operatorId"`
	Name                string  `json:"name"`
	CountryCode         string  `json:"countryCode"`
	SenderCurrency      string  `json:"senderCurrencyCode"`
	DestinationCurrency string  `json:"destinationCurrencyCode"`
	FxRate              float64 `json:"fxRate"`
}

// TopupResult is the outcome of a successful top-up.
type TopupResult struct {
	TransactionID   string
	OperatorName    string
	DeliveredAmount float64
	Currency        string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type topupResponse struct {
	TransactionID     int64   `json:"transactionId"`
	OperatorName      string  `json:"operatorName"`
	DeliveredAmount   float64 `json:"deliveredAmount"`
	DeliveredCurrency string  `json:"deliveredAmountCurrencyCode"`
	Status            string  `json:"status"`
}

// NewClient creates a new Reloadly client
func NewClient(baseURL, authURL, clientID, clientSecret string, mockAPI bool) *Client {
	return &Client{
		BaseURL:      baseURL,
		AuthURL:      authURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		MockAPI:      mockAPI,
		client:       &http.Client{Timeout: 15 * time.Second},
	}
}

// SendTopup detects the operator for the phone number and sends an airtime
// top-up of the given amount. countryISO is the two-letter country code
// derived from the phone prefix.
func (c *Client) SendTopup(ctx context.Context, phone, countryISO string, amount float64) (*TopupResult, error) {
	if c.MockAPI {
		return c.mockSendTopup(phone, countryISO, amount)
	}

	op, err := c.detectOperator(ctx, phone, countryISO)
	if err != nil {
		return nil, fmt.Errorf("operator detection failed: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"operatorId":     op.ID,
		"amount":         amount,
		"useLocalAmount": true,
		"recipientPhone": map[string]string{
			"countryCode": countryISO,
			"number":      strings.TrimPrefix(phone, "+"),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/topups", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return nil, fmt.Errorf("topup rejected: %s", apiErr.Message)
	}

	var tr topupResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}

	return &TopupResult{
		TransactionID:   fmt.Sprintf("%d", tr.TransactionID),
		OperatorName:    tr.OperatorName,
		DeliveredAmount: tr.DeliveredAmount,
		Currency:        tr.DeliveredCurrency,
	}, nil
}

// detectOperator resolves the operator serving a phone number.
func (c *Client) detectOperator(ctx context.Context, phone, countryISO string) (*Operator, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/operators/auto-detect/phone/%s/%s", c.BaseURL, strings.TrimPrefix(phone, "+"), countryISO)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("operator auto-detect returned %s", resp.Status)
	}

	var op Operator
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, err
	}
	return &op, nil
}

// token returns a cached client-credentials token, refreshing it when it is
// within a minute of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	body, err := json.Marshal(map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"grant_type":    "client_credentials",
		"audience":      c.BaseURL,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned %s", resp.Status)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// mockSendTopup mocks the SendTopup method for testing and local development.
// Numbers ending in "0000" fail so failure handling can be exercised.
func (c *Client) mockSendTopup(phone, countryISO string, amount float64) (*TopupResult, error) {
	if strings.HasSuffix(phone, "0000") {
		return nil, fmt.Errorf("mock provider rejected number %s", phone)
	}

	operator := "MTN"
	if countryISO != "NG" {
		operator = "Mock Mobile " + countryISO
	}

	return &TopupResult{
		TransactionID:   fmt.Sprintf("MOCK-%d", time.Now().UnixNano()),
		OperatorName:    operator,
		DeliveredAmount: amount,
		Currency:        "NGN",
	}, nil
}
