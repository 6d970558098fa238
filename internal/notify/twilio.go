package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioDefaultTimeout = 15 * time.Second

// TwilioOptions configures the REST client.
type TwilioOptions struct {
	AccountSID string
	AuthToken  string
	BaseURL    string
	HTTPClient *http.Client
}

// TwilioClient sends messages through Twilio's Messages endpoint.
type TwilioClient struct {
	accountSID string
	authToken  string
	baseURL    string
	client     *http.Client
}

type twilioMessageResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewTwilioClient validates the credentials and builds a client. Missing
// credentials are a configuration error, not something to retry.
func NewTwilioClient(opts TwilioOptions) (*TwilioClient, error) {
	if strings.TrimSpace(opts.AccountSID) == "" || strings.TrimSpace(opts.AuthToken) == "" {
		return nil, errors.New("twilio account sid and auth token are required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: twilioDefaultTimeout}
	}
	return &TwilioClient{
		accountSID: strings.TrimSpace(opts.AccountSID),
		authToken:  strings.TrimSpace(opts.AuthToken),
		baseURL:    baseURL,
		client:     client,
	}, nil
}

// Send posts one message create request and returns the message SID.
func (t *TwilioClient) Send(ctx context.Context, from, to, body string) (string, error) {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var out twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode twilio response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 300 {
		if out.Message != "" {
			return "", fmt.Errorf("twilio status %d: %s", resp.StatusCode, out.Message)
		}
		return "", fmt.Errorf("twilio status %d", resp.StatusCode)
	}
	if out.SID == "" {
		return "", errors.New("twilio response missing message sid")
	}
	return out.SID, nil
}

var _ MessageSender = (*TwilioClient)(nil)
