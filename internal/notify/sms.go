package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lokapasar-be/internal/config"
	"lokapasar-be/internal/logger"

	"go.uber.org/zap"
)

const smsBaseURL = "https://api.sms.example.com"

type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

type smsClient struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

func NewSMSClient(cfg *config.Config) SMSSender {
	if cfg.SMSAccountSID == "" {
		logger.L().Warn("SMS account SID is empty")
	}
	return &smsClient{
		accountSID: cfg.SMSAccountSID,
		authToken:  cfg.SMSAuthToken,
		from:       cfg.SMSFromNumber,
		baseURL:    smsBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *smsClient) Send(ctx context.Context, to, body string) error {
	log := logger.FromCtx(ctx).With(zap.String("to", to))

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/accounts/%s/messages", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("sms request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("sms provider returned non-success status", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("sms provider error: status %d", resp.StatusCode)
	}
	return nil
}
