package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lokapasar-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.pay.example.com"

// Gateway captures online card payments with an external provider.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
	GetCharge(ctx context.Context, chargeID string) (*ChargeResponse, error)
	// Refund returns the full captured amount of a charge to the buyer.
	Refund(ctx context.Context, chargeID string) error
}

type httpGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewHTTPGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("payment API key is empty")
	}
	return &httpGateway{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type chargePayload struct {
	ReferenceID   string `json:"reference_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	CardToken     string `json:"card_token"`
	Description   string `json:"description"`
}

type chargeResult struct {
	ID          string    `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *httpGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("reference_id", req.ReferenceID),
		zap.String("amount", req.Amount.String()),
	)

	payload := chargePayload{
		ReferenceID:   req.ReferenceID,
		Amount:        req.Amount.String(),
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		CardToken:     req.CardToken,
		Description:   req.Description,
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/charges", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating charge request", zap.Error(err))
		return nil, err
	}
	httpReq.SetBasicAuth(g.apiKey, "")
	httpReq.Header.Add("Content-Type", "application/json")

	log.Info("sending charge to payment provider")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("payment provider request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode == http.StatusPaymentRequired {
		log.Warn("charge declined", zap.ByteString("response", bodyBytes))
		return nil, ErrCardDeclined
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("payment provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("payment provider error: %s", string(bodyBytes))
	}

	var res chargeResult
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding provider response", zap.Error(err))
		return nil, err
	}
	if res.Status == string(StatusDeclined) {
		log.Warn("charge declined", zap.String("charge_id", res.ID))
		return nil, ErrCardDeclined
	}

	out, err := toChargeResponse(res)
	if err != nil {
		return nil, err
	}

	log.Info("charge captured",
		zap.String("charge_id", out.ChargeID),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

func (g *httpGateway) GetCharge(ctx context.Context, chargeID string) (*ChargeResponse, error) {
	log := logger.FromCtx(ctx).With(zap.String("charge_id", chargeID))

	httpReq, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"/v1/charges/"+chargeID, nil)
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(g.apiKey, "")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("payment provider request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrChargeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("payment provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("payment provider error: %s", string(bodyBytes))
	}

	var res chargeResult
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return nil, err
	}
	return toChargeResponse(res)
}

func (g *httpGateway) Refund(ctx context.Context, chargeID string) error {
	log := logger.FromCtx(ctx).With(zap.String("charge_id", chargeID))

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/charges/"+chargeID+"/refunds", nil)
	if err != nil {
		return err
	}
	httpReq.SetBasicAuth(g.apiKey, "")

	log.Info("requesting refund from payment provider")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("payment provider request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrChargeNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("payment provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return fmt.Errorf("payment provider error: %s", string(bodyBytes))
	}

	log.Info("refund accepted")
	return nil
}

func toChargeResponse(res chargeResult) (*ChargeResponse, error) {
	amount, err := decimal.NewFromString(res.Amount)
	if err != nil {
		return nil, fmt.Errorf("provider returned bad amount %q: %w", res.Amount, err)
	}
	return &ChargeResponse{
		ChargeID:    res.ID,
		ReferenceID: res.ReferenceID,
		Amount:      amount,
		Status:      ChargeStatus(res.Status),
		CreatedAt:   res.CreatedAt,
	}, nil
}
