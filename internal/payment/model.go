package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChargeStatus string

const (
	StatusPending   ChargeStatus = "PENDING"
	StatusSucceeded ChargeStatus = "SUCCEEDED"
	StatusDeclined  ChargeStatus = "DECLINED"
)

type ChargeRequest struct {
	ReferenceID   string
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	CardToken     string
	Description   string
}

type ChargeResponse struct {
	ChargeID    string
	ReferenceID string
	Amount      decimal.Decimal
	Status      ChargeStatus
	CreatedAt   time.Time
}

// Charge is the persisted record of a capture attempt, kept for
// reconciliation against the provider.
type Charge struct {
	ID          string
	ReferenceID string
	BuyerID     string
	Amount      decimal.Decimal
	Status      ChargeStatus
	CreatedAt   time.Time
}
