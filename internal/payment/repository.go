package payment

import (
	"context"
	"database/sql"
	"errors"

	"lokapasar-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository records capture attempts for later reconciliation with the
// provider.
type Repository interface {
	SaveCharge(ctx context.Context, buyerID string, res *ChargeResponse) (*Charge, error)
	GetByReference(ctx context.Context, referenceID string) (*Charge, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SaveCharge(ctx context.Context, buyerID string, res *ChargeResponse) (*Charge, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SaveCharge"),
		zap.String("charge_id", res.ChargeID),
	)

	var c Charge
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO charges (id, provider_charge_id, reference_id, buyer_id, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, reference_id, buyer_id, amount, status, created_at`,
		uuid.New().String(), res.ChargeID, res.ReferenceID, buyerID, res.Amount, string(res.Status),
	).Scan(&c.ID, &c.ReferenceID, &c.BuyerID, &c.Amount, &c.Status, &c.CreatedAt)
	if err != nil {
		log.Error("failed to save charge", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetByReference(ctx context.Context, referenceID string) (*Charge, error) {
	var c Charge
	err := r.db.QueryRowContext(ctx, `
		SELECT id, reference_id, buyer_id, amount, status, created_at
		FROM charges WHERE reference_id = $1`,
		referenceID,
	).Scan(&c.ID, &c.ReferenceID, &c.BuyerID, &c.Amount, &c.Status, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChargeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
