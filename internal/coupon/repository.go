package coupon

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"lokapasar-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, c *Coupon) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
	Update(ctx context.Context, params UpdateCouponParams) (*Coupon, error)
	Delete(ctx context.Context, code string) error
	HasRedeemed(ctx context.Context, couponID, buyerID string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const couponColumns = `id, code, discount_percent, max_discount, min_order_value, single_use, expiration, created_at`

func (r *repository) Create(ctx context.Context, c *Coupon) (*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateCoupon"),
		zap.String("code", c.Code),
	)

	var created Coupon
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO coupons (id, code, discount_percent, max_discount, min_order_value, single_use, expiration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+couponColumns,
		uuid.New().String(), c.Code, c.DiscountPercent, c.MaxDiscount, c.MinOrderValue, c.SingleUse, c.Expiration,
	).Scan(
		&created.ID, &created.Code, &created.DiscountPercent, &created.MaxDiscount,
		&created.MinOrderValue, &created.SingleUse, &created.Expiration, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "coupons_code_key") {
			return nil, ErrCouponExists
		}
		log.Error("failed to create coupon", zap.Error(err))
		return nil, err
	}

	log.Info("coupon created", zap.String("coupon_id", created.ID))
	return &created, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	var c Coupon
	err := r.db.QueryRowContext(ctx, `
		SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code,
	).Scan(
		&c.ID, &c.Code, &c.DiscountPercent, &c.MaxDiscount,
		&c.MinOrderValue, &c.SingleUse, &c.Expiration, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]*Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*Coupon
	for rows.Next() {
		var c Coupon
		err := rows.Scan(
			&c.ID, &c.Code, &c.DiscountPercent, &c.MaxDiscount,
			&c.MinOrderValue, &c.SingleUse, &c.Expiration, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, &c)
	}
	return coupons, rows.Err()
}

func (r *repository) Update(ctx context.Context, params UpdateCouponParams) (*Coupon, error) {
	var c Coupon
	err := r.db.QueryRowContext(ctx, `
		UPDATE coupons
		SET discount_percent = COALESCE($1, discount_percent),
		    max_discount     = COALESCE($2, max_discount),
		    min_order_value  = COALESCE($3, min_order_value),
		    single_use       = COALESCE($4, single_use),
		    expiration       = COALESCE($5, expiration)
		WHERE code = $6
		RETURNING `+couponColumns,
		params.DiscountPercent, params.MaxDiscount, params.MinOrderValue, params.SingleUse, params.Expiration, params.Code,
	).Scan(
		&c.ID, &c.Code, &c.DiscountPercent, &c.MaxDiscount,
		&c.MinOrderValue, &c.SingleUse, &c.Expiration, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE code = $1`, code)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *repository) HasRedeemed(ctx context.Context, couponID, buyerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM coupon_redemptions
			WHERE coupon_id = $1 AND buyer_id = $2
		)`,
		couponID, buyerID,
	).Scan(&exists)
	return exists, err
}
