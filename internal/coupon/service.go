package coupon

import (
	"context"
	"time"

	"lokapasar-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines coupon business logic.
type Service interface {
	Create(ctx context.Context, c Coupon) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
	Update(ctx context.Context, params UpdateCouponParams) (*Coupon, error)
	Delete(ctx context.Context, code string) error
	// Resolve looks up a coupon and checks it can still be redeemed by the
	// buyer, returning ErrCouponInvalid when it is expired or already spent.
	Resolve(ctx context.Context, code, buyerID string) (*Coupon, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, c Coupon) (*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCoupon"),
		zap.String("code", c.Code),
	)

	if c.Code == "" || !percentInRange(c.DiscountPercent) ||
		c.MaxDiscount.IsNegative() || c.MinOrderValue.IsNegative() {
		return nil, ErrInvalidCoupon
	}

	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		log.Error("failed to create coupon", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context) ([]*Coupon, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, params UpdateCouponParams) (*Coupon, error) {
	if params.DiscountPercent != nil && !percentInRange(*params.DiscountPercent) {
		return nil, ErrInvalidCoupon
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

func (s *service) Resolve(ctx context.Context, code, buyerID string) (*Coupon, error) {
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	redeemed, err := s.repo.HasRedeemed(ctx, c.ID, buyerID)
	if err != nil {
		return nil, err
	}
	if !c.ValidFor(redeemed, s.now()) {
		return nil, ErrCouponInvalid
	}
	return c, nil
}

func percentInRange(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(decimal.NewFromInt(100))
}
