package catalog

import (
	"context"
	"errors"

	"lokapasar-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidOffer = errors.New("invalid offer parameters")

// Service defines brand, category and offer business logic.
type Service interface {
	CreateBrand(ctx context.Context, name string) (*Brand, error)
	GetBrand(ctx context.Context, name string) (*Brand, error)
	GetBrands(ctx context.Context) ([]*Brand, error)
	RenameBrand(ctx context.Context, name, newName string) (*Brand, error)
	DeleteBrand(ctx context.Context, name string) error

	CreateCategory(ctx context.Context, name string, parentName *string) (*Category, error)
	GetCategory(ctx context.Context, name string) (*Category, error)
	GetCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, name, newName string, parentName *string) (*Category, error)
	DeleteCategory(ctx context.Context, name string) error

	CreateOffer(ctx context.Context, offer Offer) (*Offer, error)
	GetOffer(ctx context.Context, name string) (*Offer, error)
	GetOffers(ctx context.Context) ([]*Offer, error)
	UpdateOffer(ctx context.Context, params UpdateOfferParams) (*Offer, error)
	DeleteOffer(ctx context.Context, name string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBrand(ctx context.Context, name string) (*Brand, error) {
	return s.repo.CreateBrand(ctx, name)
}

func (s *service) GetBrand(ctx context.Context, name string) (*Brand, error) {
	return s.repo.GetBrand(ctx, name)
}

func (s *service) GetBrands(ctx context.Context) ([]*Brand, error) {
	return s.repo.GetBrands(ctx)
}

func (s *service) RenameBrand(ctx context.Context, name, newName string) (*Brand, error) {
	return s.repo.RenameBrand(ctx, name, newName)
}

func (s *service) DeleteBrand(ctx context.Context, name string) error {
	return s.repo.DeleteBrand(ctx, name)
}

func (s *service) CreateCategory(ctx context.Context, name string, parentName *string) (*Category, error) {
	return s.repo.CreateCategory(ctx, name, parentName)
}

func (s *service) GetCategory(ctx context.Context, name string) (*Category, error) {
	return s.repo.GetCategory(ctx, name)
}

func (s *service) GetCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) UpdateCategory(ctx context.Context, name, newName string, parentName *string) (*Category, error) {
	return s.repo.UpdateCategory(ctx, name, newName, parentName)
}

func (s *service) DeleteCategory(ctx context.Context, name string) error {
	return s.repo.DeleteCategory(ctx, name)
}

func (s *service) CreateOffer(ctx context.Context, offer Offer) (*Offer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOffer"),
		zap.String("offer", offer.Name),
	)

	if err := validateOffer(&offer); err != nil {
		log.Warn("invalid offer", zap.Error(err))
		return nil, err
	}

	return s.repo.CreateOffer(ctx, &offer)
}

func (s *service) GetOffer(ctx context.Context, name string) (*Offer, error) {
	return s.repo.GetOffer(ctx, name)
}

func (s *service) GetOffers(ctx context.Context) ([]*Offer, error) {
	return s.repo.GetOffers(ctx)
}

func (s *service) UpdateOffer(ctx context.Context, params UpdateOfferParams) (*Offer, error) {
	if params.DiscountPercent != nil && !percentInRange(*params.DiscountPercent) {
		return nil, ErrInvalidOffer
	}
	return s.repo.UpdateOffer(ctx, params)
}

func (s *service) DeleteOffer(ctx context.Context, name string) error {
	return s.repo.DeleteOffer(ctx, name)
}

func validateOffer(offer *Offer) error {
	if offer.Name == "" {
		return ErrInvalidOffer
	}
	if !percentInRange(offer.DiscountPercent) {
		return ErrInvalidOffer
	}
	if !offer.EndDate.After(offer.StartDate) {
		return ErrInvalidOffer
	}
	return nil
}

func percentInRange(pct decimal.Decimal) bool {
	return pct.GreaterThanOrEqual(decimal.Zero) &&
		pct.LessThanOrEqual(decimal.NewFromInt(100))
}
