package product

import (
	"context"

	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/rbac"

	"go.uber.org/zap"
)

// Service defines product business logic.
type Service interface {
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, actorID string, actorRole rbac.Role, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, actorID string, actorRole rbac.Role, id string) error
}

// CatalogStore is the slice of the catalog repository the product service
// needs to resolve references by name.
type CatalogStore interface {
	GetCategory(ctx context.Context, name string) (*catalog.Category, error)
	GetBrand(ctx context.Context, name string) (*catalog.Brand, error)
	GetOffer(ctx context.Context, name string) (*catalog.Offer, error)
}

type service struct {
	repo        Repository
	catalogRepo CatalogStore
}

func NewService(repo Repository, catalogRepo CatalogStore) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.String("name", params.Name),
	)

	if params.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if params.Stock < 0 {
		return nil, ErrInvalidStock
	}

	category, err := s.catalogRepo.GetCategory(ctx, params.CategoryName)
	if err != nil {
		return nil, err
	}
	brand, err := s.catalogRepo.GetBrand(ctx, params.BrandName)
	if err != nil {
		return nil, err
	}

	var offerID *string
	if params.OfferName != nil {
		offer, err := s.catalogRepo.GetOffer(ctx, *params.OfferName)
		if err != nil {
			return nil, err
		}
		offerID = &offer.ID
	}

	p := &Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
		CategoryID:  category.ID,
		BrandID:     brand.ID,
		SellerID:    params.SellerID,
		OfferID:     offerID,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

// Update lets an admin modify any product, a seller only their own.
func (s *service) Update(ctx context.Context, actorID string, actorRole rbac.Role, params UpdateProductParams) (*Product, error) {
	existing, err := s.repo.GetByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if actorRole != rbac.RoleAdmin && existing.SellerID != actorID {
		return nil, ErrNotOwner
	}

	if params.Price != nil && params.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if params.Stock != nil && *params.Stock < 0 {
		return nil, ErrInvalidStock
	}

	var offerID *string
	clearOffer := false
	if params.OfferName != nil {
		if *params.OfferName == "" {
			clearOffer = true
		} else {
			offer, err := s.catalogRepo.GetOffer(ctx, *params.OfferName)
			if err != nil {
				return nil, err
			}
			offerID = &offer.ID
		}
	}

	return s.repo.Update(ctx, params, offerID, clearOffer)
}

func (s *service) Delete(ctx context.Context, actorID string, actorRole rbac.Role, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actorRole != rbac.RoleAdmin && existing.SellerID != actorID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
