package wishlist

import (
	"context"

	"lokapasar-be/internal/product"
)

// Service defines wishlist business logic. Adds are idempotent and removes of
// absent products are no-ops.
type Service interface {
	Add(ctx context.Context, buyerID, productID string) error
	Remove(ctx context.Context, buyerID, productID string) error
	List(ctx context.Context, buyerID string) ([]*Entry, error)
}

// ProductStore is the slice of the product repository the wishlist needs.
type ProductStore interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

type service struct {
	repo     Repository
	products ProductStore
}

func NewService(repo Repository, products ProductStore) Service {
	return &service{repo: repo, products: products}
}

func (s *service) Add(ctx context.Context, buyerID, productID string) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.repo.Add(ctx, buyerID, productID)
}

func (s *service) Remove(ctx context.Context, buyerID, productID string) error {
	return s.repo.Remove(ctx, buyerID, productID)
}

func (s *service) List(ctx context.Context, buyerID string) ([]*Entry, error) {
	return s.repo.List(ctx, buyerID)
}
