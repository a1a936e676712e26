package cart

import (
	"context"
	"time"

	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines cart business logic. Each buyer has at most one line per
// product; adding the same product again raises its quantity.
type Service interface {
	AddItem(ctx context.Context, buyerID, productID string, quantity int) (*Item, error)
	UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) error
	RemoveItem(ctx context.Context, buyerID, productID string) error
	Clear(ctx context.Context, buyerID string) error
	GetCart(ctx context.Context, buyerID string) ([]*Line, decimal.Decimal, error)
}

// ProductStore is the slice of the product repository the cart needs.
type ProductStore interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

type service struct {
	repo     Repository
	products ProductStore
	now      func() time.Time
}

func NewService(repo Repository, products ProductStore) Service {
	return &service{repo: repo, products: products, now: time.Now}
}

func (s *service) AddItem(ctx context.Context, buyerID, productID string, quantity int) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCartItem"),
		zap.String("buyer_id", buyerID),
		zap.String("product_id", productID),
	)

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	item, err := s.repo.Upsert(ctx, buyerID, productID, quantity)
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
func (s *service) UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(ctx, buyerID, productID)
	}
	return s.repo.SetQuantity(ctx, buyerID, productID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, buyerID, productID string) error {
	return s.repo.Remove(ctx, buyerID, productID)
}

func (s *service) Clear(ctx context.Context, buyerID string) error {
	return s.repo.Clear(ctx, buyerID)
}

// GetCart returns the buyer's lines with products attached and the cart total
// priced at this instant, so lapsed offers stop discounting without any
// write.
func (s *service) GetCart(ctx context.Context, buyerID string) ([]*Line, decimal.Decimal, error) {
	lines, err := s.repo.GetLines(ctx, buyerID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := s.now()
	total := decimal.Zero
	for _, line := range lines {
		unit := line.Product.FinalPrice(now)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return lines, total, nil
}
