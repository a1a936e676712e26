package cart

import (
	"context"
	"database/sql"

	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, buyerID, productID string, quantity int) (*Item, error)
	SetQuantity(ctx context.Context, buyerID, productID string, quantity int) error
	Remove(ctx context.Context, buyerID, productID string) error
	Clear(ctx context.Context, buyerID string) error
	GetLines(ctx context.Context, buyerID string) ([]*Line, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Upsert adds a product to the buyer's cart, incrementing the quantity when
// the product is already present. cart_items carries a unique
// (buyer_id, product_id) constraint, so the conflict clause keeps one row per
// product.
func (r *repository) Upsert(ctx context.Context, buyerID, productID string, quantity int) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertCartItem"),
		zap.String("buyer_id", buyerID),
		zap.String("product_id", productID),
	)

	var item Item
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (buyer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (buyer_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, buyer_id, product_id, quantity, created_at`,
		buyerID, productID, quantity,
	).Scan(&item.ID, &item.BuyerID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *repository) SetQuantity(ctx context.Context, buyerID, productID string, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $1
		WHERE buyer_id = $2 AND product_id = $3`,
		quantity, buyerID, productID,
	)
	return err
}

// Remove deletes a cart line. Removing a product that is not in the cart is
// not an error.
func (r *repository) Remove(ctx context.Context, buyerID, productID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items WHERE buyer_id = $1 AND product_id = $2`,
		buyerID, productID,
	)
	return err
}

func (r *repository) Clear(ctx context.Context, buyerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE buyer_id = $1`, buyerID)
	return err
}

func (r *repository) GetLines(ctx context.Context, buyerID string) ([]*Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.id, ci.buyer_id, ci.product_id, ci.quantity, ci.created_at,
			p.id, p.name, p.price, p.stock, p.seller_id, u.username,
			o.id, o.name, o.discount_percent, o.start_date, o.end_date, o.is_active
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		JOIN users u ON p.seller_id = u.id
		LEFT JOIN offers o ON p.offer_id = o.id
		WHERE ci.buyer_id = $1
		ORDER BY ci.id ASC`,
		buyerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		var (
			line         Line
			prod         product.Product
			offerID      sql.NullString
			offerName    sql.NullString
			offerPercent decimal.NullDecimal
			offerStart   sql.NullTime
			offerEnd     sql.NullTime
			offerActive  sql.NullBool
		)
		err := rows.Scan(
			&line.ID, &line.BuyerID, &line.ProductID, &line.Quantity, &line.CreatedAt,
			&prod.ID, &prod.Name, &prod.Price, &prod.Stock, &prod.SellerID, &prod.SellerName,
			&offerID, &offerName, &offerPercent, &offerStart, &offerEnd, &offerActive,
		)
		if err != nil {
			return nil, err
		}
		if offerID.Valid {
			prod.Offer = &catalog.Offer{
				ID:              offerID.String,
				Name:            offerName.String,
				DiscountPercent: offerPercent.Decimal,
				StartDate:       offerStart.Time,
				EndDate:         offerEnd.Time,
				IsActive:        offerActive.Bool,
			}
		}
		line.Product = &prod
		lines = append(lines, &line)
	}
	return lines, rows.Err()
}
