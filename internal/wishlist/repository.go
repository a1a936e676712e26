package wishlist

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
	Add(ctx context.Context, buyerID, productID string) error
	Remove(ctx context.Context, buyerID, productID string) error
	List(ctx context.Context, buyerID string) ([]*Entry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Add records the product once per buyer. Re-adding an already wishlisted
// product is absorbed by the conflict clause.
func (r *repository) Add(ctx context.Context, buyerID, productID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddWishlistItem"),
		zap.String("buyer_id", buyerID),
		zap.String("product_id", productID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (buyer_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (buyer_id, product_id) DO NOTHING`,
		buyerID, productID,
	)
	if err != nil {
		log.Error("failed to add wishlist item", zap.Error(err))
	}
	return err
}

// Remove deletes the entry; removing an absent product is not an error.
func (r *repository) Remove(ctx context.Context, buyerID, productID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items WHERE buyer_id = $1 AND product_id = $2`,
		buyerID, productID,
	)
	return err
}

func (r *repository) List(ctx context.Context, buyerID string) ([]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			wi.id, wi.buyer_id, wi.product_id, wi.created_at,
			p.id, p.name, p.price, p.stock, p.seller_id, u.username,
			o.id, o.name, o.discount_percent, o.start_date, o.end_date, o.is_active
		FROM wishlist_items wi
		JOIN products p ON wi.product_id = p.id
		JOIN users u ON p.seller_id = u.id
		LEFT JOIN offers o ON p.offer_id = o.id
		WHERE wi.buyer_id = $1
		ORDER BY wi.id ASC`,
		buyerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			entry        Entry
			prod         product.Product
			offerID      sql.NullString
			offerName    sql.NullString
			offerPercent decimal.NullDecimal
			offerStart   sql.NullTime
			offerEnd     sql.NullTime
			offerActive  sql.NullBool
		)
		err := rows.Scan(
			&entry.ID, &entry.BuyerID, &entry.ProductID, &entry.CreatedAt,
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
		entry.Product = &prod
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
