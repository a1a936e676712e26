package product

import (
	"context"
	"database/sql"
	"errors"

	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, params UpdateProductParams, offerID *string, clearOffer bool) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT
		p.id, p.name, p.description, p.price, p.stock,
		p.category_id, p.brand_id, p.seller_id, p.offer_id,
		c.name, b.name, u.username,
		o.id, o.name, o.discount_percent, o.start_date, o.end_date, o.is_active
	FROM products p
	JOIN categories c ON p.category_id = c.id
	JOIN brands b ON p.brand_id = b.id
	JOIN users u ON p.seller_id = u.id
	LEFT JOIN offers o ON p.offer_id = o.id`

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", p.Name),
	)

	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (
			id, name, description, price, stock,
			category_id, brand_id, seller_id, offer_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, p.Name, p.Description, p.Price, p.Stock,
		p.CategoryID, p.BrandID, p.SellerID, p.OfferID,
	)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", id))
	return r.GetByID(ctx, id)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams, offerID *string, clearOffer bool) (*Product, error) {
	query := `
	UPDATE products
	SET name        = COALESCE($1, name),
	    description = COALESCE($2, description),
	    price       = COALESCE($3, price),
	    stock       = COALESCE($4, stock),
	    offer_id    = CASE WHEN $5 THEN NULL ELSE COALESCE($6, offer_id) END
	WHERE id = $7
	`

	res, err := r.db.ExecContext(ctx, query,
		params.Name, params.Description, params.Price, params.Stock,
		clearOffer, offerID, params.ID,
	)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, params.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p            Product
		offerID      sql.NullString
		offerName    sql.NullString
		offerPercent decimal.NullDecimal
		offerStart   sql.NullTime
		offerEnd     sql.NullTime
		offerActive  sql.NullBool
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.BrandID, &p.SellerID, &p.OfferID,
		&p.CategoryName, &p.BrandName, &p.SellerName,
		&offerID, &offerName, &offerPercent, &offerStart, &offerEnd, &offerActive,
	)
	if err != nil {
		return nil, err
	}

	if offerID.Valid {
		p.Offer = &catalog.Offer{
			ID:              offerID.String,
			Name:            offerName.String,
			DiscountPercent: offerPercent.Decimal,
			StartDate:       offerStart.Time,
			EndDate:         offerEnd.Time,
			IsActive:        offerActive.Bool,
		}
	}

	return &p, nil
}
