package catalog

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

	CreateOffer(ctx context.Context, offer *Offer) (*Offer, error)
	GetOffer(ctx context.Context, name string) (*Offer, error)
	GetOffers(ctx context.Context) ([]*Offer, error)
	UpdateOffer(ctx context.Context, params UpdateOfferParams) (*Offer, error)
	DeleteOffer(ctx context.Context, name string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ---------- brands ----------

func (r *repository) CreateBrand(ctx context.Context, name string) (*Brand, error) {
	var b Brand
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO brands (id, name) VALUES ($1, $2) RETURNING id, name`,
		uuid.New().String(), name,
	).Scan(&b.ID, &b.Name)
	if err != nil {
		if strings.Contains(err.Error(), "brands_name_key") {
			return nil, ErrBrandExists
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetBrand(ctx context.Context, name string) (*Brand, error) {
	var b Brand
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM brands WHERE name = $1`, name,
	).Scan(&b.ID, &b.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBrandNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetBrands(ctx context.Context) ([]*Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*Brand
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, &b)
	}
	return brands, rows.Err()
}

func (r *repository) RenameBrand(ctx context.Context, name, newName string) (*Brand, error) {
	var b Brand
	err := r.db.QueryRowContext(ctx,
		`UPDATE brands SET name = $1 WHERE name = $2 RETURNING id, name`,
		newName, name,
	).Scan(&b.ID, &b.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBrandNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) DeleteBrand(ctx context.Context, name string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteBrand"),
		zap.String("brand", name),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE name = $1`, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBrandNotFound
	}

	// Products of the brand are removed by the FK cascade.
	log.Info("brand deleted")
	return nil
}

// ---------- categories ----------

func (r *repository) CreateCategory(ctx context.Context, name string, parentName *string) (*Category, error) {
	var parentID *string
	if parentName != nil {
		parent, err := r.GetCategory(ctx, *parentName)
		if err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		parentID = &parent.ID
	}

	var c Category
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (id, name, parent_id) VALUES ($1, $2, $3)
		 RETURNING id, name, parent_id`,
		uuid.New().String(), name, parentID,
	).Scan(&c.ID, &c.Name, &c.ParentID)
	if err != nil {
		if strings.Contains(err.Error(), "categories_name_key") {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	c.ParentName = parentName
	return &c, nil
}

func (r *repository) GetCategory(ctx context.Context, name string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT c.id, c.name, c.parent_id, p.name
		FROM categories c
		LEFT JOIN categories p ON c.parent_id = p.id
		WHERE c.name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.ParentID, &c.ParentName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.parent_id, p.name
		FROM categories c
		LEFT JOIN categories p ON c.parent_id = p.id
		ORDER BY c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.ParentName); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *repository) UpdateCategory(ctx context.Context, name, newName string, parentName *string) (*Category, error) {
	var parentID *string
	if parentName != nil {
		parent, err := r.GetCategory(ctx, *parentName)
		if err != nil {
			if errors.Is(err, ErrCategoryNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		parentID = &parent.ID
	}

	var c Category
	err := r.db.QueryRowContext(ctx,
		`UPDATE categories SET name = $1, parent_id = $2 WHERE name = $3
		 RETURNING id, name, parent_id`,
		newName, parentID, name,
	).Scan(&c.ID, &c.Name, &c.ParentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	c.ParentName = parentName
	return &c, nil
}

func (r *repository) DeleteCategory(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// ---------- offers ----------

const offerColumns = `id, name, discount_percent, start_date, end_date, is_active`

func (r *repository) CreateOffer(ctx context.Context, offer *Offer) (*Offer, error) {
	var o Offer
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO offers (id, name, discount_percent, start_date, end_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+offerColumns,
		uuid.New().String(), offer.Name, offer.DiscountPercent,
		offer.StartDate, offer.EndDate, offer.IsActive,
	).Scan(&o.ID, &o.Name, &o.DiscountPercent, &o.StartDate, &o.EndDate, &o.IsActive)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOffer(ctx context.Context, name string) (*Offer, error) {
	var o Offer
	err := r.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE name = $1`, name,
	).Scan(&o.ID, &o.Name, &o.DiscountPercent, &o.StartDate, &o.EndDate, &o.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOffers(ctx context.Context) ([]*Offer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.ID, &o.Name, &o.DiscountPercent, &o.StartDate, &o.EndDate, &o.IsActive); err != nil {
			return nil, err
		}
		offers = append(offers, &o)
	}
	return offers, rows.Err()
}

func (r *repository) UpdateOffer(ctx context.Context, params UpdateOfferParams) (*Offer, error) {
	var o Offer
	err := r.db.QueryRowContext(ctx, `
		UPDATE offers
		SET discount_percent = COALESCE($1, discount_percent),
		    start_date       = COALESCE($2, start_date),
		    end_date         = COALESCE($3, end_date),
		    is_active        = COALESCE($4, is_active)
		WHERE name = $5
		RETURNING `+offerColumns,
		params.DiscountPercent, params.StartDate, params.EndDate,
		params.IsActive, params.Name,
	).Scan(&o.ID, &o.Name, &o.DiscountPercent, &o.StartDate, &o.EndDate, &o.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) DeleteOffer(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE name = $1`, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOfferNotFound
	}
	return nil
}
