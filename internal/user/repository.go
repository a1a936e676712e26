package user

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
	Create(ctx context.Context, u *User) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) error

	AddAddress(ctx context.Context, addr *Address) (*Address, error)
	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	DeleteAddress(ctx context.Context, userID string, addressID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `
	id, username, email, phone_no, hashed_password, full_name, role,
	is_active, store_name, store_address, created_at, updated_at`

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateUser"),
		zap.String("username", u.Username),
	)

	query := `
	INSERT INTO users (
		id, username, email, phone_no, hashed_password, full_name, role,
		store_name, store_address
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + userColumns

	id := uuid.New().String()
	row := r.db.QueryRowContext(ctx, query,
		id, u.Username, u.Email, u.Phone, u.HashedPassword, u.FullName,
		string(u.Role), u.StoreName, u.StoreAddress,
	)

	created, err := scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "users_username_key") {
			return nil, ErrUsernameExists
		}
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", created.ID))
	return created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) error {
	query := `
	UPDATE users
	SET email         = COALESCE($1, email),
	    full_name     = COALESCE($2, full_name),
	    phone_no      = COALESCE($3, phone_no),
	    store_name    = COALESCE($4, store_name),
	    store_address = COALESCE($5, store_address),
	    updated_at    = NOW()
	WHERE id = $6
	`

	res, err := r.db.ExecContext(ctx, query,
		params.Email, params.FullName, params.Phone, params.StoreName, params.StoreAddress,
		params.UserID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return ErrEmailExists
		}
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddAddress inserts an address for a buyer. When the new address is flagged
// primary, every other address of the buyer is unset in the same transaction
// so at most one primary exists at a time.
func (r *repository) AddAddress(ctx context.Context, addr *Address) (*Address, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if addr.IsPrimary {
		if _, err := tx.ExecContext(ctx,
			`UPDATE addresses SET is_primary = FALSE WHERE user_id = $1`,
			addr.UserID,
		); err != nil {
			return nil, err
		}
	}

	query := `
	INSERT INTO addresses (
		user_id, address_line1, address_line2, city, state, postal_code,
		country, address_type, is_primary
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
	`

	created := *addr
	err = tx.QueryRowContext(ctx, query,
		addr.UserID, addr.Line1, addr.Line2, addr.City, addr.State,
		addr.PostalCode, addr.Country, string(addr.Type), addr.IsPrimary,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	query := `
	SELECT id, user_id, address_line1, address_line2, city, state,
	       postal_code, country, address_type, is_primary, created_at
	FROM addresses
	WHERE user_id = $1
	ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Line1, &a.Line2, &a.City, &a.State,
			&a.PostalCode, &a.Country, &a.Type, &a.IsPrimary, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *repository) DeleteAddress(ctx context.Context, userID string, addressID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`,
		addressID, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Phone, &u.HashedPassword,
		&u.FullName, &u.Role, &u.IsActive, &u.StoreName, &u.StoreAddress,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
