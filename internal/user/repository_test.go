package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(id, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "email", "phone_no", "hashed_password", "full_name",
		"role", "is_active", "store_name", "store_address", "created_at", "updated_at",
	}).AddRow(id, username, username+"@example.com", "0812", "hash", "Full Name",
		"buyer", true, "", "", now, now)
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(userRows("u-1", "budi"))

		u, err := repo.Create(context.Background(), &User{Username: "budi"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "budi", u.Username)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`))

		_, err := repo.Create(context.Background(), &User{Username: "budi"})
		assert.ErrorIs(t, err, ErrUsernameExists)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := repo.Create(context.Background(), &User{Username: "budi"})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE username").
			WithArgs("budi").
			WillReturnRows(userRows("u-1", "budi"))

		u, err := repo.FindByUsername(context.Background(), "budi")
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM users WHERE username").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "username", "email", "phone_no", "hashed_password", "full_name",
				"role", "is_active", "store_name", "store_address", "created_at", "updated_at",
			}))

		_, err := repo.FindByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_AddAddress_PrimaryUnsetsOthers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE addresses SET is_primary = FALSE").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("INSERT INTO addresses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectCommit()

	addr, err := repo.AddAddress(context.Background(), &Address{
		UserID: "u-1", Line1: "Jl. Merdeka 1", City: "Jakarta",
		Type: AddressTypeHome, IsPrimary: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), addr.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddAddress_NonPrimarySkipsUnset(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO addresses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))
	mock.ExpectCommit()

	_, err = repo.AddAddress(context.Background(), &Address{
		UserID: "u-1", Line1: "Jl. Braga 2", City: "Bandung", Type: AddressTypeOther,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAddress(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses").
			WithArgs(int64(7), "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteAddress(context.Background(), "u-1", 7))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM addresses").
			WithArgs(int64(99), "u-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteAddress(context.Background(), "u-1", 99)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestRepository_UpdateProfile_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateProfile(context.Background(), UpdateProfileParams{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
