package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func vendorRows(v *models.Vendor) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "password_hash", "name", "email", "phone",
		"company", "address", "city", "avatar_url", "created_at", "updated_at",
	}).AddRow(
		v.ID, v.Username, v.PasswordHash, v.Name, v.Email, v.Phone,
		v.Company, v.Address, v.City, v.AvatarURL, v.CreatedAt, v.UpdatedAt,
	)
}

func TestCreateVendor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		vendor := &models.Vendor{
			Username:     "mazhandu",
			PasswordHash: "$2a$12$hash",
			Name:         "Mazhandu Coaches",
			Email:        "ops@mazhandu.example",
		}

		mock.ExpectQuery(`INSERT INTO vendors`).
			WithArgs(vendor.Username, vendor.PasswordHash, vendor.Name, vendor.Email,
				nil, nil, nil, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(1), now, now))

		err := repo.CreateVendor(vendor)
		require.NoError(t, err)
		assert.Equal(t, int64(1), vendor.ID)
		assert.Equal(t, now, vendor.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		vendor := &models.Vendor{
			Username:     "mazhandu",
			PasswordHash: "$2a$12$hash",
			Name:         "Mazhandu Coaches",
			Email:        "other@mazhandu.example",
		}

		mock.ExpectQuery(`INSERT INTO vendors`).
			WithArgs(vendor.Username, vendor.PasswordHash, vendor.Name, vendor.Email,
				nil, nil, nil, nil, nil).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateVendor(vendor)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrDuplicate))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		vendor := &models.Vendor{Username: "x", PasswordHash: "h", Name: "X", Email: "x@example.com"}

		mock.ExpectQuery(`INSERT INTO vendors`).
			WillReturnError(fmt.Errorf("database error"))

		err := repo.CreateVendor(vendor)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create vendor")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetVendorByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		want := &models.Vendor{
			ID:           7,
			Username:     "juldan",
			PasswordHash: "$2a$12$hash",
			Name:         "Juldan Motors",
			Email:        "info@juldan.example",
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		mock.ExpectQuery(`SELECT (.+) FROM vendors WHERE username`).
			WithArgs("juldan").
			WillReturnRows(vendorRows(want))

		vendor, err := repo.GetVendorByUsername("juldan")
		require.NoError(t, err)
		assert.Equal(t, want.ID, vendor.ID)
		assert.Equal(t, want.Name, vendor.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM vendors WHERE username`).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		vendor, err := repo.GetVendorByUsername("nobody")
		assert.Nil(t, vendor)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateVendor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	t.Run("Partial Update", func(t *testing.T) {
		now := time.Now()
		city := "Lusaka"
		name := "Power Tools Coaches"
		want := &models.Vendor{
			ID:           3,
			Username:     "powertools",
			PasswordHash: "$2a$12$hash",
			Name:         name,
			Email:        "ops@powertools.example",
			City:         &city,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		mock.ExpectQuery(`UPDATE vendors SET name = \$1, city = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(name, city, int64(3)).
			WillReturnRows(vendorRows(want))

		vendor, err := repo.UpdateVendor(3, &models.UpdateVendorRequest{Name: &name, City: &city})
		require.NoError(t, err)
		assert.Equal(t, name, vendor.Name)
		require.NotNil(t, vendor.City)
		assert.Equal(t, city, *vendor.City)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Patch Returns Current", func(t *testing.T) {
		now := time.Now()
		want := &models.Vendor{
			ID:           3,
			Username:     "powertools",
			PasswordHash: "$2a$12$hash",
			Name:         "Power Tools Coaches",
			Email:        "ops@powertools.example",
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		mock.ExpectQuery(`SELECT (.+) FROM vendors WHERE id`).
			WithArgs(int64(3)).
			WillReturnRows(vendorRows(want))

		vendor, err := repo.UpdateVendor(3, &models.UpdateVendorRequest{})
		require.NoError(t, err)
		assert.Equal(t, want.Name, vendor.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		name := "Gone"
		mock.ExpectQuery(`UPDATE vendors SET name = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(name, int64(99)).
			WillReturnError(sql.ErrNoRows)

		vendor, err := repo.UpdateVendor(99, &models.UpdateVendorRequest{Name: &name})
		assert.Nil(t, vendor)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
