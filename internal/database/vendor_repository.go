package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

const vendorColumns = `id, username, password_hash, name, email, phone, company, address, city, avatar_url, created_at, updated_at`

// VendorRepository handles database operations for vendor accounts
type VendorRepository struct {
	db *sqlx.DB
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(db *sqlx.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// CreateVendor inserts a vendor; the id and timestamps come back from
// the database
func (r *VendorRepository) CreateVendor(v *models.Vendor) error {
	query := `
		INSERT INTO vendors (username, password_hash, name, email, phone, company, address, city, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		v.Username, v.PasswordHash, v.Name, v.Email, v.Phone, v.Company, v.Address, v.City, v.AvatarURL,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", translateError(err))
	}
	return nil
}

// GetVendorByID retrieves a vendor by identity
func (r *VendorRepository) GetVendorByID(id int64) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE id = $1`, vendorColumns)
	if err := r.db.Get(vendor, query, id); err != nil {
		return nil, translateError(err)
	}
	return vendor, nil
}

// GetVendorByUsername retrieves a vendor by login name
func (r *VendorRepository) GetVendorByUsername(username string) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE username = $1`, vendorColumns)
	if err := r.db.Get(vendor, query, username); err != nil {
		return nil, translateError(err)
	}
	return vendor, nil
}

// GetVendorByEmail retrieves a vendor by contact email
func (r *VendorRepository) GetVendorByEmail(email string) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE LOWER(email) = LOWER($1)`, vendorColumns)
	if err := r.db.Get(vendor, query, email); err != nil {
		return nil, translateError(err)
	}
	return vendor, nil
}

// UpdateVendor applies a partial update and returns the updated vendor.
// An empty patch is a no-op that returns the current record.
func (r *VendorRepository) UpdateVendor(id int64, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if req.Name != nil {
		appendField("name", *req.Name)
	}
	if req.Email != nil {
		appendField("email", *req.Email)
	}
	if req.Phone != nil {
		appendField("phone", *req.Phone)
	}
	if req.Company != nil {
		appendField("company", *req.Company)
	}
	if req.Address != nil {
		appendField("address", *req.Address)
	}
	if req.City != nil {
		appendField("city", *req.City)
	}
	if req.AvatarURL != nil {
		appendField("avatar_url", *req.AvatarURL)
	}

	if len(updates) == 0 {
		return r.GetVendorByID(id)
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE vendors SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updates, ", "), argCount, vendorColumns)

	vendor := &models.Vendor{}
	if err := r.db.Get(vendor, query, args...); err != nil {
		return nil, translateError(err)
	}
	return vendor, nil
}
