package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const busColumns = `id, vendor_id, name, registration_number, capacity, bus_type, is_active, created_at, updated_at`

// BusRepository handles database operations for buses
type BusRepository struct {
	db *sqlx.DB
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db *sqlx.DB) *BusRepository {
	return &BusRepository{db: db}
}

// CreateBus inserts a bus
func (r *BusRepository) CreateBus(bus *models.Bus) error {
	query := `
		INSERT INTO buses (vendor_id, name, registration_number, capacity, bus_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		bus.VendorID, bus.Name, bus.RegistrationNumber, bus.Capacity, bus.BusType, bus.IsActive,
	).Scan(&bus.ID, &bus.CreatedAt, &bus.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bus: %w", translateError(err))
	}
	return nil
}

// GetBusByID retrieves a bus by identity
func (r *BusRepository) GetBusByID(id int64) (*models.Bus, error) {
	bus := &models.Bus{}
	query := fmt.Sprintf(`SELECT %s FROM buses WHERE id = $1`, busColumns)
	if err := r.db.Get(bus, query, id); err != nil {
		return nil, translateError(err)
	}
	return bus, nil
}

// ListBusesByVendor returns all buses owned by the vendor
func (r *BusRepository) ListBusesByVendor(vendorID int64) ([]models.Bus, error) {
	buses := []models.Bus{}
	query := fmt.Sprintf(`SELECT %s FROM buses WHERE vendor_id = $1 ORDER BY id`, busColumns)
	if err := r.db.Select(&buses, query, vendorID); err != nil {
		return nil, translateError(err)
	}
	return buses, nil
}

// UpdateBus applies a partial update and returns the updated bus
func (r *BusRepository) UpdateBus(id int64, req *models.UpdateBusRequest) (*models.Bus, error) {
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
	if req.RegistrationNumber != nil {
		appendField("registration_number", *req.RegistrationNumber)
	}
	if req.Capacity != nil {
		appendField("capacity", *req.Capacity)
	}
	if req.BusType != nil {
		appendField("bus_type", *req.BusType)
	}
	if req.IsActive != nil {
		appendField("is_active", *req.IsActive)
	}

	if len(updates) == 0 {
		return r.GetBusByID(id)
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE buses SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updates, ", "), argCount, busColumns)

	bus := &models.Bus{}
	if err := r.db.Get(bus, query, args...); err != nil {
		return nil, translateError(err)
	}
	return bus, nil
}

// DeleteBus removes a bus
func (r *BusRepository) DeleteBus(id int64) error {
	result, err := r.db.Exec(`DELETE FROM buses WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
