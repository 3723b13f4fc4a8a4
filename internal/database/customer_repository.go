package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

const customerColumns = `id, name, email, phone, created_at`

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CreateCustomer inserts a customer
func (r *CustomerRepository) CreateCustomer(c *models.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(query, c.Name, c.Email, c.Phone).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", translateError(err))
	}
	return nil
}

// GetCustomerByID retrieves a customer by identity
func (r *CustomerRepository) GetCustomerByID(id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)
	if err := r.db.Get(customer, query, id); err != nil {
		return nil, translateError(err)
	}
	return customer, nil
}

// GetCustomerByEmail returns the first customer with the given email.
// Customer emails are not unique; the earliest record wins.
func (r *CustomerRepository) GetCustomerByEmail(email string) (*models.Customer, error) {
	customer := &models.Customer{}
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE LOWER(email) = LOWER($1) ORDER BY id LIMIT 1`, customerColumns)
	if err := r.db.Get(customer, query, email); err != nil {
		return nil, translateError(err)
	}
	return customer, nil
}
