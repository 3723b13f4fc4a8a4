package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
)

const paymentColumns = `id, booking_id, vendor_id, amount, method, status, transaction_ref, payment_time, created_at, updated_at`

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment inserts a payment. The owning vendor is copied from the
// booking inside the insert, never taken from the caller.
func (r *PaymentRepository) CreatePayment(p *models.Payment) error {
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}

	query := `
		INSERT INTO payments (booking_id, vendor_id, amount, method, status, transaction_ref, payment_time)
		SELECT b.id, b.vendor_id, $2, $3, $4, $5, COALESCE($6, NOW())
		FROM bookings b WHERE b.id = $1
		RETURNING id, vendor_id, payment_time, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		p.BookingID, p.Amount, p.Method, p.Status, p.TransactionRef, nullTime(p.PaymentTime),
	).Scan(&p.ID, &p.VendorID, &p.PaymentTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", translateError(err))
	}
	return nil
}

// GetPaymentByID retrieves a payment by identity
func (r *PaymentRepository) GetPaymentByID(id int64) (*models.Payment, error) {
	payment := &models.Payment{}
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)
	if err := r.db.Get(payment, query, id); err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

// ListPaymentsByVendor returns all payments attributed to the vendor
func (r *PaymentRepository) ListPaymentsByVendor(vendorID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE vendor_id = $1 ORDER BY id`, paymentColumns)
	if err := r.db.Select(&payments, query, vendorID); err != nil {
		return nil, translateError(err)
	}
	return payments, nil
}

// UpdatePaymentStatus transitions a payment's status
func (r *PaymentRepository) UpdatePaymentStatus(id int64, status models.PaymentStatus) (*models.Payment, error) {
	payment := &models.Payment{}
	query := fmt.Sprintf(`UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING %s`, paymentColumns)
	if err := r.db.Get(payment, query, id, status); err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}
