package memory

import (
	"sort"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreatePayment stores a new payment against an existing booking. The
// owning vendor is taken from the booking, never from the caller.
func (s *Store) CreatePayment(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[p.BookingID]
	if !ok {
		return store.ErrNotFound
	}

	s.paymentSeq++
	p.ID = s.paymentSeq
	p.VendorID = booking.VendorID
	ts := now()
	if p.PaymentTime.IsZero() {
		p.PaymentTime = ts
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	p.CreatedAt = ts
	p.UpdatedAt = ts

	clone := *p
	s.payments[p.ID] = &clone
	return nil
}

// GetPaymentByID retrieves a payment by identity
func (s *Store) GetPaymentByID(id int64) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

// ListPaymentsByVendor returns all payments attributed to the vendor in
// insertion order
func (s *Store) ListPaymentsByVendor(vendorID int64) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := []models.Payment{}
	for _, p := range s.payments {
		if p.VendorID == vendorID {
			payments = append(payments, *p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments, nil
}

// UpdatePaymentStatus transitions a payment's status
func (s *Store) UpdatePaymentStatus(id int64, status models.PaymentStatus) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = now()

	clone := *p
	return &clone, nil
}
