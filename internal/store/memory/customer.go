package memory

import (
	"strings"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateCustomer stores a new customer, assigning its identity
func (s *Store) CreateCustomer(c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customerSeq++
	c.ID = s.customerSeq
	c.CreatedAt = now()

	clone := *c
	s.customers[c.ID] = &clone
	return nil
}

// GetCustomerByID retrieves a customer by identity
func (s *Store) GetCustomerByID(id int64) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

// GetCustomerByEmail returns the first customer with the given email.
// Emails are not unique across customers, so the earliest record wins.
func (s *Store) GetCustomerByEmail(email string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var match *models.Customer
	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			if match == nil || c.ID < match.ID {
				match = c
			}
		}
	}
	if match == nil {
		return nil, store.ErrNotFound
	}
	clone := *match
	return &clone, nil
}
