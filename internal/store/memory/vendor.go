package memory

import (
	"strings"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateVendor stores a new vendor, assigning its identity and creation
// timestamp. Username and email must be unique across all vendors.
func (s *Store) CreateVendor(v *models.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vendors {
		if existing.Username == v.Username || strings.EqualFold(existing.Email, v.Email) {
			return store.ErrDuplicate
		}
	}

	s.vendorSeq++
	v.ID = s.vendorSeq
	ts := now()
	v.CreatedAt = ts
	v.UpdatedAt = ts

	clone := *v
	s.vendors[v.ID] = &clone
	return nil
}

// GetVendorByID retrieves a vendor by identity
func (s *Store) GetVendorByID(id int64) (*models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *v
	return &clone, nil
}

// GetVendorByUsername retrieves a vendor by login name
func (s *Store) GetVendorByUsername(username string) (*models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if v.Username == username {
			clone := *v
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

// GetVendorByEmail retrieves a vendor by contact email
func (s *Store) GetVendorByEmail(email string) (*models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if strings.EqualFold(v.Email, email) {
			clone := *v
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

// UpdateVendor merges the supplied fields over the stored vendor.
// Identity and creation timestamp are immutable.
func (s *Store) UpdateVendor(id int64, req *models.UpdateVendorRequest) (*models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Email != nil {
		for otherID, other := range s.vendors {
			if otherID != id && strings.EqualFold(other.Email, *req.Email) {
				return nil, store.ErrDuplicate
			}
		}
		v.Email = *req.Email
	}
	if req.Phone != nil {
		v.Phone = req.Phone
	}
	if req.Company != nil {
		v.Company = req.Company
	}
	if req.Address != nil {
		v.Address = req.Address
	}
	if req.City != nil {
		v.City = req.City
	}
	if req.AvatarURL != nil {
		v.AvatarURL = req.AvatarURL
	}
	v.UpdatedAt = now()

	clone := *v
	return &clone, nil
}
