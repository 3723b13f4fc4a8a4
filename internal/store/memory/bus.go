package memory

import (
	"sort"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CreateBus stores a new bus, assigning its identity and timestamps
func (s *Store) CreateBus(b *models.Bus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.busSeq++
	b.ID = s.busSeq
	ts := now()
	b.CreatedAt = ts
	b.UpdatedAt = ts

	clone := *b
	s.buses[b.ID] = &clone
	return nil
}

// GetBusByID retrieves a bus by identity
func (s *Store) GetBusByID(id int64) (*models.Bus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

// ListBusesByVendor returns all buses owned by the vendor in insertion order
func (s *Store) ListBusesByVendor(vendorID int64) ([]models.Bus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buses := []models.Bus{}
	for _, b := range s.buses {
		if b.VendorID == vendorID {
			buses = append(buses, *b)
		}
	}
	sort.Slice(buses, func(i, j int) bool { return buses[i].ID < buses[j].ID })
	return buses, nil
}

// UpdateBus merges the supplied fields over the stored bus
func (s *Store) UpdateBus(id int64, req *models.UpdateBusRequest) (*models.Bus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buses[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.RegistrationNumber != nil {
		b.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Capacity != nil {
		b.Capacity = *req.Capacity
	}
	if req.BusType != nil {
		b.BusType = req.BusType
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	b.UpdatedAt = now()

	clone := *b
	return &clone, nil
}

// DeleteBus removes a bus. A bus with scheduled trips cannot be deleted.
func (s *Store) DeleteBus(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buses[id]; !ok {
		return store.ErrNotFound
	}
	for _, t := range s.trips {
		if t.BusID == id {
			return store.ErrInUse
		}
	}
	delete(s.buses, id)
	return nil
}
