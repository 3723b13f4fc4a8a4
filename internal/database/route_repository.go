package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const routeColumns = `id, vendor_id, origin, destination, distance_km, duration_minutes, price, is_active, has_stops, created_at, updated_at`

// RouteRepository handles database operations for routes and their stops
type RouteRepository struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new RouteRepository
func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// CreateRoute inserts a route
func (r *RouteRepository) CreateRoute(route *models.Route) error {
	query := `
		INSERT INTO routes (vendor_id, origin, destination, distance_km, duration_minutes, price, is_active, has_stops)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		route.VendorID, route.Origin, route.Destination, route.DistanceKM,
		route.DurationMinutes, route.Price, route.IsActive, route.HasStops,
	).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", translateError(err))
	}
	return nil
}

// GetRouteByID retrieves a route by identity
func (r *RouteRepository) GetRouteByID(id int64) (*models.Route, error) {
	route := &models.Route{}
	query := fmt.Sprintf(`SELECT %s FROM routes WHERE id = $1`, routeColumns)
	if err := r.db.Get(route, query, id); err != nil {
		return nil, translateError(err)
	}
	return route, nil
}

// ListRoutesByVendor returns all routes owned by the vendor
func (r *RouteRepository) ListRoutesByVendor(vendorID int64) ([]models.Route, error) {
	routes := []models.Route{}
	query := fmt.Sprintf(`SELECT %s FROM routes WHERE vendor_id = $1 ORDER BY id`, routeColumns)
	if err := r.db.Select(&routes, query, vendorID); err != nil {
		return nil, translateError(err)
	}
	return routes, nil
}

// UpdateRoute applies a partial update and returns the updated route
func (r *RouteRepository) UpdateRoute(id int64, req *models.UpdateRouteRequest) (*models.Route, error) {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	appendField := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}

	if req.Origin != nil {
		appendField("origin", *req.Origin)
	}
	if req.Destination != nil {
		appendField("destination", *req.Destination)
	}
	if req.DistanceKM != nil {
		appendField("distance_km", *req.DistanceKM)
	}
	if req.DurationMinutes != nil {
		appendField("duration_minutes", *req.DurationMinutes)
	}
	if req.Price != nil {
		appendField("price", *req.Price)
	}
	if req.IsActive != nil {
		appendField("is_active", *req.IsActive)
	}

	if len(updates) == 0 {
		return r.GetRouteByID(id)
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE routes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(updates, ", "), argCount, routeColumns)

	route := &models.Route{}
	if err := r.db.Get(route, query, args...); err != nil {
		return nil, translateError(err)
	}
	return route, nil
}

// DeleteRoute removes a route; its stops go with it via ON DELETE CASCADE
func (r *RouteRepository) DeleteRoute(id int64) error {
	result, err := r.db.Exec(`DELETE FROM routes WHERE id = $1`, id)
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

// CreateRouteStop inserts a stop after checking the route's ordering
// invariants inside a transaction: stop orders are unique and distance
// from the origin increases with the order index.
func (r *RouteRepository) CreateRouteStop(stop *models.RouteStop) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var routeID int64
	if err := tx.Get(&routeID, `SELECT id FROM routes WHERE id = $1 FOR UPDATE`, stop.RouteID); err != nil {
		return translateError(err)
	}

	existing := []models.RouteStop{}
	if err := tx.Select(&existing, `SELECT id, route_id, name, distance_km, stop_order, created_at FROM route_stops WHERE route_id = $1`, stop.RouteID); err != nil {
		return translateError(err)
	}
	for _, other := range existing {
		if other.StopOrder == stop.StopOrder {
			return store.ErrDuplicate
		}
		if other.StopOrder < stop.StopOrder && other.DistanceKM >= stop.DistanceKM {
			return store.ErrStopSequence
		}
		if other.StopOrder > stop.StopOrder && other.DistanceKM <= stop.DistanceKM {
			return store.ErrStopSequence
		}
	}

	err = tx.QueryRow(
		`INSERT INTO route_stops (route_id, name, distance_km, stop_order) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		stop.RouteID, stop.Name, stop.DistanceKM, stop.StopOrder,
	).Scan(&stop.ID, &stop.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create route stop: %w", translateError(err))
	}

	if _, err := tx.Exec(`UPDATE routes SET has_stops = TRUE, updated_at = NOW() WHERE id = $1`, stop.RouteID); err != nil {
		return translateError(err)
	}

	return tx.Commit()
}

// ListStopsByRoute returns the stops of a route ordered by stop order
func (r *RouteRepository) ListStopsByRoute(routeID int64) ([]models.RouteStop, error) {
	stops := []models.RouteStop{}
	query := `SELECT id, route_id, name, distance_km, stop_order, created_at FROM route_stops WHERE route_id = $1 ORDER BY stop_order`
	if err := r.db.Select(&stops, query, routeID); err != nil {
		return nil, translateError(err)
	}
	return stops, nil
}
