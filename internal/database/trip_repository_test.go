package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

func tripRows(trips ...*models.Trip) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "vendor_id", "route_id", "bus_id", "departure_time", "arrival_time",
		"status", "available_seats", "price", "created_at", "updated_at",
	})
	for _, trip := range trips {
		rows.AddRow(
			trip.ID, trip.VendorID, trip.RouteID, trip.BusID, trip.DepartureTime,
			trip.ArrivalTime, trip.Status, trip.AvailableSeats, trip.Price,
			trip.CreatedAt, trip.UpdatedAt,
		)
	}
	return rows
}

func TestCreateTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	t.Run("Success Defaults To Scheduled", func(t *testing.T) {
		now := time.Now()
		dep := now.Add(24 * time.Hour)
		arr := dep.Add(5 * time.Hour)
		trip := &models.Trip{
			VendorID:       1,
			RouteID:        2,
			BusID:          3,
			DepartureTime:  dep,
			ArrivalTime:    arr,
			AvailableSeats: 44,
			Price:          350,
		}

		mock.ExpectQuery(`INSERT INTO trips`).
			WithArgs(int64(1), int64(2), int64(3), dep, arr,
				models.TripStatusScheduled, 44, 350.0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(10), now, now))

		err := repo.CreateTrip(trip)
		require.NoError(t, err)
		assert.Equal(t, int64(10), trip.ID)
		assert.Equal(t, models.TripStatusScheduled, trip.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpcomingTrips(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	now := time.Now()
	first := &models.Trip{
		ID: 1, VendorID: 1, RouteID: 2, BusID: 3,
		DepartureTime: now.Add(time.Hour), ArrivalTime: now.Add(6 * time.Hour),
		Status: models.TripStatusScheduled, AvailableSeats: 20, Price: 300,
		CreatedAt: now, UpdatedAt: now,
	}
	second := &models.Trip{
		ID: 2, VendorID: 1, RouteID: 2, BusID: 3,
		DepartureTime: now.Add(2 * time.Hour), ArrivalTime: now.Add(7 * time.Hour),
		Status: models.TripStatusScheduled, AvailableSeats: 20, Price: 300,
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(`SELECT (.+) FROM trips`).
		WithArgs(int64(1), now, 5).
		WillReturnRows(tripRows(first, second))

	trips, err := repo.UpcomingTrips(1, 5, now)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, int64(1), trips[0].ID)
	assert.Equal(t, int64(2), trips[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	t.Run("Status Change", func(t *testing.T) {
		now := time.Now()
		status := models.TripStatusCancelled
		want := &models.Trip{
			ID: 4, VendorID: 1, RouteID: 2, BusID: 3,
			DepartureTime: now.Add(time.Hour), ArrivalTime: now.Add(6 * time.Hour),
			Status: status, AvailableSeats: 20, Price: 300,
			CreatedAt: now, UpdatedAt: now,
		}

		mock.ExpectQuery(`UPDATE trips SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(status, int64(4)).
			WillReturnRows(tripRows(want))

		trip, err := repo.UpdateTrip(4, &models.UpdateTripRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.TripStatusCancelled, trip.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		seats := 10
		mock.ExpectQuery(`UPDATE trips SET available_seats = \$1`).
			WithArgs(seats, int64(99)).
			WillReturnError(sql.ErrNoRows)

		trip, err := repo.UpdateTrip(99, &models.UpdateTripRequest{AvailableSeats: &seats})
		assert.Nil(t, trip)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteTrip(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM trips WHERE id`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteTrip(5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM trips WHERE id`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteTrip(99)
		assert.True(t, errors.Is(err, store.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Referenced By Bookings", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM trips WHERE id`).
			WithArgs(int64(7)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteTrip(7)
		assert.True(t, errors.Is(err, store.ErrInUse))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdvanceTripStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	now := time.Now()
	mock.ExpectExec(`UPDATE trips SET`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	advanced, err := repo.AdvanceTripStatuses(now)
	require.NoError(t, err)
	assert.Equal(t, 3, advanced)

	assert.NoError(t, mock.ExpectationsWereMet())
}
