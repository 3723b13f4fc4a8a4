package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// ReceiptService renders booking receipts as PDF
type ReceiptService struct {
	store  store.Store
	logger *logrus.Logger
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(st store.Store, logger *logrus.Logger) *ReceiptService {
	return &ReceiptService{store: st, logger: logger}
}

// BookingReceipt renders a PDF receipt for the booking. The caller is
// responsible for ownership checks.
func (s *ReceiptService) BookingReceipt(booking *models.Booking) ([]byte, error) {
	trip, err := s.store.GetTripByID(booking.TripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}
	route, err := s.store.GetRouteByID(trip.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load route: %w", err)
	}
	customer, err := s.store.GetCustomerByID(booking.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	vendor, err := s.store.GetVendorByID(booking.VendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No : BK-%06d", booking.ID),
		fmt.Sprintf("Issued     : %s", booking.BookingTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Operator   : %s", vendor.Name),
		"",
		fmt.Sprintf("Passenger  : %s", customer.Name),
		fmt.Sprintf("Email      : %s", customer.Email),
		"",
		fmt.Sprintf("Route      : %s - %s", route.Origin, route.Destination),
		fmt.Sprintf("Departure  : %s", trip.DepartureTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Arrival    : %s", trip.ArrivalTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Seats      : %d", booking.SeatCount),
		fmt.Sprintf("Status     : %s", booking.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total: ZMW %.2f", booking.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this receipt when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"vendor_id":  booking.VendorID,
	}).Debug("Rendered booking receipt")

	return buf.Bytes(), nil
}
