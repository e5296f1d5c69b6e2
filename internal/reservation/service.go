package reservation

import (
	"context"
	"strings"

	"restofresh-web/internal/logger"

	"go.uber.org/zap"
)

// BookingService validates a table booking before it leaves the app.
// Validation failures never reach the network.
type BookingService struct {
	reservations *Client
}

func NewBookingService(reservations *Client) *BookingService {
	return &BookingService{reservations: reservations}
}

func (s *BookingService) Book(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	created, err := s.reservations.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("reservation created",
		zap.String("reservation_id", created.ID),
		zap.String("date", created.Date),
		zap.String("time", created.Time),
		zap.Int("guests", created.Guests),
	)
	return created, nil
}

func validateBooking(req CreateReservationRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(req.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(req.Time) == "" {
		return ErrMissingTime
	}
	if req.Guests < 1 {
		return ErrInvalidGuests
	}
	return nil
}
