package booking

import (
	"context"
	"strings"
	"time"

	"roombook/internal/domain"
	"roombook/internal/modules/pricing"
	"roombook/internal/pkg/ist"
)

type Service struct {
	bookings BookingGateway
	rooms    RoomGateway
	pricing  *pricing.Service
	now      func() time.Time
}

func NewService(bookings BookingGateway, rooms RoomGateway, pricing *pricing.Service) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		pricing:  pricing,
		now:      time.Now,
	}
}

// Preview validates the in-progress form input and, once it is acceptable,
// prices it against the room's base rate. It never fails on user input: the
// failures are the response.
func (s *Service) Preview(ctx context.Context, req CreateBookingRequest) (*PreviewResponse, error) {
	resp := &PreviewResponse{
		Errors:   Validate(req.UserName, req.StartLocal, req.EndLocal, s.now()),
		Estimate: pricing.Estimate{Breakdown: []pricing.BreakdownLine{}},
	}
	if len(resp.Errors) > 0 {
		return resp, nil
	}

	room, err := s.findRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	// Validate has already resolved both strings successfully.
	start, _ := ist.Resolve(req.StartLocal)
	end, _ := ist.Resolve(req.EndLocal)

	resp.Estimate = s.pricing.Estimate(room.BaseHourlyRate, start, end)
	resp.StartDisplay = ist.Display(start)
	resp.EndDisplay = ist.Display(end)
	return resp, nil
}

// Create validates and submits a booking to the backend. The payload carries
// resolved UTC instants only, never the wall-clock strings.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if errs := Validate(req.UserName, req.StartLocal, req.EndLocal, s.now()); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.findRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}

	start, _ := ist.Resolve(req.StartLocal)
	end, _ := ist.Resolve(req.EndLocal)

	return s.bookings.CreateBooking(ctx, domain.BookingRequest{
		RoomID:    req.RoomID,
		UserName:  strings.TrimSpace(req.UserName),
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
	})
}

func (s *Service) List(ctx context.Context, q ListBookingsQuery) ([]domain.Booking, error) {
	filter := domain.BookingFilter{RoomID: q.RoomID}

	var err error
	if q.From != "" {
		if filter.From, err = time.Parse(time.RFC3339, q.From); err != nil {
			return nil, ErrInvalidFilter
		}
	}
	if q.To != "" {
		if filter.To, err = time.Parse(time.RFC3339, q.To); err != nil {
			return nil, ErrInvalidFilter
		}
	}

	return s.bookings.ListBookings(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetBooking(ctx, id)
}

// Cancel forwards a cancellation once the two-hour gate passes. The backend
// re-checks the window; this keeps the obviously-too-late calls local.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanCancel(b.StartTime, s.now()) {
		return nil, ErrCancelWindow
	}
	return s.bookings.CancelBooking(ctx, id)
}

func (s *Service) findRoom(ctx context.Context, id string) (*domain.Room, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, ErrRoomNotFound
}
