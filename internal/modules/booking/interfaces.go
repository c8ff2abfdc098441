package booking

import (
	"context"

	"roombook/internal/domain"
)

// BookingGateway is the external booking backend this service fronts.
type BookingGateway interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
}

// RoomGateway supplies the room catalog, used to look up base hourly rates.
type RoomGateway interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}
