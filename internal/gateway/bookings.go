package gateway

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"roombook/internal/domain"
)

func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	// Instants cross the wire as RFC3339 UTC, never as wall-clock strings.
	req.StartTime = req.StartTime.UTC()
	req.EndTime = req.EndTime.UTC()

	var b domain.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	query := url.Values{}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.UTC().Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.UTC().Format(time.RFC3339))
	}
	if filter.RoomID != "" {
		query.Set("roomId", filter.RoomID)
	}

	var bookings []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", query, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/"+id, nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
