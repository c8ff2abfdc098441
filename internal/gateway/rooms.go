package gateway

import (
	"context"
	"net/http"

	"roombook/internal/domain"
)

func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	var room domain.Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms", nil, in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error) {
	var room domain.Room
	if err := c.do(ctx, http.MethodPut, "/api/rooms/"+id, nil, in, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/rooms/"+id, nil, nil, nil)
}

func (c *Client) SeedRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms/seed", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
