package catalog

import (
	"context"

	"roombook/internal/domain"
)

// RoomGateway is the room store owned by the external backend.
type RoomGateway interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	CreateRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	SeedRooms(ctx context.Context) ([]domain.Room, error)
}
