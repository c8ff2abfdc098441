package catalog

import (
	"context"
	"strings"

	"roombook/internal/domain"
)

type Service struct {
	rooms RoomGateway
}

func NewService(rooms RoomGateway) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListRooms(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	in, err := roomInput(req)
	if err != nil {
		return nil, err
	}
	return s.rooms.CreateRoom(ctx, in)
}

func (s *Service) UpdateRoom(ctx context.Context, id string, req RoomRequest) (*domain.Room, error) {
	in, err := roomInput(req)
	if err != nil {
		return nil, err
	}
	return s.rooms.UpdateRoom(ctx, id, in)
}

func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	return s.rooms.DeleteRoom(ctx, id)
}

// SeedRooms asks the backend to (re)create the default room catalog.
func (s *Service) SeedRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.SeedRooms(ctx)
}

func roomInput(req RoomRequest) (domain.RoomInput, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || req.BaseHourlyRate <= 0 || req.Capacity < 1 {
		return domain.RoomInput{}, ErrValidation
	}
	return domain.RoomInput{
		Name:           name,
		BaseHourlyRate: req.BaseHourlyRate,
		Capacity:       req.Capacity,
		Description:    strings.TrimSpace(req.Description),
	}, nil
}
