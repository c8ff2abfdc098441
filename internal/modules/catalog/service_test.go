package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roombook/internal/domain"
)

type MockRoomGateway struct {
	mock.Mock
}

func (m *MockRoomGateway) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomGateway) CreateRoom(ctx context.Context, in domain.RoomInput) (*domain.Room, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomGateway) UpdateRoom(ctx context.Context, id string, in domain.RoomInput) (*domain.Room, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomGateway) DeleteRoom(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomGateway) SeedRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func TestService_CreateRoom_TrimsAndForwards(t *testing.T) {
	rooms := new(MockRoomGateway)
	svc := NewService(rooms)

	want := domain.RoomInput{Name: "Cabin 1", BaseHourlyRate: 350, Capacity: 4, Description: "Cozy cabin"}
	created := &domain.Room{ID: "101", Name: "Cabin 1", BaseHourlyRate: 350, Capacity: 4}
	rooms.On("CreateRoom", mock.Anything, want).Return(created, nil)

	got, err := svc.CreateRoom(context.Background(), RoomRequest{
		Name:           "  Cabin 1 ",
		BaseHourlyRate: 350,
		Capacity:       4,
		Description:    " Cozy cabin ",
	})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	rooms.AssertExpectations(t)
}

func TestService_CreateRoom_RejectsBadInput(t *testing.T) {
	rooms := new(MockRoomGateway)
	svc := NewService(rooms)

	cases := []RoomRequest{
		{Name: "X", BaseHourlyRate: 350, Capacity: 4},
		{Name: "Cabin 1", BaseHourlyRate: 0, Capacity: 4},
		{Name: "Cabin 1", BaseHourlyRate: -10, Capacity: 4},
		{Name: "Cabin 1", BaseHourlyRate: 350, Capacity: 0},
	}
	for _, req := range cases {
		_, err := svc.CreateRoom(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, "req %+v", req)
	}
	rooms.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything)
}

func TestService_UpdateRoom(t *testing.T) {
	rooms := new(MockRoomGateway)
	svc := NewService(rooms)

	want := domain.RoomInput{Name: "Focus Room", BaseHourlyRate: 275, Capacity: 2}
	updated := &domain.Room{ID: "102", Name: "Focus Room", BaseHourlyRate: 275, Capacity: 2}
	rooms.On("UpdateRoom", mock.Anything, "102", want).Return(updated, nil)

	got, err := svc.UpdateRoom(context.Background(), "102", RoomRequest{
		Name:           "Focus Room",
		BaseHourlyRate: 275,
		Capacity:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
