package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roombook/internal/domain"
)

type MockReportGateway struct {
	mock.Mock
}

func (m *MockReportGateway) RoomUsage(ctx context.Context, filter domain.ReportFilter) ([]domain.RoomUsage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomUsage), args.Error(1)
}

func TestService_Report(t *testing.T) {
	reports := new(MockReportGateway)
	svc := NewService(reports)

	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.RoomUsage{
		{RoomID: "101", RoomName: "Cabin 1", TotalHours: 15.5, TotalRevenue: 5250},
	}
	reports.On("RoomUsage", mock.Anything, domain.ReportFilter{From: from}).Return(rows, nil)

	got, err := svc.Report(context.Background(), "2025-11-01T00:00:00Z", "")

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestService_Report_InvalidFilter(t *testing.T) {
	reports := new(MockReportGateway)
	svc := NewService(reports)

	_, err := svc.Report(context.Background(), "last week", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.Report(context.Background(), "", "2025-13-99")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	reports.AssertNotCalled(t, "RoomUsage", mock.Anything, mock.Anything)
}
