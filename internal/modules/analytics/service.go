package analytics

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain"
)

var ErrInvalidFilter = errors.New("invalid report filter")

// ReportGateway serves the per-room utilisation report from the backend.
type ReportGateway interface {
	RoomUsage(ctx context.Context, filter domain.ReportFilter) ([]domain.RoomUsage, error)
}

type Service struct {
	reports ReportGateway
}

func NewService(reports ReportGateway) *Service {
	return &Service{reports: reports}
}

func (s *Service) Report(ctx context.Context, from, to string) ([]domain.RoomUsage, error) {
	var filter domain.ReportFilter

	var err error
	if from != "" {
		if filter.From, err = time.Parse(time.RFC3339, from); err != nil {
			return nil, ErrInvalidFilter
		}
	}
	if to != "" {
		if filter.To, err = time.Parse(time.RFC3339, to); err != nil {
			return nil, ErrInvalidFilter
		}
	}

	return s.reports.RoomUsage(ctx, filter)
}
