package gateway

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"roombook/internal/domain"
)

func (c *Client) RoomUsage(ctx context.Context, filter domain.ReportFilter) ([]domain.RoomUsage, error) {
	query := url.Values{}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.UTC().Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.UTC().Format(time.RFC3339))
	}

	var rows []domain.RoomUsage
	if err := c.do(ctx, http.MethodGet, "/api/analytics", query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
