package service

import (
	"context"

	"ravintola-sinet/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Daily(ctx context.Context, date string) (*domain.Counters, error)
	TopItems(ctx context.Context, date string, limit int) ([]domain.ItemCount, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
