package repository

import (
	"context"

	"ai-website-builder/internal/domain"
)

// WebsiteRepository defines methods for website data access.
// FindByID returns (nil, nil) when the website does not exist.
type WebsiteRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Website, error)
	FindAll(ctx context.Context) ([]domain.Website, error)
	Save(ctx context.Context, website *domain.Website) error
}
