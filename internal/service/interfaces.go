package service

import (
	"context"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/generator"
)

// ContentGenerator produces suggestion text, section markup and chat replies.
// Implementations never fail; they return fallback content instead.
type ContentGenerator interface {
	Suggest(ctx context.Context, name, description string) string
	GenerateSection(ctx context.Context, site generator.SiteInfo, sectionName string, previous []domain.Section) string
	Chat(ctx context.Context, site generator.SiteInfo, sections []domain.Section, message string) string
}

// WebsiteServiceInterface defines the interface for website operations.
// Used for dependency injection and mocking in tests.
type WebsiteServiceInterface interface {
	// CreateWebsite stores a new draft website with no sections.
	CreateWebsite(ctx context.Context, input CreateWebsiteInput) (*domain.Website, error)
	// SuggestDetails drafts additional details for a website idea. Nothing is stored.
	SuggestDetails(ctx context.Context, name, description string) (*Suggestion, error)
	// GenerateSection generates content for a section and upserts it by name.
	GenerateSection(ctx context.Context, websiteID, sectionName string) (*domain.Section, error)
	// UpdateSection overwrites the content of an existing section.
	UpdateSection(ctx context.Context, websiteID, sectionName, content string) error
	// Publish marks a website as published. Publishing twice succeeds.
	Publish(ctx context.Context, websiteID string) (*domain.Website, error)
	// Chat answers a visitor message from the website's stored sections. Nothing is stored.
	Chat(ctx context.Context, websiteID, message string) (string, error)
	// GetWebsite retrieves a website by ID.
	GetWebsite(ctx context.Context, id string) (*domain.Website, error)
	// ListWebsites returns all websites, newest first.
	ListWebsites(ctx context.Context) ([]domain.Website, error)
	// ViewWebsite returns what an anonymous viewer sees.
	ViewWebsite(ctx context.Context, id string) (domain.View, error)
}

// CreateWebsiteInput holds the wizard fields for a new website.
type CreateWebsiteInput struct {
	Name         string
	Description  string
	OtherDetails string
}

// Suggestion is the drafted details text and its HTML rendering.
type Suggestion struct {
	Text string
	HTML string
}
