package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/generator"
	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/metrics"
	"ai-website-builder/internal/repository"
	"ai-website-builder/internal/validator"
)

// Section upsert sources recorded in metrics.
const (
	sourceGenerated = "generated"
	sourceManual    = "manual"
)

// WebsiteService runs the website workflow: creation, section generation and
// editing, publishing and chat. Concurrent writes to the same website are
// last-write-wins.
type WebsiteService struct {
	repo      repository.WebsiteRepository
	generator ContentGenerator
	validator *validator.Validator
	now       func() time.Time
}

// NewWebsiteService creates a new WebsiteService.
func NewWebsiteService(
	repo repository.WebsiteRepository,
	gen ContentGenerator,
	v *validator.Validator,
) *WebsiteService {
	return &WebsiteService{
		repo:      repo,
		generator: gen,
		validator: v,
		now:       time.Now,
	}
}

// CreateWebsite stores a new draft website with no sections.
func (s *WebsiteService) CreateWebsite(ctx context.Context, input CreateWebsiteInput) (*domain.Website, error) {
	website := domain.NewWebsite(
		uuid.New().String(),
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Description),
		strings.TrimSpace(input.OtherDetails),
		s.now(),
	)
	if err := s.validator.ValidateWebsite(website); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, website); err != nil {
		return nil, fmt.Errorf("save website: %w", err)
	}

	metrics.ObserveWebsiteEvent("created")
	logger.WithWebsiteID(website.ID).InfoContext(ctx, "Website created",
		slog.String("name", website.Name))

	return website, nil
}

// SuggestDetails drafts additional details for a website idea. Nothing is stored.
func (s *WebsiteService) SuggestDetails(ctx context.Context, name, description string) (*Suggestion, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if err := s.validator.ValidateSuggestRequest(name, description); err != nil {
		return nil, err
	}

	text := s.generator.Suggest(ctx, name, description)

	html, err := generator.RenderMarkdown(text)
	if err != nil {
		logger.WarnContext(ctx, "Failed to render suggestion markdown",
			slog.String("error", err.Error()))
	}

	return &Suggestion{Text: text, HTML: html}, nil
}

// GenerateSection generates content for a section from the website context and
// the sections generated so far, then upserts it by name.
func (s *WebsiteService) GenerateSection(ctx context.Context, websiteID, sectionName string) (*domain.Section, error) {
	websiteID, sectionName = strings.TrimSpace(websiteID), strings.TrimSpace(sectionName)
	if err := s.validator.ValidateSectionRequest(websiteID, sectionName); err != nil {
		return nil, err
	}

	website, err := s.load(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	content := s.generator.GenerateSection(ctx, generator.SiteInfoOf(website), sectionName, website.Sections)

	_, existed := website.Section(sectionName)
	website.UpsertSection(sectionName, content)

	if err := s.repo.Save(ctx, website); err != nil {
		return nil, fmt.Errorf("save website: %w", err)
	}
	metrics.ObserveSectionUpsert(sourceGenerated, !existed)

	logger.WithWebsiteID(websiteID).InfoContext(ctx, "Section generated",
		slog.String("section", sectionName),
		slog.Bool("regenerated", existed),
		slog.Int("content_length", len(content)))

	section, _ := website.Section(sectionName)
	result := *section
	return &result, nil
}

// UpdateSection overwrites the content of an existing section.
// It never creates a section; unknown names return ErrSectionNotFound.
func (s *WebsiteService) UpdateSection(ctx context.Context, websiteID, sectionName, content string) error {
	websiteID, sectionName = strings.TrimSpace(websiteID), strings.TrimSpace(sectionName)
	if err := s.validator.ValidateUpdateRequest(websiteID, sectionName, content); err != nil {
		return err
	}

	website, err := s.load(ctx, websiteID)
	if err != nil {
		return err
	}

	if _, ok := website.Section(sectionName); !ok {
		return domain.ErrSectionNotFound
	}
	website.UpsertSection(sectionName, content)

	if err := s.repo.Save(ctx, website); err != nil {
		return fmt.Errorf("save website: %w", err)
	}
	metrics.ObserveSectionUpsert(sourceManual, false)

	logger.WithWebsiteID(websiteID).InfoContext(ctx, "Section updated",
		slog.String("section", sectionName))

	return nil
}

// Publish marks a website as published. Publishing an already published
// website succeeds without writing.
func (s *WebsiteService) Publish(ctx context.Context, websiteID string) (*domain.Website, error) {
	websiteID = strings.TrimSpace(websiteID)
	if err := s.validator.ValidatePublishRequest(websiteID); err != nil {
		return nil, err
	}

	website, err := s.load(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	if website.IsPublished() {
		return website, nil
	}

	website.Publish()
	if err := s.repo.Save(ctx, website); err != nil {
		return nil, fmt.Errorf("save website: %w", err)
	}

	metrics.ObserveWebsiteEvent("published")
	logger.WithWebsiteID(websiteID).InfoContext(ctx, "Website published")

	return website, nil
}

// Chat answers a visitor message. The context is rebuilt from the stored
// sections on every call and no transcript is kept.
func (s *WebsiteService) Chat(ctx context.Context, websiteID, message string) (string, error) {
	websiteID, message = strings.TrimSpace(websiteID), strings.TrimSpace(message)
	if err := s.validator.ValidateChatRequest(websiteID, message); err != nil {
		return "", err
	}

	website, err := s.load(ctx, websiteID)
	if err != nil {
		return "", err
	}

	return s.generator.Chat(ctx, generator.SiteInfoOf(website), website.Sections, message), nil
}

// GetWebsite retrieves a website by ID.
func (s *WebsiteService) GetWebsite(ctx context.Context, id string) (*domain.Website, error) {
	return s.load(ctx, strings.TrimSpace(id))
}

// ListWebsites returns all websites, newest first.
func (s *WebsiteService) ListWebsites(ctx context.Context) ([]domain.Website, error) {
	websites, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	if websites == nil {
		websites = []domain.Website{}
	}
	return websites, nil
}

// ViewWebsite returns what an anonymous viewer sees. An unknown id yields the
// not-found view rather than an error.
func (s *WebsiteService) ViewWebsite(ctx context.Context, id string) (domain.View, error) {
	website, err := s.load(ctx, strings.TrimSpace(id))
	if err != nil && !errors.Is(err, domain.ErrWebsiteNotFound) {
		return domain.View{}, err
	}
	return domain.ResolveView(website), nil
}

// load fetches a website, mapping unknown or malformed ids to ErrWebsiteNotFound.
func (s *WebsiteService) load(ctx context.Context, id string) (*domain.Website, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrWebsiteNotFound
	}

	website, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get website: %w", err)
	}
	if website == nil {
		return nil, domain.ErrWebsiteNotFound
	}

	return website, nil
}
