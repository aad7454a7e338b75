package repository

import (
	"context"
	"sort"
	"sync"

	"ai-website-builder/internal/domain"
)

// MemoryWebsiteRepository implements WebsiteRepository in process memory.
// It is used for local development and tests; data is lost on restart.
type MemoryWebsiteRepository struct {
	mu       sync.RWMutex
	websites map[string]*domain.Website
}

// NewMemoryWebsiteRepository creates an empty MemoryWebsiteRepository.
func NewMemoryWebsiteRepository() *MemoryWebsiteRepository {
	return &MemoryWebsiteRepository{websites: make(map[string]*domain.Website)}
}

// FindByID returns a copy of the stored website, or nil if it does not exist.
func (r *MemoryWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.websites[id]
	if !ok {
		return nil, nil
	}
	return cloneWebsite(w), nil
}

// FindAll returns copies of all websites ordered by creation time descending.
func (r *MemoryWebsiteRepository) FindAll(ctx context.Context) ([]domain.Website, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	websites := make([]domain.Website, 0, len(r.websites))
	for _, w := range r.websites {
		websites = append(websites, *cloneWebsite(w))
	}
	r.mu.RUnlock()

	sort.SliceStable(websites, func(i, j int) bool {
		if websites[i].CreatedAt.Equal(websites[j].CreatedAt) {
			return websites[i].ID < websites[j].ID
		}
		return websites[i].CreatedAt.After(websites[j].CreatedAt)
	})
	return websites, nil
}

// Save stores a copy of the website, replacing any previous version.
func (r *MemoryWebsiteRepository) Save(ctx context.Context, website *domain.Website) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.websites[website.ID] = cloneWebsite(website)
	return nil
}

func cloneWebsite(w *domain.Website) *domain.Website {
	c := *w
	c.Sections = make([]domain.Section, len(w.Sections))
	copy(c.Sections, w.Sections)
	return &c
}
