package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-website-builder/internal/domain"
)

// PostgresWebsiteRepository implements WebsiteRepository using PostgreSQL.
// Sections live in website_sections keyed by (website_id, name).
type PostgresWebsiteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWebsiteRepository creates a new PostgresWebsiteRepository.
func NewPostgresWebsiteRepository(pool *pgxpool.Pool) *PostgresWebsiteRepository {
	return &PostgresWebsiteRepository{pool: pool}
}

// FindByID retrieves a website and its sections by ID.
func (r *PostgresWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	var w domain.Website

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, other_details, status, created_at, updated_at
		FROM websites
		WHERE id = $1
	`, id).Scan(&w.ID, &w.Name, &w.Description, &w.OtherDetails, &w.Status, &w.CreatedAt, &w.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get website: %w", err)
	}

	sections, err := r.sectionsFor(ctx, []string{w.ID})
	if err != nil {
		return nil, err
	}
	w.Sections = sections[w.ID]
	if w.Sections == nil {
		w.Sections = []domain.Section{}
	}

	return &w, nil
}

// FindAll retrieves all websites with their sections, newest first.
func (r *PostgresWebsiteRepository) FindAll(ctx context.Context) ([]domain.Website, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, other_details, status, created_at, updated_at
		FROM websites
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query websites: %w", err)
	}
	defer rows.Close()

	websites := make([]domain.Website, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var w domain.Website
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.OtherDetails, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan website: %w", err)
		}
		websites = append(websites, w)
		ids = append(ids, w.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate websites: %w", err)
	}

	if len(ids) == 0 {
		return websites, nil
	}

	sections, err := r.sectionsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range websites {
		websites[i].Sections = sections[websites[i].ID]
		if websites[i].Sections == nil {
			websites[i].Sections = []domain.Section{}
		}
	}

	return websites, nil
}

// Save creates or updates a website and upserts its sections by name in one transaction.
// Sections absent from the aggregate are left untouched; sections are never deleted.
func (r *PostgresWebsiteRepository) Save(ctx context.Context, website *domain.Website) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO websites (id, name, description, other_details, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			other_details = EXCLUDED.other_details,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`, website.ID, website.Name, website.Description, website.OtherDetails, website.Status,
		website.CreatedAt, website.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert website: %w", err)
	}

	if len(website.Sections) > 0 {
		batch := &pgx.Batch{}
		for _, s := range website.Sections {
			batch.Queue(`
				INSERT INTO website_sections (website_id, name, content, position, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (website_id, name) DO UPDATE
				SET content = EXCLUDED.content,
					position = EXCLUDED.position,
					updated_at = EXCLUDED.updated_at
			`, website.ID, s.Name, s.Content, s.Order, s.CreatedAt, s.UpdatedAt)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert sections: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// sectionsFor loads the sections of the given websites in display order.
func (r *PostgresWebsiteRepository) sectionsFor(ctx context.Context, websiteIDs []string) (map[string][]domain.Section, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT website_id, name, content, position, created_at, updated_at
		FROM website_sections
		WHERE website_id = ANY($1::uuid[])
		ORDER BY website_id, position, created_at
	`, websiteIDs)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Section, len(websiteIDs))
	for rows.Next() {
		var websiteID string
		var s domain.Section
		if err := rows.Scan(&websiteID, &s.Name, &s.Content, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		result[websiteID] = append(result[websiteID], s)
	}

	return result, rows.Err()
}
