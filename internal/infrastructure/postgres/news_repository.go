package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdelort/cafe-manager-api/internal/domain"
	"github.com/jdelort/cafe-manager-api/internal/domain/entity"
	"github.com/jdelort/cafe-manager-api/internal/domain/repository"
)

var _ repository.NewsRepository = (*NewsRepo)(nil)

// NewsRepo implémentation du port NewsRepository sur PostgreSQL.
type NewsRepo struct {
	q Querier
}

// NewNewsRepository construit l'adaptateur de persistance des actualités.
func NewNewsRepository(q Querier) *NewsRepo {
	return &NewsRepo{q: q}
}

const newsColumns = `id, title, body, published, created_by, created_at, updated_at`

// Create persiste une actualité.
func (r *NewsRepo) Create(ctx context.Context, post *entity.NewsPost) error {
	query := `INSERT INTO news_posts (` + newsColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		post.ID, post.Title, post.Body, post.Published, post.CreatedBy,
		post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert news post: %w", err)
	}
	return nil
}

// GetByID récupère une actualité par ID.
func (r *NewsRepo) GetByID(ctx context.Context, id string) (*entity.NewsPost, error) {
	query := `SELECT ` + newsColumns + ` FROM news_posts WHERE id = $1`
	var p entity.NewsPost
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Body, &p.Published, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get news post: %w", err)
	}
	return &p, nil
}

// List liste les actualités, les plus récentes d'abord.
func (r *NewsRepo) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entity.NewsPost, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news_posts
		WHERE ($1 = false OR published = true)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list news posts: %w", err)
	}
	defer rows.Close()

	var out []*entity.NewsPost
	for rows.Next() {
		var p entity.NewsPost
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Body, &p.Published, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan news post: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update met à jour une actualité existante.
func (r *NewsRepo) Update(ctx context.Context, post *entity.NewsPost) error {
	query := `
		UPDATE news_posts
		SET title = $2, body = $3, published = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		post.ID, post.Title, post.Body, post.Published, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update news post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime une actualité.
func (r *NewsRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM news_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
