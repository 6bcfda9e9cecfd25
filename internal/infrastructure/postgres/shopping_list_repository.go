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

var _ repository.ShoppingListRepository = (*ShoppingListRepo)(nil)

// ShoppingListRepo implémentation du port ShoppingListRepository sur PostgreSQL.
//
// L'invariant "au plus une entrée active par article" repose sur l'index unique
// partiel:
//
//	CREATE UNIQUE INDEX shopping_entries_active_item
//	ON shopping_list_entries (item_id) WHERE status IN ('pending', 'ordered');
type ShoppingListRepo struct {
	q Querier
}

// NewShoppingListRepository construit l'adaptateur de persistance de la liste de courses.
func NewShoppingListRepository(q Querier) *ShoppingListRepo {
	return &ShoppingListRepo{q: q}
}

const entryColumns = `id, item_id, quantity_needed, unit, priority, status, notes, added_at, updated_at`

// Create insère une entrée. Renvoie ErrDuplicate si une entrée active existe déjà
// pour cet article (violation de l'index unique partiel).
func (r *ShoppingListRepo) Create(ctx context.Context, entry *entity.ShoppingEntry) error {
	query := `
		INSERT INTO shopping_list_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ItemID, entry.QuantityNeeded, entry.Unit, entry.Priority,
		entry.Status, entry.Notes, entry.AddedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shopping entry: %w", err)
	}
	return nil
}

// GetByID récupère une entrée par ID.
func (r *ShoppingListRepo) GetByID(ctx context.Context, id string) (*entity.ShoppingEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM shopping_list_entries WHERE id = $1`
	var e entity.ShoppingEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ItemID, &e.QuantityNeeded, &e.Unit, &e.Priority,
		&e.Status, &e.Notes, &e.AddedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shopping entry: %w", err)
	}
	return &e, nil
}

// GetActiveByItem récupère l'entrée active (pending ou ordered) d'un article.
func (r *ShoppingListRepo) GetActiveByItem(ctx context.Context, itemID string) (*entity.ShoppingEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM shopping_list_entries
		WHERE item_id = $1 AND status IN ('pending', 'ordered')`
	var e entity.ShoppingEntry
	err := r.q.QueryRow(ctx, query, itemID).Scan(
		&e.ID, &e.ItemID, &e.QuantityNeeded, &e.Unit, &e.Priority,
		&e.Status, &e.Notes, &e.AddedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active shopping entry: %w", err)
	}
	return &e, nil
}

// ListByStatus liste les entrées (jointure sur le nom d'article), triées par
// priorité décroissante puis date d'ajout. statuses vide = entrées actives.
func (r *ShoppingListRepo) ListByStatus(ctx context.Context, statuses []string) ([]repository.EntryRow, error) {
	if len(statuses) == 0 {
		statuses = []string{entity.EntryStatusPending, entity.EntryStatusOrdered}
	}
	query := `
		SELECT e.id, e.item_id, e.quantity_needed, e.unit, e.priority, e.status,
		       e.notes, e.added_at, e.updated_at, COALESCE(i.name, '')
		FROM shopping_list_entries e
		LEFT JOIN items i ON i.id = e.item_id
		WHERE e.status = ANY($1)
		ORDER BY
			CASE e.priority
				WHEN 'urgent' THEN 0
				WHEN 'high'   THEN 1
				WHEN 'medium' THEN 2
				ELSE 3
			END,
			e.added_at`
	rows, err := r.q.Query(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("list shopping entries: %w", err)
	}
	defer rows.Close()

	var out []repository.EntryRow
	for rows.Next() {
		var row repository.EntryRow
		e := &row.Entry
		if err := rows.Scan(
			&e.ID, &e.ItemID, &e.QuantityNeeded, &e.Unit, &e.Priority,
			&e.Status, &e.Notes, &e.AddedAt, &e.UpdatedAt, &row.ItemName,
		); err != nil {
			return nil, fmt.Errorf("scan shopping entry: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Update met à jour une entrée existante.
func (r *ShoppingListRepo) Update(ctx context.Context, entry *entity.ShoppingEntry) error {
	query := `
		UPDATE shopping_list_entries
		SET quantity_needed = $2, priority = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		entry.ID, entry.QuantityNeeded, entry.Priority, entry.Notes, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shopping entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus change le statut d'une entrée.
func (r *ShoppingListRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE shopping_list_entries SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update shopping entry status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete supprime une entrée.
func (r *ShoppingListRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM shopping_list_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InsertMissing insère en bloc les entrées dont l'article n'a pas déjà une entrée
// active. ON CONFLICT sur l'index unique partiel rend l'opération idempotente;
// le nombre renvoyé est le nombre de lignes réellement insérées.
func (r *ShoppingListRepo) InsertMissing(ctx context.Context, entries []*entity.ShoppingEntry) (int, error) {
	query := `
		INSERT INTO shopping_list_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (item_id) WHERE status IN ('pending', 'ordered') DO NOTHING`
	inserted := 0
	for _, e := range entries {
		cmd, err := r.q.Exec(ctx, query,
			e.ID, e.ItemID, e.QuantityNeeded, e.Unit, e.Priority,
			e.Status, e.Notes, e.AddedAt, e.UpdatedAt,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert missing shopping entry: %w", err)
		}
		inserted += int(cmd.RowsAffected())
	}
	return inserted, nil
}
