package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/multitier-app/internal/model"
	"github.com/deppfellow/multitier-app/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ErrItemNotFound is returned when no row matches the requested id.
// It is tagged so sqlerr.HandleError reports "Item not found".
var ErrItemNotFound = fmt.Errorf("%sitems:%w", sqlerr.TablePrefix, pgx.ErrNoRows)

const (
	itemColumns = `id, name, COALESCE(description, '') AS description, created_at, updated_at`

	listItemsQuery = `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC, id DESC`

	getItemQuery = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	createItemQuery = `INSERT INTO items (name, description) VALUES ($1, $2) RETURNING ` + itemColumns

	updateItemQuery = `UPDATE items SET name = $1, description = COALESCE($2, description), updated_at = NOW() ` +
		`WHERE id = $3 RETURNING ` + itemColumns

	deleteItemQuery = `DELETE FROM items WHERE id = $1`
)

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListItems returns every item, newest first.
func (r *ItemRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, listItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, getItemQuery, id))
	if err != nil {
		return nil, notFoundOr(err, "get", id)
	}
	return &item, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, name, description string) (*model.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, createItemQuery, name, description))
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// UpdateItem replaces the name and, when description is non-nil, the
// description of one item in a single statement.
func (r *ItemRepository) UpdateItem(ctx context.Context, id int64, name string, description *string) (*model.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, updateItemQuery, name, description, id))
	if err != nil {
		return nil, notFoundOr(err, "update", id)
	}
	return &item, nil
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

func scanItem(row pgx.Row) (model.Item, error) {
	var item model.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}

func notFoundOr(err error, op string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrItemNotFound
	}
	return fmt.Errorf("failed to %s item %d: %w", op, id, err)
}
