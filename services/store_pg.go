package services

import (
	"context"
	"fmt"

	"food-picker/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore keeps menus in PostgreSQL.
type PgStore struct {
	pool *pgxpool.Pool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

func (s *PgStore) Get(ctx context.Context, f Filter) ([]models.MenuEntry, error) {
	if f.UserID == "" {
		return nil, errNoUser
	}
	q, args := pgDialect.selectQuery(f)
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	var entries []models.MenuEntry
	for rows.Next() {
		var userID, name, menuType string
		var weight float64
		if err := rows.Scan(&userID, &name, &menuType, &weight); err != nil {
			return nil, err
		}
		entries = append(entries, models.MenuEntry{
			UserID:   userID,
			ItemName: name,
			MenuType: models.MenuType(menuType),
			Weight:   weight,
		})
	}
	return entries, rows.Err()
}

func (s *PgStore) Upsert(ctx context.Context, entries []models.MenuEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		q, args := pgDialect.upsertQuery(e)
		if _, err := tx.Exec(ctx, q, args...); err != nil {
			return fmt.Errorf("upsert %s/%s: %w", e.MenuType, e.ItemName, err)
		}
	}
	return tx.Commit(ctx)
}

func (s *PgStore) Remove(ctx context.Context, f Filter) (int64, error) {
	if f.UserID == "" {
		return 0, errNoUser
	}
	q, args := pgDialect.deleteQuery(f)
	tag, err := s.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("delete menu: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *PgStore) DistinctWeights(ctx context.Context, userID string, menuType models.MenuType) (int, error) {
	q, args := pgDialect.distinctWeightsQuery(userID, menuType)
	var n int
	if err := s.pool.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count weights: %w", err)
	}
	return n, nil
}

func (s *PgStore) MenuTypes(ctx context.Context, userID string) ([]models.MenuType, error) {
	q, args := pgDialect.menuTypesQuery(userID)
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu types: %w", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return sortMenuTypes(raw), nil
}
