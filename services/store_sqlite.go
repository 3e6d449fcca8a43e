package services

import (
	"context"
	"database/sql"
	"fmt"

	"food-picker/models"
)

// SQLiteStore keeps menus in a SQLite file through database/sql and the
// pure-Go modernc driver registered by package db.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

func (s *SQLiteStore) Get(ctx context.Context, f Filter) ([]models.MenuEntry, error) {
	if f.UserID == "" {
		return nil, errNoUser
	}
	q, args := sqliteDialect.selectQuery(f)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	var entries []models.MenuEntry
	for rows.Next() {
		var e models.MenuEntry
		var menuType string
		if err := rows.Scan(&e.UserID, &e.ItemName, &menuType, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		e.MenuType = models.MenuType(menuType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Upsert(ctx context.Context, entries []models.MenuEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		q, args := sqliteDialect.upsertQuery(e)
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("upsert %s/%s: %w", e.MenuType, e.ItemName, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Remove(ctx context.Context, f Filter) (int64, error) {
	if f.UserID == "" {
		return 0, errNoUser
	}
	q, args := sqliteDialect.deleteQuery(f)
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("delete menu: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) DistinctWeights(ctx context.Context, userID string, menuType models.MenuType) (int, error) {
	q, args := sqliteDialect.distinctWeightsQuery(userID, menuType)
	var n int
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count weights: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) MenuTypes(ctx context.Context, userID string) ([]models.MenuType, error) {
	q, args := sqliteDialect.menuTypesQuery(userID)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu types: %w", err)
	}
	defer rows.Close()

	var raw []string
	for rows.Next() {
		var mt string
		if err := rows.Scan(&mt); err != nil {
			return nil, fmt.Errorf("scan menu type: %w", err)
		}
		raw = append(raw, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sortMenuTypes(raw), nil
}
