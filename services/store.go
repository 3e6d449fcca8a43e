package services

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"food-picker/models"
)

// Filter selects rows of one user. Empty MenuType or ItemName match anything.
type Filter struct {
	UserID   string
	MenuType models.MenuType
	ItemName string
}

// Store persists menu entries keyed by (user, item, menu type). A single
// Upsert or Remove call applies to its whole batch or not at all; nothing
// larger is transactional.
type Store interface {
	// Get returns matching entries in insertion order.
	Get(ctx context.Context, f Filter) ([]models.MenuEntry, error)
	// Upsert inserts entries, overwriting the weight of existing keys.
	Upsert(ctx context.Context, entries []models.MenuEntry) error
	// Remove deletes matching entries and reports how many went.
	Remove(ctx context.Context, f Filter) (int64, error)
	// DistinctWeights counts the different weights in one menu.
	DistinctWeights(ctx context.Context, userID string, menuType models.MenuType) (int, error)
	// MenuTypes lists the non-empty menus of a user in display order.
	MenuTypes(ctx context.Context, userID string) ([]models.MenuType, error)
}

var errNoUser = errors.New("filter without user id")

// dialect carries the placeholder syntax that differs between backends.
type dialect struct {
	placeholder func(n int) string
}

var (
	pgDialect     = dialect{placeholder: func(n int) string { return "$" + strconv.Itoa(n) }}
	sqliteDialect = dialect{placeholder: func(int) string { return "?" }}
)

func (d dialect) where(f Filter) (string, []interface{}) {
	conds := []string{"user_id = " + d.placeholder(1)}
	args := []interface{}{f.UserID}
	if f.MenuType != "" {
		args = append(args, string(f.MenuType))
		conds = append(conds, "menu_type = "+d.placeholder(len(args)))
	}
	if f.ItemName != "" {
		args = append(args, f.ItemName)
		conds = append(conds, "item_name = "+d.placeholder(len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (d dialect) selectQuery(f Filter) (string, []interface{}) {
	where, args := d.where(f)
	return `SELECT user_id, item_name, menu_type, weight FROM user_food_menu` + where +
		` ORDER BY menu_type, seq, item_name`, args
}

func (d dialect) deleteQuery(f Filter) (string, []interface{}) {
	where, args := d.where(f)
	return `DELETE FROM user_food_menu` + where, args
}

// upsertQuery appends new items at the end of their scope and keeps the
// position of items that already exist.
func (d dialect) upsertQuery(e models.MenuEntry) (string, []interface{}) {
	p := d.placeholder
	q := `INSERT INTO user_food_menu (user_id, item_name, menu_type, weight, seq)
		VALUES (` + p(1) + `, ` + p(2) + `, ` + p(3) + `, ` + p(4) + `,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM user_food_menu WHERE user_id = ` + p(5) + ` AND menu_type = ` + p(6) + `))
		ON CONFLICT (user_id, item_name, menu_type) DO UPDATE SET weight = excluded.weight`
	return q, []interface{}{e.UserID, e.ItemName, string(e.MenuType), e.Weight, e.UserID, string(e.MenuType)}
}

func (d dialect) distinctWeightsQuery(userID string, menuType models.MenuType) (string, []interface{}) {
	return `SELECT COUNT(DISTINCT weight) FROM user_food_menu WHERE user_id = ` + d.placeholder(1) +
		` AND menu_type = ` + d.placeholder(2), []interface{}{userID, string(menuType)}
}

func (d dialect) menuTypesQuery(userID string) (string, []interface{}) {
	return `SELECT DISTINCT menu_type FROM user_food_menu WHERE user_id = ` + d.placeholder(1), []interface{}{userID}
}

// sortMenuTypes orders raw menu_type values as models.MenuTypes does and drops unknown ones.
func sortMenuTypes(raw []string) []models.MenuType {
	var out []models.MenuType
	for _, mt := range models.MenuTypes {
		if slices.Contains(raw, string(mt)) {
			out = append(out, mt)
		}
	}
	return out
}
