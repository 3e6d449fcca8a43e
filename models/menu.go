package models

import (
	"fmt"
	"strings"
)

// MenuType is one of the five fixed menus a user can keep.
type MenuType string

const (
	MenuBreakfast MenuType = "breakfast"
	MenuLunch     MenuType = "lunch"
	MenuDinner    MenuType = "dinner"
	MenuSnacks    MenuType = "snacks"
	MenuDrink     MenuType = "drink"
)

// MenuTypes lists every menu type in display order.
var MenuTypes = []MenuType{MenuBreakfast, MenuLunch, MenuDinner, MenuSnacks, MenuDrink}

var menuTypeAliases = map[string]MenuType{
	"breakfast": MenuBreakfast,
	"早饭":        MenuBreakfast,
	"早餐":        MenuBreakfast,
	"lunch":     MenuLunch,
	"午饭":        MenuLunch,
	"午餐":        MenuLunch,
	"dinner":    MenuDinner,
	"晚饭":        MenuDinner,
	"晚餐":        MenuDinner,
	"snacks":    MenuSnacks,
	"snack":     MenuSnacks,
	"零食":        MenuSnacks,
	"小吃":        MenuSnacks,
	"drink":     MenuDrink,
	"drinks":    MenuDrink,
	"饮料":        MenuDrink,
	"喝的":        MenuDrink,
}

// Valid reports whether t is one of the five known menu types.
func (t MenuType) Valid() bool {
	switch t {
	case MenuBreakfast, MenuLunch, MenuDinner, MenuSnacks, MenuDrink:
		return true
	}
	return false
}

// ParseMenuType resolves an English name or a Chinese alias to a MenuType.
func ParseMenuType(s string) (MenuType, bool) {
	t, ok := menuTypeAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// MenuTypeForHour picks the meal for a wall-clock hour when the user did not name one.
func MenuTypeForHour(hour int) MenuType {
	switch {
	case hour >= 4 && hour < 11:
		return MenuBreakfast
	case hour >= 11 && hour < 16:
		return MenuLunch
	default:
		return MenuDinner
	}
}

// MenuEntry is one weighted item in one user's menu.
// Entries are values; change them by building new ones.
type MenuEntry struct {
	UserID   string
	ItemName string
	MenuType MenuType
	Weight   float64
}

// NewMenuEntry validates and builds an entry. A zero weight defaults to 1 only
// through the parser; here the weight must already be positive.
func NewMenuEntry(userID, itemName string, menuType MenuType, weight float64) (MenuEntry, error) {
	if userID == "" {
		return MenuEntry{}, fmt.Errorf("user id is required")
	}
	if itemName == "" {
		return MenuEntry{}, fmt.Errorf("item name is required")
	}
	if !menuType.Valid() {
		return MenuEntry{}, fmt.Errorf("invalid menu type: %s", menuType)
	}
	if weight <= 0 {
		return MenuEntry{}, fmt.Errorf("weight must be > 0, got %v", weight)
	}
	return MenuEntry{UserID: userID, ItemName: itemName, MenuType: menuType, Weight: weight}, nil
}

// SameKey reports whether two entries share (UserID, ItemName, MenuType).
func (e MenuEntry) SameKey(o MenuEntry) bool {
	return e.UserID == o.UserID && e.ItemName == o.ItemName && e.MenuType == o.MenuType
}

// WithWeight returns a copy of e carrying weight w.
func (e MenuEntry) WithWeight(w float64) MenuEntry {
	e.Weight = w
	return e
}

// WithScope returns a copy of e moved to another user and menu type.
func (e MenuEntry) WithScope(userID string, menuType MenuType) MenuEntry {
	e.UserID = userID
	e.MenuType = menuType
	return e
}

// UserID builds the platform-qualified id stored with every entry.
func UserID(platform string, id int64) string {
	return fmt.Sprintf("%s:%d", platform, id)
}
