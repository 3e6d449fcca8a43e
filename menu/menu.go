// Package menu holds the weighted menu: merging added items into an existing
// menu, parsing "name(weight)" tokens and drawing an item in proportion to its
// weight. Everything here is pure; persistence lives in services.
package menu

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"food-picker/models"
)

// MaxWeight caps a parsed weight and any weight raised by Merge, which keeps
// the total of a menu finite.
const MaxWeight = 1e9

// ListSeparator joins item names in a formatted menu.
var ListSeparator = "，"

// Source yields uniform floats in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// Menu is an immutable, insertion-ordered set of entries for one or more
// (user, menu type) scopes.
type Menu struct {
	entries []models.MenuEntry
}

// New builds a menu from entries in the given order.
func New(entries ...models.MenuEntry) Menu {
	return Menu{entries: append([]models.MenuEntry(nil), entries...)}
}

// Entries returns a copy of the entries in insertion order.
func (m Menu) Entries() []models.MenuEntry {
	return append([]models.MenuEntry(nil), m.entries...)
}

func (m Menu) Len() int    { return len(m.entries) }
func (m Menu) Empty() bool { return len(m.entries) == 0 }

// TotalWeight is the sum of all entry weights.
func (m Menu) TotalWeight() float64 {
	var total float64
	for _, e := range m.entries {
		total += e.Weight
	}
	return total
}

// Scope returns the entries belonging to one user's menu type.
func (m Menu) Scope(userID string, menuType models.MenuType) Menu {
	var out []models.MenuEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.MenuType == menuType {
			out = append(out, e)
		}
	}
	return Menu{entries: out}
}

func (m Menu) find(e models.MenuEntry) int {
	for i, cur := range m.entries {
		if cur.SameKey(e) {
			return i
		}
	}
	return -1
}

// Merge adds entries to the menu. An entry whose key already exists has its
// weight raised by the incoming weight; anything else is appended. The
// returned Increments only names entries that were present before the call,
// even when an item added by this call shows up again later in the batch.
// Merging the same entry twice raises its weight twice, up to MaxWeight.
func (m Menu) Merge(in ...models.MenuEntry) (Menu, Increments) {
	out := m.Entries()
	preexisting := len(out)
	var inc Increments

	for _, e := range in {
		i := Menu{entries: out}.find(e)
		if i < 0 {
			out = append(out, e)
			continue
		}
		out[i] = out[i].WithWeight(math.Min(out[i].Weight+e.Weight, MaxWeight))
		if i < preexisting {
			inc.add(e.ItemName, e.Weight)
		}
	}
	return Menu{entries: out}, inc
}

// ParseAndMerge parses tokens for one scope and merges them. Nothing is merged
// when any token is rejected.
func (m Menu) ParseAndMerge(userID string, menuType models.MenuType, tokens []string) (Menu, Increments, error) {
	entries, err := Parse(userID, menuType, tokens)
	if err != nil {
		return m, Increments{}, err
	}
	merged, inc := m.Merge(entries...)
	return merged, inc, nil
}

// Draw picks one item name with probability weight/total. It returns false
// for an empty menu or one whose weights do not add up to a positive finite
// total. A nil src uses the global generator.
func (m Menu) Draw(src Source) (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}
	// weights built outside Parse and Merge may still overflow the sum
	scale := 1.0
	total := m.TotalWeight()
	if math.IsInf(total, 1) {
		scale = 1 / float64(len(m.entries))
		total = 0
		for _, e := range m.entries {
			total += e.Weight * scale
		}
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return "", false
	}

	var u float64
	if src == nil {
		u = rand.Float64()
	} else {
		u = src.Float64()
	}
	r := u * total
	if r >= total {
		r = math.Nextafter(total, 0)
	}

	var sum float64
	for _, e := range m.entries {
		sum += e.Weight * scale
		if r < sum {
			return e.ItemName, true
		}
	}
	// rounding left the running sum just short of r
	return m.entries[len(m.entries)-1].ItemName, true
}

// UniformWeight reports whether every entry carries the same weight.
// An empty menu is uniform.
func (m Menu) UniformWeight() bool {
	for _, e := range m.entries {
		if e.Weight != m.entries[0].Weight {
			return false
		}
	}
	return true
}

// Describe lists the item names, annotating weights unless they are all equal.
func (m Menu) Describe() string {
	return m.Format(!m.UniformWeight())
}

// Format lists the item names, with "(weight)" after each when withWeights is set.
func (m Menu) Format(withWeights bool) string {
	if len(m.entries) == 0 {
		return ""
	}
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		if withWeights {
			parts[i] = e.ItemName + "(" + FormatWeight(e.Weight) + ")"
		} else {
			parts[i] = e.ItemName
		}
	}
	return strings.Join(parts, ListSeparator)
}

// FormatWeight renders a weight without trailing zeros: 2, 0.5, 1.25.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
