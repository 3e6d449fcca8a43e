package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-picker/menu"
	"food-picker/models"

	"github.com/rs/zerolog/log"
)

// DefaultConfirmTimeout bounds how long ClearAll waits for the user.
const DefaultConfirmTimeout = 15 * time.Second

var (
	ErrNoItems         = errors.New("no menu items given")
	ErrUnknownMenuType = errors.New("unknown menu type")
)

// Confirmer asks the user to approve a destructive action. It must return
// once ctx is done; returning false means the user did not approve.
type Confirmer func(ctx context.Context) bool

// MenuService runs the menu commands of one bot. Every method is a
// load-modify-save sequence against the store without locking, so two
// concurrent commands on the same menu can lose an update (last upsert wins).
type MenuService struct {
	store          Store
	rng            menu.Source
	confirmTimeout time.Duration
}

func NewMenuService(store Store, confirmTimeout time.Duration) *MenuService {
	if confirmTimeout <= 0 {
		confirmTimeout = DefaultConfirmTimeout
	}
	return &MenuService{store: store, confirmTimeout: confirmTimeout}
}

// DrawResult is the outcome of one draw. Empty is set when the menu has no
// items; Suggest then names a sibling menu worth copying, if any.
type DrawResult struct {
	MenuType models.MenuType
	Item     string
	Empty    bool
	Suggest  models.MenuType
}

// AddResult carries the weight increments applied to items the user already
// had and the menu listing after the add.
type AddResult struct {
	Increments menu.Increments
	Listing    string
}

type MenuListing struct {
	MenuType models.MenuType
	Items    string
}

type DeleteOutcome struct {
	Name    string
	Removed bool
}

// copySuggestions pairs menus whose contents are usually interchangeable.
var copySuggestions = map[models.MenuType]models.MenuType{
	models.MenuLunch:  models.MenuDinner,
	models.MenuDinner: models.MenuLunch,
}

func checkMenuType(t models.MenuType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMenuType, t)
	}
	return nil
}

func (s *MenuService) load(ctx context.Context, userID string, t models.MenuType) (menu.Menu, error) {
	entries, err := s.store.Get(ctx, Filter{UserID: userID, MenuType: t})
	if err != nil {
		return menu.Menu{}, fmt.Errorf("load %s menu: %w", t, err)
	}
	return menu.New(entries...), nil
}

// Draw picks one item from the named menu, or from the menu matching the
// hour of now when menuType is nil.
func (s *MenuService) Draw(ctx context.Context, userID string, menuType *models.MenuType, now time.Time) (DrawResult, error) {
	t := models.MenuTypeForHour(now.Hour())
	if menuType != nil {
		t = *menuType
	}
	if err := checkMenuType(t); err != nil {
		return DrawResult{}, err
	}

	m, err := s.load(ctx, userID, t)
	if err != nil {
		return DrawResult{}, err
	}
	res := DrawResult{MenuType: t}
	if item, ok := m.Draw(s.rng); ok {
		res.Item = item
		return res, nil
	}

	res.Empty = true
	if other, ok := copySuggestions[t]; ok {
		sibling, err := s.load(ctx, userID, other)
		if err != nil {
			return DrawResult{}, err
		}
		if !sibling.Empty() {
			res.Suggest = other
		}
	}
	return res, nil
}

// Add parses tokens and merges them into one menu. A rejected token leaves
// the stored menu untouched.
func (s *MenuService) Add(ctx context.Context, userID string, menuType models.MenuType, tokens []string) (AddResult, error) {
	if err := checkMenuType(menuType); err != nil {
		return AddResult{}, err
	}
	if len(tokens) == 0 {
		return AddResult{}, ErrNoItems
	}
	parsed, err := menu.Parse(userID, menuType, tokens)
	if err != nil {
		return AddResult{}, err
	}

	current, err := s.load(ctx, userID, menuType)
	if err != nil {
		return AddResult{}, err
	}
	merged, inc := current.Merge(parsed...)

	// only rows touched by this batch go back to the store
	touched := make(map[string]bool, len(parsed))
	for _, e := range parsed {
		touched[e.ItemName] = true
	}
	var changed []models.MenuEntry
	for _, e := range merged.Entries() {
		if touched[e.ItemName] {
			changed = append(changed, e)
		}
	}
	if err := s.store.Upsert(ctx, changed); err != nil {
		return AddResult{}, fmt.Errorf("save %s menu: %w", menuType, err)
	}

	log.Debug().Str("user", userID).Str("menu", string(menuType)).Int("items", len(parsed)).Msg("menu items added")
	return AddResult{Increments: inc, Listing: merged.Describe()}, nil
}

// View lists one menu, or every non-empty menu in display order when
// menuType is nil.
func (s *MenuService) View(ctx context.Context, userID string, menuType *models.MenuType) ([]MenuListing, error) {
	types := []models.MenuType{}
	if menuType != nil {
		if err := checkMenuType(*menuType); err != nil {
			return nil, err
		}
		types = append(types, *menuType)
	} else {
		var err error
		if types, err = s.store.MenuTypes(ctx, userID); err != nil {
			return nil, fmt.Errorf("list menus: %w", err)
		}
	}

	listings := make([]MenuListing, 0, len(types))
	for _, t := range types {
		m, err := s.load(ctx, userID, t)
		if err != nil {
			return nil, err
		}
		distinct, err := s.store.DistinctWeights(ctx, userID, t)
		if err != nil {
			return nil, fmt.Errorf("inspect %s menu: %w", t, err)
		}
		listings = append(listings, MenuListing{MenuType: t, Items: m.Format(distinct > 1)})
	}
	return listings, nil
}

// Delete removes each named item from every menu of the user. Names are
// handled independently; a missing name does not stop the others.
func (s *MenuService) Delete(ctx context.Context, userID string, names []string) ([]DeleteOutcome, error) {
	if len(names) == 0 {
		return nil, ErrNoItems
	}
	outcomes := make([]DeleteOutcome, 0, len(names))
	for _, name := range names {
		n, err := s.store.Remove(ctx, Filter{UserID: userID, ItemName: name})
		if err != nil {
			return outcomes, fmt.Errorf("delete %q: %w", name, err)
		}
		outcomes = append(outcomes, DeleteOutcome{Name: name, Removed: n > 0})
	}
	return outcomes, nil
}

// CopyMenu overwrites target with the current contents of source, both
// menus of the same user. It returns the number of items copied.
func (s *MenuService) CopyMenu(ctx context.Context, userID string, target, source models.MenuType) (int, error) {
	if err := checkMenuType(target); err != nil {
		return 0, err
	}
	if err := checkMenuType(source); err != nil {
		return 0, err
	}
	if target == source {
		m, err := s.load(ctx, userID, source)
		return m.Len(), err
	}
	return s.copyScope(ctx, Filter{UserID: userID, MenuType: source}, userID, target)
}

// CopyFromUser overwrites the caller's menu of the given type with another
// user's. With a nil menuType every menu of the caller is replaced by the
// other user's full set.
func (s *MenuService) CopyFromUser(ctx context.Context, userID, sourceUserID string, menuType *models.MenuType) (int, error) {
	src := Filter{UserID: sourceUserID}
	var target models.MenuType
	if menuType != nil {
		if err := checkMenuType(*menuType); err != nil {
			return 0, err
		}
		src.MenuType = *menuType
		target = *menuType
	}
	if sourceUserID == userID {
		entries, err := s.store.Get(ctx, src)
		return len(entries), err
	}
	return s.copyScope(ctx, src, userID, target)
}

// copyScope replaces the destination scope with the rows matching src
// rewritten to userID and, when set, target. An empty target keeps each
// row's own menu type and clears every menu of userID first.
func (s *MenuService) copyScope(ctx context.Context, src Filter, userID string, target models.MenuType) (int, error) {
	entries, err := s.store.Get(ctx, src)
	if err != nil {
		return 0, fmt.Errorf("load source menu: %w", err)
	}
	if _, err := s.store.Remove(ctx, Filter{UserID: userID, MenuType: target}); err != nil {
		return 0, fmt.Errorf("clear target menu: %w", err)
	}

	copied := make([]models.MenuEntry, len(entries))
	for i, e := range entries {
		t := target
		if t == "" {
			t = e.MenuType
		}
		copied[i] = e.WithScope(userID, t)
	}
	if err := s.store.Upsert(ctx, copied); err != nil {
		return 0, fmt.Errorf("save copied menu: %w", err)
	}
	log.Debug().Str("user", userID).Str("from", src.UserID).Str("menu", string(target)).Int("items", len(copied)).Msg("menu copied")
	return len(copied), nil
}

// Clear empties one menu and reports how many items went.
func (s *MenuService) Clear(ctx context.Context, userID string, menuType models.MenuType) (int64, error) {
	if err := checkMenuType(menuType); err != nil {
		return 0, err
	}
	n, err := s.store.Remove(ctx, Filter{UserID: userID, MenuType: menuType})
	if err != nil {
		return 0, fmt.Errorf("clear %s menu: %w", menuType, err)
	}
	return n, nil
}

// ClearAll empties every menu of the user once confirm approves within the
// confirmation window. A refusal or timeout deletes nothing and is not an
// error; the bool reports whether anything was cleared.
func (s *MenuService) ClearAll(ctx context.Context, userID string, confirm Confirmer) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	ok := confirm(cctx)
	expired := cctx.Err() != nil
	cancel()
	if !ok || expired {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		log.Debug().Str("user", userID).Msg("clear all cancelled")
		return false, nil
	}

	n, err := s.store.Remove(ctx, Filter{UserID: userID})
	if err != nil {
		return false, fmt.Errorf("clear all menus: %w", err)
	}
	log.Info().Str("user", userID).Int64("items", n).Msg("all menus cleared")
	return true, nil
}

// ConfirmTimeout is the window ClearAll gives its Confirmer.
func (s *MenuService) ConfirmTimeout() time.Duration {
	return s.confirmTimeout
}
