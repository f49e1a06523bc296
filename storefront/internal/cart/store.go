package cart

import (
	"context"
	"errors"
	"sync"

	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

// Namespace is the snapshot key the cart is persisted under.
const Namespace = "order-storage"

var ErrKitchenMismatch = errors.New("cart already holds items from another kitchen")

// Persister stores JSON snapshots by namespace.
type Persister interface {
	Load(ctx context.Context, namespace string, v interface{}) (bool, error)
	Save(ctx context.Context, namespace string, v interface{}) error
}

type Line struct {
	MenuItem            model.MenuItem `json:"menuItem"`
	Quantity            int            `json:"quantity"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
}

type snapshot struct {
	Cart         []Line       `json:"cart"`
	CurrentOrder *model.Order `json:"currentOrder"`
}

// Store holds the cart and the last placed order. All methods are safe
// for concurrent use.
type Store struct {
	mu           sync.RWMutex
	lines        []Line
	currentOrder *model.Order

	persister Persister
	log       logrus.FieldLogger
}

// NewStore restores the persisted cart, if any. A nil persister keeps the
// cart in memory only.
func NewStore(ctx context.Context, persister Persister, log logrus.FieldLogger) *Store {
	s := &Store{persister: persister, log: log}
	if persister == nil {
		return s
	}

	var snap snapshot
	found, err := persister.Load(ctx, Namespace, &snap)
	if err != nil {
		log.WithError(err).Warn("failed to restore cart")
		return s
	}
	if found {
		s.lines = snap.Cart
		s.currentOrder = snap.CurrentOrder
	}
	return s
}

// Add puts quantity of item in the cart. An existing line for the item is
// incremented and its instructions replaced. Items from a kitchen other
// than the one already in the cart are rejected with ErrKitchenMismatch.
func (s *Store) Add(item model.MenuItem, quantity int, instructions string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) > 0 && s.lines[0].MenuItem.KitchenID != item.KitchenID {
		return ErrKitchenMismatch
	}
	s.addLocked(item, quantity, instructions)
	s.persistLocked()
	return nil
}

// Replace empties the cart and starts it again with item.
func (s *Store) Replace(item model.MenuItem, quantity int, instructions string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.addLocked(item, quantity, instructions)
	s.persistLocked()
}

func (s *Store) addLocked(item model.MenuItem, quantity int, instructions string) {
	if i := s.indexLocked(item.ID); i >= 0 {
		s.lines[i].Quantity += quantity
		s.lines[i].SpecialInstructions = instructions
		return
	}
	s.lines = append(s.lines, Line{
		MenuItem:            item,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
}

func (s *Store) Remove(menuItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(menuItemID)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persistLocked()
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *Store) UpdateQuantity(menuItemID string, quantity int) {
	if quantity <= 0 {
		s.Remove(menuItemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(menuItemID)
	if i < 0 {
		return
	}
	s.lines[i].Quantity = quantity
	s.persistLocked()
}

func (s *Store) UpdateSpecialInstructions(menuItemID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(menuItemID)
	if i < 0 {
		return
	}
	s.lines[i].SpecialInstructions = text
	s.persistLocked()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistLocked()
}

func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines {
		total += line.MenuItem.Price * float64(line.Quantity)
	}
	return total
}

func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// KitchenID returns the kitchen of the first line in the cart.
func (s *Store) KitchenID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.lines) == 0 {
		return "", false
	}
	return s.lines[0].MenuItem.KitchenID, true
}

func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) SetCurrentOrder(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentOrder = &order
	s.persistLocked()
}

func (s *Store) ClearCurrentOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentOrder = nil
	s.persistLocked()
}

func (s *Store) CurrentOrder() (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentOrder == nil {
		return model.Order{}, false
	}
	return *s.currentOrder, true
}

func (s *Store) indexLocked(menuItemID string) int {
	for i, line := range s.lines {
		if line.MenuItem.ID == menuItemID {
			return i
		}
	}
	return -1
}

// persistLocked writes the snapshot. Failures are logged; the in-memory
// cart stays authoritative.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snap := snapshot{Cart: s.lines, CurrentOrder: s.currentOrder}
	if snap.Cart == nil {
		snap.Cart = []Line{}
	}
	if err := s.persister.Save(context.Background(), Namespace, snap); err != nil {
		s.log.WithError(err).Warn("failed to persist cart")
	}
}
