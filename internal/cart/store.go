package cart

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/zapzocket/studio/external/shopapi"
	"github.com/zapzocket/studio/internal/model"
	"github.com/zapzocket/studio/internal/notify"
)

// Backend is the slice of the shop API the cart store needs.
type Backend interface {
	Cart(ctx context.Context) ([]shopapi.CartLine, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (shopapi.CartResponse, error)
	UpdateCartItem(ctx context.Context, productID int64, quantity int) (shopapi.CartResponse, error)
	RemoveCartItem(ctx context.Context, productID int64) (shopapi.CartResponse, error)
	ClearCart(ctx context.Context) (shopapi.CartResponse, error)
}

// Store holds the session's view of the server-side cart. Every mutation
// is one backend round trip; on success the whole item list is replaced
// with the mapped snapshot from the response, never patched locally. A
// failed mutation leaves the items exactly as they were.
//
// Overlapping mutations are allowed to race: there is no request
// sequencing, and the last response to land wins.
type Store struct {
	backend  Backend
	notifier notify.Notifier
	log      *zap.Logger
	mirror   Mirror

	mu      sync.Mutex
	items   []model.CartItem
	loading bool
}

type Option func(*Store)

// WithMirror enables best-effort persistence of the mapped cart, and
// seeds the store from the mirror so a restarted session shows its last
// known cart until LoadInitial replaces it.
func WithMirror(m Mirror) Option {
	return func(s *Store) { s.mirror = m }
}

func NewStore(backend Backend, notifier notify.Notifier, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		notifier: notifier,
		log:      log,
		items:    []model.CartItem{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mirror != nil {
		if items, err := s.mirror.Load(context.Background()); err != nil {
			log.Warn("cart mirror load failed", zap.Error(err))
		} else if len(items) > 0 {
			s.items = items
		}
	}
	return s
}

// LoadInitial fetches the authoritative cart once at session start.
func (s *Store) LoadInitial(ctx context.Context) error {
	s.setLoading(true)
	lines, err := s.backend.Cart(ctx)
	if err != nil {
		return s.fail("Could not load your cart", err)
	}
	s.apply(MapCart(lines))
	s.notifier.Success("Cart loaded", "")
	s.setLoading(false)
	return nil
}

// Add puts quantity of a product into the cart. Zero or negative
// quantity defaults to one. The backend merges with an existing line.
func (s *Store) Add(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	id, err := s.parseID(productID, "Could not add item to cart")
	if err != nil {
		return err
	}
	s.setLoading(true)
	resp, err := s.backend.AddCartItem(ctx, id, quantity)
	if err != nil {
		return s.fail("Could not add item to cart", err)
	}
	s.apply(MapCart(resp.Cart))
	s.notifier.Success("Item added to cart", resp.Message)
	s.setLoading(false)
	return nil
}

// Remove deletes one line from the cart.
func (s *Store) Remove(ctx context.Context, productID string) error {
	id, err := s.parseID(productID, "Could not remove item from cart")
	if err != nil {
		return err
	}
	s.setLoading(true)
	resp, err := s.backend.RemoveCartItem(ctx, id)
	if err != nil {
		return s.fail("Could not remove item from cart", err)
	}
	s.apply(MapCart(resp.Cart))
	s.notifier.Success("Item removed from cart", resp.Message)
	s.setLoading(false)
	return nil
}

// SetQuantity sets the exact quantity of a line. Negative quantity is a
// no-op; the backend removes the line when quantity is zero.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 0 {
		return nil
	}
	id, err := s.parseID(productID, "Could not update item quantity")
	if err != nil {
		return err
	}
	s.setLoading(true)
	resp, err := s.backend.UpdateCartItem(ctx, id, quantity)
	if err != nil {
		return s.fail("Could not update item quantity", err)
	}
	s.apply(MapCart(resp.Cart))
	s.notifier.Success("Cart updated", resp.Message)
	s.setLoading(false)
	return nil
}

// Clear empties the whole cart.
func (s *Store) Clear(ctx context.Context) error {
	s.setLoading(true)
	resp, err := s.backend.ClearCart(ctx)
	if err != nil {
		return s.fail("Could not clear your cart", err)
	}
	s.apply([]model.CartItem{})
	s.notifier.Success("Cart cleared", resp.Message)
	s.setLoading(false)
	return nil
}

// Items returns a copy of the current cart lines in server order.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a cart operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of every line's price times quantity.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += Subtotal(item)
	}
	return total
}

// Subtotal is one line's price times quantity.
func Subtotal(item model.CartItem) int64 {
	return item.Price * int64(item.Quantity)
}

func (s *Store) parseID(productID, failTitle string) (int64, error) {
	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		s.notifier.Error(failTitle, "invalid product id: "+productID)
		return 0, fmt.Errorf("invalid product id %q", productID)
	}
	return id, nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) apply(items []model.CartItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.Save(context.Background(), items); err != nil {
			s.log.Warn("cart mirror save failed", zap.Error(err))
		}
	}
}

func (s *Store) fail(title string, err error) error {
	s.setLoading(false)
	s.log.Warn("cart operation failed", zap.String("op", title), zap.Error(err))
	s.notifier.Error(title, err.Error())
	return err
}
