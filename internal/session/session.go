package session

import (
	"sync/atomic"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

// Session is one visitor's state. It owns the cart; everything else gets
// the cart's read view or goes through the Session's methods.
type Session struct {
	ID string

	cart     *cart.Store
	toasts   *notify.Sink
	browser  *catalog.Browser
	checkout *checkout.Workflow

	lastSeen atomic.Int64
}

func (s *Session) Cart() cart.View              { return s.cart }
func (s *Session) Toasts() *notify.Sink         { return s.toasts }
func (s *Session) Browser() *catalog.Browser    { return s.browser }
func (s *Session) Checkout() *checkout.Workflow { return s.checkout }

func (s *Session) AddToCart(p catalog.Product)               { s.cart.Add(p) }
func (s *Session) RemoveFromCart(productID int64)            { s.cart.Remove(productID) }
func (s *Session) SetQuantity(productID int64, quantity int) { s.cart.SetQuantity(productID, quantity) }
func (s *Session) ClearCart()                                { s.cart.Clear() }

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) close() {
	s.toasts.Close()
}
