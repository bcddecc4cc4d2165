package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// OrderSession is one customer's pass through the counter flow. All
// session state lives here and is threaded explicitly through the
// services; there are no process-wide globals.
type OrderSession struct {
	ID     uuid.UUID          `json:"id"`
	State  enum.SessionState  `json:"state"`
	Window enum.ServiceWindow `json:"window"`

	CustomerName string `json:"customer_name,omitempty"`
	Phone        string `json:"phone,omitempty"`

	Cart Cart  `json:"cart"`
	Bill *Bill `json:"bill,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// allowedTransitions is the session state machine: identity collection
// leads to menu browsing, browsing to cart building, and cart building to
// the displayed bill. No transition moves backwards.
var allowedTransitions = map[enum.SessionState][]enum.SessionState{
	enum.StateCollectingIdentity: {enum.StateBrowsingMenu},
	enum.StateBrowsingMenu:       {enum.StateBuildingCart},
	enum.StateBuildingCart:       {enum.StateBuildingCart, enum.StateBillDisplayed},
	enum.StateBillDisplayed:      {},
}

// NewOrderSession opens a session in the identity-collection state for
// the given serving window.
func NewOrderSession(window enum.ServiceWindow, now time.Time) *OrderSession {
	return &OrderSession{
		ID:        uuid.New(),
		State:     enum.StateCollectingIdentity,
		Window:    window,
		Cart:      make(Cart),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *OrderSession) transitionTo(state enum.SessionState, now time.Time) error {
	for _, next := range allowedTransitions[s.State] {
		if next == state {
			s.State = state
			s.UpdatedAt = now
			return nil
		}
	}
	return apperror.NewInvalidTransitionError(s.State.String(), state.String())
}

// SetIdentity records the customer's confirmed name and phone number and
// advances the session to menu browsing. Both fields must be non-empty.
func (s *OrderSession) SetIdentity(name, phone string, now time.Time) error {
	name = NormalizeName(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return apperror.NewBadRequestError("Name and phone number are required")
	}
	if err := s.transitionTo(enum.StateBrowsingMenu, now); err != nil {
		return err
	}
	s.CustomerName = name
	s.Phone = phone
	return nil
}

// SetItem applies one cart mutation. The first mutation moves the session
// from browsing to cart building; an emptied cart stays in the
// cart-building state and simply cannot check out.
func (s *OrderSession) SetItem(name string, quantity int, now time.Time) error {
	if err := s.transitionTo(enum.StateBuildingCart, now); err != nil {
		return err
	}
	s.Cart.SetItem(name, quantity)
	return nil
}

// ClearCart empties the cart without leaving the cart-building state.
func (s *OrderSession) ClearCart(now time.Time) error {
	if s.State != enum.StateBuildingCart {
		return apperror.NewInvalidTransitionError(s.State.String(), enum.StateBuildingCart.String())
	}
	s.Cart.Clear()
	s.UpdatedAt = now
	return nil
}

// AttachBill finalizes the session with its computed bill. Only legal
// from the cart-building state; the cart is cleared once the bill exists.
func (s *OrderSession) AttachBill(bill *Bill, now time.Time) error {
	if err := s.transitionTo(enum.StateBillDisplayed, now); err != nil {
		return err
	}
	s.Bill = bill
	s.Cart.Clear()
	return nil
}

// LedgerKey returns the session customer's ledger identity key.
func (s *OrderSession) LedgerKey() string {
	return LedgerKey(s.CustomerName, s.Phone)
}

// NormalizeName trims the name and capitalizes its first letter, matching
// how customer names were stored historically.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
