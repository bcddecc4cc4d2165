package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/repository"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

const (
	// Abandoned sessions are swept after this long without activity. An
	// abandoned order never reaches checkout, so dropping it is safe.
	sessionTTL      = 2 * time.Hour
	cleanupInterval = 10 * time.Minute
)

// SessionService owns the in-progress order sessions and drives the
// counter flow: open, identify, mutate cart, checkout. One service
// instance serves the whole process; sessions live in memory only.
type SessionService struct {
	sessions map[uuid.UUID]*entity.OrderSession
	mu       sync.RWMutex

	schedule   *ScheduleService
	catalog    *CatalogService
	billing    *BillingService
	ledgerRepo repository.LedgerRepository
}

// NewSessionService creates a new session service and starts the
// stale-session sweeper.
func NewSessionService(
	schedule *ScheduleService,
	catalog *CatalogService,
	billing *BillingService,
	ledgerRepo repository.LedgerRepository,
) *SessionService {
	s := &SessionService{
		sessions:   make(map[uuid.UUID]*entity.OrderSession),
		schedule:   schedule,
		catalog:    catalog,
		billing:    billing,
		ledgerRepo: ledgerRepo,
	}
	go s.cleanupLoop()
	return s
}

// Open starts a new ordering session. Refused while the cafe is closed.
func (s *SessionService) Open(ctx context.Context) (*entity.OrderSession, error) {
	window := s.schedule.CurrentWindow()
	if !window.Open() {
		return nil, apperror.ErrCafeClosed
	}

	session := entity.NewOrderSession(window, s.schedule.Now())

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Get returns a session by ID.
func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*entity.OrderSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	return session, nil
}

// Greeting is the welcome message shown once a customer is identified.
type Greeting struct {
	Returning    bool   `json:"returning"`
	LastVisitDay string `json:"last_visit_day,omitempty"`
	Message      string `json:"message"`
}

// SubmitIdentity records the customer's name and phone and greets them,
// echoing the weekday of their previous visit when the ledger knows them.
func (s *SessionService) SubmitIdentity(ctx context.Context, id uuid.UUID, name, phone string) (*entity.OrderSession, *Greeting, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	err = session.SetIdentity(name, phone, s.schedule.Now())
	s.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}

	greeting := &Greeting{
		Message: fmt.Sprintf("Hello %s, nice to meet you!", session.CustomerName),
	}
	if prev, err := s.ledgerRepo.Get(ctx, session.LedgerKey()); err == nil && prev != nil {
		greeting.Returning = true
		greeting.LastVisitDay = prev.Day
		greeting.Message = fmt.Sprintf("Hello %s, once again! Hope you enjoyed that %s!",
			session.CustomerName, strings.ToLower(prev.Day))
	}

	return session, greeting, nil
}

// SetItem sets (not increments) an item's quantity in the session cart.
// Zero or negative removes the entry. The item must exist on the
// session's menu; removal of an already-carted stale item is allowed.
func (s *SessionService) SetItem(ctx context.Context, id uuid.UUID, item string, quantity int) (*entity.OrderSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.MenuFor(ctx, session.Window)
	if err != nil {
		return nil, err
	}

	name := item
	if menuItem, ok := catalog.Lookup(item); ok {
		name = menuItem.Name
	} else if quantity > 0 {
		return nil, apperror.NewUnknownItemError(item)
	} else if _, carted := session.Cart[item]; !carted {
		return nil, apperror.NewUnknownItemError(item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := session.SetItem(name, quantity, s.schedule.Now()); err != nil {
		return nil, err
	}
	return session, nil
}

// ClearCart removes everything from the session cart.
func (s *SessionService) ClearCart(ctx context.Context, id uuid.UUID) (*entity.OrderSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := session.ClearCart(s.schedule.Now()); err != nil {
		return nil, err
	}
	return session, nil
}

// CheckoutResult is the outcome of finalizing an order. Saved is false
// when the bill was computed but could not be durably written to the
// ledger; the caller must surface that instead of claiming success.
type CheckoutResult struct {
	Bill  *entity.Bill `json:"bill"`
	Saved bool         `json:"saved"`
}

// Checkout computes the bill for the session cart, finalizes the
// session, and merges the bill into the customer ledger.
func (s *SessionService) Checkout(ctx context.Context, id uuid.UUID) (*CheckoutResult, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prices, err := s.catalog.PriceListFor(ctx, session.Window)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.schedule.Now()
	bill, err := s.billing.ComputeBill(session.Cart, prices, session.CustomerName, session.Phone, session.Window, now)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := session.AttachBill(bill, now); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	key := session.LedgerKey()
	s.mu.Unlock()

	for _, warning := range bill.Warnings {
		log.Printf("Warning: bill %s: %s", bill.BillNo, warning)
	}

	result := &CheckoutResult{Bill: bill, Saved: true}
	entry := s.billing.RenderLedgerEntry(bill)
	if err := s.ledgerRepo.Upsert(ctx, key, entry); err != nil {
		// The customer still gets their bill; the ledger write failing is
		// reported, not hidden behind a successful-looking response.
		log.Printf("Error: failed to save ledger entry for %s: %v", key, err)
		result.Saved = false
	}

	return result, nil
}

// Bill returns the finalized bill for a session, if one exists.
func (s *SessionService) Bill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return session.Bill, nil
}

// cleanupLoop periodically sweeps abandoned sessions.
func (s *SessionService) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *SessionService) cleanup() {
	cutoff := time.Now().Add(-sessionTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
