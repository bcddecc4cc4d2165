package service

import (
	"context"
	"sort"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/repository"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// CustomerService exposes the persisted customer ledger to staff.
type CustomerService struct {
	ledgerRepo repository.LedgerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(ledgerRepo repository.LedgerRepository) *CustomerService {
	return &CustomerService{ledgerRepo: ledgerRepo}
}

// CustomerRecord pairs an identity key with its last-visit ledger entry.
type CustomerRecord struct {
	Identity string             `json:"identity"`
	Entry    entity.LedgerEntry `json:"entry"`
}

// List returns every customer's last visit, sorted by identity key. The
// ledger is one small document, so the whole of it is returned.
func (s *CustomerService) List(ctx context.Context) ([]CustomerRecord, error) {
	ledger, err := s.ledgerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]CustomerRecord, 0, len(ledger))
	for identity, entry := range ledger {
		records = append(records, CustomerRecord{Identity: identity, Entry: entry})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Identity < records[j].Identity
	})
	return records, nil
}

// Get returns one customer's last visit by identity key (name|phone).
func (s *CustomerService) Get(ctx context.Context, identity string) (*CustomerRecord, error) {
	entry, err := s.ledgerRepo.Get(ctx, identity)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return &CustomerRecord{Identity: identity, Entry: *entry}, nil
}
