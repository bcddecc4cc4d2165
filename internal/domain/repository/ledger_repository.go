package repository

import (
	"context"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
)

// LedgerRepository defines the interface for the per-customer order ledger
type LedgerRepository interface {
	// Load reads the full ledger. A missing file yields an empty ledger;
	// a corrupt file yields an empty ledger and a surfaced warning, never
	// an error.
	Load(ctx context.Context) (entity.Ledger, error)
	// Get returns the entry for one identity key, if present.
	Get(ctx context.Context, key string) (*entity.LedgerEntry, error)
	// Upsert replaces the entry for the identity key wholesale and
	// persists the full ledger. The load-modify-save cycle runs as a
	// single transaction so concurrent checkouts cannot clobber each
	// other's saved state.
	Upsert(ctx context.Context, key string, entry entity.LedgerEntry) error
}
