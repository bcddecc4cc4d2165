package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	domainRepo "github.com/dillkhus/cafe-pos/internal/domain/repository"
)

// FileLedgerRepository persists the customer ledger as one JSON document
// of shape {identityKey: entry}, rewritten in full on every save. A mutex
// serializes the load-modify-save cycle so concurrent checkouts cannot
// lose each other's writes.
type FileLedgerRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileLedgerRepository creates a ledger repository over the given file.
func NewFileLedgerRepository(path string) *FileLedgerRepository {
	return &FileLedgerRepository{path: path}
}

var _ domainRepo.LedgerRepository = (*FileLedgerRepository)(nil)

// Load reads the full ledger.
func (r *FileLedgerRepository) Load(ctx context.Context) (entity.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// loadLocked reads the ledger file. Callers must hold r.mu. A missing
// file is a first run, not an error; a corrupt file falls back to an
// empty ledger with a logged warning, accepting the data-loss risk on
// the next save.
func (r *FileLedgerRepository) loadLocked() (entity.Ledger, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return entity.Ledger{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to read %s: %w", r.path, err)
	}

	var ledger entity.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		log.Printf("Warning: ledger file %s is corrupt, starting with an empty ledger: %v", r.path, err)
		return entity.Ledger{}, nil
	}
	if ledger == nil {
		ledger = entity.Ledger{}
	}
	return ledger, nil
}

// Get returns the entry for one identity key, or nil if absent.
func (r *FileLedgerRepository) Get(ctx context.Context, key string) (*entity.LedgerEntry, error) {
	ledger, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := ledger[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Upsert replaces the entry for the identity key and writes the whole
// ledger back atomically.
func (r *FileLedgerRepository) Upsert(ctx context.Context, key string, entry entity.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.loadLocked()
	if err != nil {
		return err
	}
	ledger[key] = entry
	return r.saveLocked(ledger)
}

// saveLocked writes the ledger through a temp file and rename so an
// interrupted save never leaves a truncated ledger behind. Callers must
// hold r.mu.
func (r *FileLedgerRepository) saveLocked(ledger entity.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "    ")
	if err != nil {
		return fmt.Errorf("ledger: failed to encode: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("ledger: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ledger: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: failed to replace %s: %w", r.path, err)
	}
	return nil
}
