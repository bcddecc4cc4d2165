package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	filerepo "github.com/dillkhus/cafe-pos/internal/infrastructure/repository"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

func TestCustomerList(t *testing.T) {
	repo := filerepo.NewFileLedgerRepository(filepath.Join(t.TempDir(), "customer_data.json"))
	ctx := context.Background()

	repo.Upsert(ctx, "Neha|8888", entity.LedgerEntry{PhoneNumber: "8888", Day: "Monday"})
	repo.Upsert(ctx, "Amit|9999", entity.LedgerEntry{PhoneNumber: "9999", Day: "Friday"})

	svc := NewCustomerService(repo)
	records, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Identity != "Amit|9999" || records[1].Identity != "Neha|8888" {
		t.Errorf("order = %q, %q, want sorted by identity", records[0].Identity, records[1].Identity)
	}
}

func TestCustomerListEmpty(t *testing.T) {
	repo := filerepo.NewFileLedgerRepository(filepath.Join(t.TempDir(), "customer_data.json"))

	records, err := NewCustomerService(repo).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
}

func TestCustomerGet(t *testing.T) {
	repo := filerepo.NewFileLedgerRepository(filepath.Join(t.TempDir(), "customer_data.json"))
	ctx := context.Background()
	repo.Upsert(ctx, "Amit|9999", entity.LedgerEntry{PhoneNumber: "9999", Day: "Friday"})

	svc := NewCustomerService(repo)

	record, err := svc.Get(ctx, "Amit|9999")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.Entry.Day != "Friday" {
		t.Errorf("Day = %q, want Friday", record.Entry.Day)
	}

	_, err = svc.Get(ctx, "Nobody|0000")
	if err == nil {
		t.Fatal("Get() error = nil, want not found")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("error code = %d, want 404", apperror.GetAppError(err).Code)
	}
}
