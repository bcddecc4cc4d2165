package repository

import (
	"context"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
)

// CatalogRepository defines the interface for reading the menu catalog
type CatalogRepository interface {
	// Load reads the catalog for one serving window. A missing or
	// malformed menu file is a catalog load error.
	Load(ctx context.Context, window enum.ServiceWindow) (*entity.Catalog, error)
}
