package service

import (
	"context"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/internal/domain/repository"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// CatalogService serves menu catalogs for the active or an explicitly
// requested serving window.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	schedule    *ScheduleService
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, schedule *ScheduleService) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		schedule:    schedule,
	}
}

// ActiveMenu returns the menu for the window open right now. Outside
// both serving windows ordering is impossible and this fails closed;
// use MenuFor for read-only browsing while the cafe is shut.
func (s *CatalogService) ActiveMenu(ctx context.Context) (*entity.Catalog, error) {
	window := s.schedule.CurrentWindow()
	if !window.Open() {
		return nil, apperror.ErrCafeClosed
	}
	return s.catalogRepo.Load(ctx, window)
}

// MenuFor returns the menu for an explicit window regardless of the
// clock. Browse-only: ordering against a closed window is still refused
// by the session service.
func (s *CatalogService) MenuFor(ctx context.Context, window enum.ServiceWindow) (*entity.Catalog, error) {
	if !window.Open() {
		return nil, apperror.NewBadRequestError("Unknown menu window")
	}
	return s.catalogRepo.Load(ctx, window)
}

// PriceListFor returns the flattened item-to-price mapping for a window.
func (s *CatalogService) PriceListFor(ctx context.Context, window enum.ServiceWindow) (entity.PriceList, error) {
	catalog, err := s.catalogRepo.Load(ctx, window)
	if err != nil {
		return nil, err
	}
	return catalog.Flatten(), nil
}
