package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	domainRepo "github.com/dillkhus/cafe-pos/internal/domain/repository"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// FileCatalogRepository reads menu catalogs from per-window JSON files of
// shape {category: {itemName: price}}.
type FileCatalogRepository struct {
	dayPath     string
	eveningPath string
}

// NewFileCatalogRepository creates a catalog repository over the two menu
// files.
func NewFileCatalogRepository(dayPath, eveningPath string) domainRepo.CatalogRepository {
	return &FileCatalogRepository{
		dayPath:     dayPath,
		eveningPath: eveningPath,
	}
}

// Load reads and parses the menu file for the given window.
func (r *FileCatalogRepository) Load(ctx context.Context, window enum.ServiceWindow) (*entity.Catalog, error) {
	var path string
	switch window {
	case enum.WindowDay:
		path = r.dayPath
	case enum.WindowEvening:
		path = r.eveningPath
	default:
		return nil, apperror.ErrCafeClosed
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.NewCatalogLoadError(path, err)
	}
	defer f.Close()

	categories, err := parseCategories(f)
	if err != nil {
		return nil, apperror.NewCatalogLoadError(path, err)
	}

	return &entity.Catalog{
		Window:     window,
		Categories: categories,
	}, nil
}

// parseCategories decodes the nested menu document with a token stream so
// category order matches the file. Plain map decoding would lose the
// order that last-write-wins flattening depends on.
func parseCategories(r io.Reader) ([]entity.Category, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var categories []entity.Category
	for dec.More() {
		catName, err := expectString(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}

		category := entity.Category{Name: catName}
		for dec.More() {
			itemName, err := expectString(dec)
			if err != nil {
				return nil, err
			}
			price, err := expectPrice(dec)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", itemName, err)
			}
			category.Items = append(category.Items, entity.MenuItem{
				Name:  itemName,
				Price: price,
			})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return categories, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func expectString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

func expectPrice(dec *json.Decoder) (float64, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, err
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("expected numeric price, got %v", tok)
	}
	price, err := num.Float64()
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %v", price)
	}
	return price, nil
}
