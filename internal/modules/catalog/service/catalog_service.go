package service

import (
	"context"
	"fmt"

	"bloom/internal/modules/catalog/domain"
	catalogout "bloom/internal/modules/catalog/port/out"
)

type CatalogService struct {
	catalog domain.Catalog
}

// NewCatalogService loads the catalog once; it stays immutable afterwards.
func NewCatalogService(ctx context.Context, source catalogout.CatalogSource) (*CatalogService, error) {
	cat, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &CatalogService{catalog: cat}, nil
}

func (s *CatalogService) Catalog() domain.Catalog {
	return s.catalog
}

func (s *CatalogService) Filter(category domain.Category, maxMinutes int) []domain.Challenge {
	var out []domain.Challenge
	for _, c := range s.catalog.Challenges() {
		if category != "" && c.Category != category {
			continue
		}
		if maxMinutes > 0 && c.DurationMin > maxMinutes {
			continue
		}
		out = append(out, c)
	}
	return out
}
