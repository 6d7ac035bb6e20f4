package out

import (
	"context"

	"bloom/internal/modules/catalog/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
