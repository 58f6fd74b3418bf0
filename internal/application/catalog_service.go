// internal/application/catalog_service.go
package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopcore/backend/internal/domain"
	"github.com/shopcore/backend/internal/ports"
)

// CatalogService fronts the product catalog the order workflow resolves
// against. Write access is admin-only at the transport layer.
type CatalogService struct {
	catalog ports.CatalogPort
}

func NewCatalogService(catalog ports.CatalogPort) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	switch {
	case product.Name == "":
		return nil, domain.Validationf("name", "required")
	case product.Description == "":
		return nil, domain.Validationf("description", "required")
	case !product.Price.IsPositive():
		return nil, domain.Validationf("price", "must be positive")
	}
	product.ID = uuid.NewString()
	if err := s.catalog.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.Validationf("productId", "required")
	}
	return s.catalog.GetProduct(ctx, id)
}
