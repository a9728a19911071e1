package service

import (
	"context"

	"github.com/google/uuid"

	"ev-storefront/internal/domain"
	"ev-storefront/internal/repo"
	"ev-storefront/pkg/logger"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// Quote prices a selection without placing an order.
	Quote(ctx context.Context, id uuid.UUID, sel domain.Selection) (domain.Configuration, int64, error)
	Seed(ctx context.Context, products []domain.Product) error
}

type catalogService struct {
	productRepo repo.ProductRepo
	log         logger.Logger
}

func NewCatalogService(productRepo repo.ProductRepo, log logger.Logger) CatalogService {
	return &catalogService{productRepo: productRepo, log: log}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := s.productRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) Quote(ctx context.Context, id uuid.UUID, sel domain.Selection) (domain.Configuration, int64, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return domain.Configuration{}, 0, err
	}
	return domain.PriceConfiguration(p, sel)
}

func (s *catalogService) Seed(ctx context.Context, products []domain.Product) error {
	n, err := s.productRepo.Seed(ctx, products)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info("catalog seeded", logger.Int("products", n))
	}
	return nil
}
