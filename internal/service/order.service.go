package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ev-storefront/internal/domain"
	"ev-storefront/internal/infrastructure/auth"
	"ev-storefront/internal/repo"
	"ev-storefront/pkg/logger"
)

type PlaceOrderCommand struct {
	ProductID       uuid.UUID
	Selection       domain.Selection
	ShippingAddress domain.ShippingAddress
	// ClientTotal is the price the caller displayed. It is only compared
	// against the recomputed total, never stored.
	ClientTotal *int64
}

type OrderService interface {
	// PlaceOrder verifies the bearer credential, prices the selection against
	// the stored product and persists exactly one order.
	PlaceOrder(ctx context.Context, credential string, cmd PlaceOrderCommand) (*domain.Order, error)
}

type orderService struct {
	verifier    auth.TokenVerifier
	productRepo repo.ProductRepo
	orderRepo   repo.OrderRepo
	log         logger.Logger
	now         func() time.Time
}

func NewOrderService(
	verifier auth.TokenVerifier,
	productRepo repo.ProductRepo,
	orderRepo repo.OrderRepo,
	log logger.Logger,
) OrderService {
	return &orderService{
		verifier:    verifier,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		log:         log,
		now:         time.Now,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, credential string, cmd PlaceOrderCommand) (*domain.Order, error) {
	log := s.log.WithContext(ctx)

	if credential == "" {
		return nil, domain.ErrUnauthenticated
	}
	identity, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		log.Warn("bearer credential rejected", logger.Error(err))
		return nil, domain.ErrInvalidCredential
	}

	product, err := s.productRepo.FindById(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	configuration, total, err := domain.PriceConfiguration(product, cmd.Selection)
	if err != nil {
		return nil, err
	}
	if cmd.ClientTotal != nil && *cmd.ClientTotal != total {
		log.Warn("client total differs from computed price",
			logger.Any("product_id", product.ID),
			logger.Int64("client_total", *cmd.ClientTotal),
			logger.Int64("total_price", total),
		)
	}

	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          identity.UserID,
		ProductID:       product.ID,
		Configuration:   configuration,
		TotalPrice:      total,
		ShippingAddress: cmd.ShippingAddress,
		CreatedAt:       s.now().UTC().Truncate(time.Microsecond),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		log.Error("persist order failed", logger.Any("order_id", order.ID), logger.Error(err))
		return nil, errors.Join(domain.ErrPersistence, err)
	}

	log.Info("order placed",
		logger.Any("order_id", order.ID),
		logger.Any("user_id", order.UserID),
		logger.String("product", product.Name),
		logger.Int64("total_price", order.TotalPrice),
	)
	return order, nil
}
