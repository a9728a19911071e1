package worker

import (
	"context"
	"time"

	"ev-storefront/internal/domain"
	"ev-storefront/internal/infrastructure/messaging"
	"ev-storefront/internal/repo"
	"ev-storefront/pkg/logger"
)

// OrderEventRelay publishes an OrderPlaced event for every stored order that
// has not been published yet. Orders are marked only after a successful publish,
// so delivery is at-least-once.
type OrderEventRelay struct {
	orderRepo repo.OrderRepo
	publisher messaging.Publisher
	topic     string
	interval  time.Duration
	batchSize int
	log       logger.Logger
	now       func() time.Time
}

func NewOrderEventRelay(
	orderRepo repo.OrderRepo,
	publisher messaging.Publisher,
	topic string,
	interval time.Duration,
	batchSize int,
	log logger.Logger,
) *OrderEventRelay {
	return &OrderEventRelay{
		orderRepo: orderRepo,
		publisher: publisher,
		topic:     topic,
		interval:  interval,
		batchSize: batchSize,
		log:       log,
		now:       time.Now,
	}
}

func (rw *OrderEventRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	rw.log.Info("order event relay started", logger.String("topic", rw.topic), logger.Any("interval", rw.interval))

	for {
		select {
		case <-ctx.Done():
			rw.log.Info("order event relay stopped")
			return
		case <-ticker.C:
			if _, err := rw.process(ctx); err != nil && ctx.Err() == nil {
				rw.log.Error("order event relay failed", logger.Error(err))
			}
		}
	}
}

// process relays one batch and returns how many orders were published.
func (rw *OrderEventRelay) process(ctx context.Context) (int, error) {
	orders, err := rw.orderRepo.FindUnpublished(ctx, rw.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for i := range orders {
		order := &orders[i]
		key := order.ID.String()

		if err := rw.publisher.PublishEvent(ctx, rw.topic, key, domain.NewOrderPlaced(order)); err != nil {
			// Stop the batch; the remaining orders keep their place in line.
			return published, err
		}
		if err := rw.orderRepo.MarkPublished(ctx, order.ID, rw.now().UTC()); err != nil {
			return published, err
		}
		published++
	}

	if published > 0 {
		rw.log.Info("relayed placed orders", logger.Int("count", published))
	}
	return published, nil
}
