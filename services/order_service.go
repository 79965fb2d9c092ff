package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"order-inventory-service/models"
	"order-inventory-service/repository"
)

// OrderAPI is the surface controllers depend on.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
}

// EventPublisher publishes order lifecycle events. Publishing is best effort;
// failures never fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, evt models.OrderEvent) error
}

// OrderService orchestrates the order workflow: stock validation, inventory
// mutation and order persistence run as one transaction per request, under
// per-item locks so concurrent orders cannot both pass a stock check against
// the same stale quantity. Update and delete additionally serialize per
// order, so an order's line-item set cannot change between the read that
// decides which item locks to take and the transaction that uses them.
type OrderService struct {
	txRunner   repository.TxRunner
	orderRepo  repository.OrderRepository
	itemLocks  *keyedLocks
	orderLocks *keyedLocks
	publisher  EventPublisher
	logger     *zap.Logger
}

func NewOrderService(txRunner repository.TxRunner, orderRepo repository.OrderRepository, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		txRunner:   txRunner,
		orderRepo:  orderRepo,
		itemLocks:  newKeyedLocks(),
		orderLocks: newKeyedLocks(),
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	status := models.OrderStatusPending
	if req.Status != "" {
		parsed, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, validationError(err.Error())
		}
		status = parsed
	}
	if len(req.OrderProducts) == 0 {
		return nil, validationError("at least one order product is required")
	}

	deltas, svcErr := deltasFromRequest(req.OrderProducts)
	if svcErr != nil {
		return nil, svcErr
	}

	order := &models.Order{
		ID:            uuid.New(),
		CustomerEmail: req.CustomerEmail,
		DatePlaced:    time.Now().UTC().Truncate(time.Second),
		Status:        status,
	}

	unlock := s.itemLocks.lockAll(itemIDs(deltas))
	defer unlock()

	err := s.txRunner.RunInTx(ctx, func(inv repository.InventoryRepository, orders repository.OrderRepository) error {
		if err := validateDeltas(ctx, inv, deltas); err != nil {
			return err
		}
		if err := orders.Create(ctx, order); err != nil {
			return dependencyError("failed to create new order")
		}
		if err := applyDeltas(ctx, inv, deltas); err != nil {
			return dependencyError("failed to update inventory stock")
		}
		for _, d := range deltas {
			line := &models.OrderProduct{OrderID: order.ID, ItemID: d.ItemID, ItemQty: d.LineQty}
			if err := orders.UpsertLineItem(ctx, line); err != nil {
				return dependencyError("failed to persist order products")
			}
			order.OrderProducts = append(order.OrderProducts, *line)
		}
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.Int("line_items", len(order.OrderProducts)))
	s.publish(ctx, order, models.OrderEventCreated)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, notFoundError("order not found")
		}
		s.logger.Error("failed to get order", zap.String("order_id", id.String()), zap.Error(err))
		return nil, dependencyError("failed to get order")
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, dependencyError("failed to get orders")
	}
	return orders, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, *ServiceError) {
	unlockOrder := s.orderLocks.lock(id)
	defer unlockOrder()

	// A missing order is 404 before any field validation, so the caller
	// learns about the nonexistent order first.
	if _, svcErr := s.GetOrder(ctx, id); svcErr != nil {
		return nil, svcErr
	}

	updates := map[string]interface{}{}
	if req.CustomerEmail != nil {
		updates["customer_email"] = *req.CustomerEmail
	}
	if req.Status != nil {
		parsed, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, validationError(err.Error())
		}
		updates["status"] = parsed
	}

	requested, svcErr := deltasFromRequest(req.OrderProducts)
	if svcErr != nil {
		return nil, svcErr
	}

	unlock := s.itemLocks.lockAll(itemIDs(requested))
	defer unlock()

	var updated *models.Order
	err := s.txRunner.RunInTx(ctx, func(inv repository.InventoryRepository, orders repository.OrderRepository) error {
		// Only the incremental change per line is checked and applied
		// against stock, never the full requested quantity.
		deltas := make([]stockDelta, 0, len(requested))
		for _, d := range requested {
			oldLine, err := orders.GetLineItem(ctx, id, d.ItemID)
			if err != nil && err != repository.ErrNotFound {
				return dependencyError("failed to get order products")
			}
			deltas = append(deltas, stockDelta{
				ItemID:  d.ItemID,
				Delta:   QuantityDelta(oldLine, d.LineQty),
				LineQty: d.LineQty,
			})
		}
		if err := validateDeltas(ctx, inv, deltas); err != nil {
			return err
		}

		if err := orders.Update(ctx, id, updates); err != nil {
			return dependencyError("failed to update order")
		}
		if err := applyDeltas(ctx, inv, deltas); err != nil {
			return dependencyError("failed to update inventory stock")
		}
		for _, d := range deltas {
			line := &models.OrderProduct{OrderID: id, ItemID: d.ItemID, ItemQty: d.LineQty}
			if err := orders.UpsertLineItem(ctx, line); err != nil {
				return dependencyError("failed to persist order products")
			}
		}

		order, err := orders.Get(ctx, id)
		if err != nil {
			return dependencyError("failed to get order")
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("order updated", zap.String("order_id", id.String()))
	s.publish(ctx, updated, models.OrderEventUpdated)
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	unlockOrder := s.orderLocks.lock(id)
	defer unlockOrder()

	// With the order lock held no concurrent update can add or change
	// lines, so this read fixes the item lock set for the whole delete.
	existing, svcErr := s.GetOrder(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	ids := make([]uuid.UUID, 0, len(existing.OrderProducts))
	for _, line := range existing.OrderProducts {
		ids = append(ids, line.ItemID)
	}

	unlock := s.itemLocks.lockAll(ids)
	defer unlock()

	var deleted *models.Order
	err := s.txRunner.RunInTx(ctx, func(inv repository.InventoryRepository, orders repository.OrderRepository) error {
		order, err := orders.Get(ctx, id)
		if err != nil {
			if err == repository.ErrNotFound {
				return notFoundError("order not found")
			}
			return dependencyError("failed to get order")
		}

		// Return every line's quantity to stock. Negative deltas increment.
		returns := make([]stockDelta, 0, len(order.OrderProducts))
		for _, line := range order.OrderProducts {
			returns = append(returns, stockDelta{ItemID: line.ItemID, Delta: -line.ItemQty})
		}
		if err := applyDeltas(ctx, inv, returns); err != nil {
			return dependencyError("failed to return inventory stock")
		}

		if err := orders.DeleteLineItems(ctx, id); err != nil {
			return dependencyError("failed to delete order products")
		}
		if err := orders.Delete(ctx, id); err != nil {
			return dependencyError("failed to delete order")
		}
		deleted = order
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	s.logger.Info("order deleted", zap.String("order_id", id.String()))
	s.publish(ctx, deleted, models.OrderEventDeleted)
	return deleted, nil
}

func (s *OrderService) publish(ctx context.Context, order *models.Order, eventType string) {
	if s.publisher == nil {
		return
	}
	evt := models.OrderEvent{
		OrderID:   order.ID.String(),
		Type:      eventType,
		Status:    string(order.Status),
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("order event publish failed",
			zap.String("order_id", evt.OrderID),
			zap.String("type", eventType),
			zap.Error(err))
	}
}

// deltasFromRequest maps requested lines to fresh-reservation deltas and
// rejects duplicate item IDs; line items are one per distinct item.
func deltasFromRequest(lines []models.OrderProductRequest) ([]stockDelta, *ServiceError) {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	deltas := make([]stockDelta, 0, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.ItemID]; dup {
			return nil, validationError("duplicate item " + line.ItemID.String() + " in order products")
		}
		seen[line.ItemID] = struct{}{}
		deltas = append(deltas, stockDelta{ItemID: line.ItemID, Delta: line.ItemQty, LineQty: line.ItemQty})
	}
	return deltas, nil
}

func itemIDs(deltas []stockDelta) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(deltas))
	for _, d := range deltas {
		ids = append(ids, d.ItemID)
	}
	return ids
}

// asServiceError keeps ServiceError statuses from inside a transaction and
// wraps anything else as an operation failure.
func asServiceError(err error) *ServiceError {
	if svcErr, ok := err.(*ServiceError); ok {
		return svcErr
	}
	return dependencyError(err.Error())
}
