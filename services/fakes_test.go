package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-inventory-service/models"
	"order-inventory-service/repository"
)

// fakeInventoryRepo is an in-memory InventoryRepository.
type fakeInventoryRepo struct {
	mu         sync.Mutex
	items      map[uuid.UUID]models.InventoryItem
	failUpdate bool
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[uuid.UUID]models.InventoryItem)}
}

func (f *fakeInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeInventoryRepo) Get(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (f *fakeInventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeInventoryRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("update failed")
	}
	item, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		item.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		item.Description = v.(string)
	}
	if v, ok := updates["price"]; ok {
		item.Price = v.(decimal.Decimal)
	}
	if v, ok := updates["quantity"]; ok {
		item.Quantity = v.(int)
	}
	f.items[id] = item
	return nil
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepo) quantityOf(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id].Quantity
}

// fakeOrderRepo is an in-memory OrderRepository; line items keep insertion
// order per order.
type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]models.Order
	lines      map[uuid.UUID][]models.OrderProduct
	failUpsert bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]models.Order),
		lines:  make(map[uuid.UUID][]models.OrderProduct),
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *order
	stored.OrderProducts = nil
	f.orders[order.ID] = stored
	return nil
}

func (f *fakeOrderRepo) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	order.OrderProducts = append([]models.OrderProduct(nil), f.lines[id]...)
	return &order, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := make([]models.Order, 0, len(f.orders))
	for id, order := range f.orders {
		order.OrderProducts = append([]models.OrderProduct(nil), f.lines[id]...)
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := updates["customer_email"]; ok {
		order.CustomerEmail = v.(string)
	}
	if v, ok := updates["status"]; ok {
		order.Status = v.(models.OrderStatus)
	}
	f.orders[id] = order
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) GetLineItem(ctx context.Context, orderID, itemID uuid.UUID) (*models.OrderProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, line := range f.lines[orderID] {
		if line.ItemID == itemID {
			l := line
			return &l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) UpsertLineItem(ctx context.Context, line *models.OrderProduct) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpsert {
		return errors.New("upsert failed")
	}
	existing := f.lines[line.OrderID]
	for i := range existing {
		if existing[i].ItemID == line.ItemID {
			existing[i].ItemQty = line.ItemQty
			return nil
		}
	}
	f.lines[line.OrderID] = append(existing, *line)
	return nil
}

func (f *fakeOrderRepo) DeleteLineItems(ctx context.Context, orderID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lines, orderID)
	return nil
}

// fakeTxRunner snapshots both fakes before running fn and restores them when
// fn fails, mirroring a database rollback.
type fakeTxRunner struct {
	inv    *fakeInventoryRepo
	orders *fakeOrderRepo
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn repository.TxFn) error {
	itemsSnap := snapshotItems(f.inv)
	ordersSnap, linesSnap := snapshotOrders(f.orders)

	if err := fn(f.inv, f.orders); err != nil {
		f.inv.mu.Lock()
		f.inv.items = itemsSnap
		f.inv.mu.Unlock()
		f.orders.mu.Lock()
		f.orders.orders = ordersSnap
		f.orders.lines = linesSnap
		f.orders.mu.Unlock()
		return err
	}
	return nil
}

func snapshotItems(f *fakeInventoryRepo) map[uuid.UUID]models.InventoryItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[uuid.UUID]models.InventoryItem, len(f.items))
	for id, item := range f.items {
		snap[id] = item
	}
	return snap
}

func snapshotOrders(f *fakeOrderRepo) (map[uuid.UUID]models.Order, map[uuid.UUID][]models.OrderProduct) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := make(map[uuid.UUID]models.Order, len(f.orders))
	for id, order := range f.orders {
		orders[id] = order
	}
	lines := make(map[uuid.UUID][]models.OrderProduct, len(f.lines))
	for id, ls := range f.lines {
		lines[id] = append([]models.OrderProduct(nil), ls...)
	}
	return orders, lines
}

// fakePublisher records published order events.
type fakePublisher struct {
	mu     sync.Mutex
	events []models.OrderEvent
}

func (f *fakePublisher) Publish(ctx context.Context, evt models.OrderEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}
