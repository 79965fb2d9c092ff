package services

import (
	"context"

	"github.com/google/uuid"

	"order-inventory-service/models"
	"order-inventory-service/repository"
)

// stockDelta is one item's pending quantity change: positive removes stock,
// negative returns it.
type stockDelta struct {
	ItemID  uuid.UUID
	Delta   int
	LineQty int // full requested line quantity, persisted on commit
}

// RemainingStock returns the item's quantity after subtracting the requested
// delta. A negative result means insufficient stock; the caller must not
// apply the delta.
func RemainingStock(ctx context.Context, inv repository.InventoryRepository, itemID uuid.UUID, requestedDelta int) (int, error) {
	item, err := inv.Get(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return item.Quantity - requestedDelta, nil
}

// QuantityDelta returns the stock change a line-item write implies. A new
// line reserves its full quantity; an existing line only the difference, so
// updating a line never re-validates the total against stock.
func QuantityDelta(oldLine *models.OrderProduct, newQty int) int {
	if oldLine == nil {
		return newQty
	}
	return newQty - oldLine.ItemQty
}

// validateDeltas checks stock sufficiency for every delta before anything is
// mutated. Any shortfall or missing item rejects the whole operation.
func validateDeltas(ctx context.Context, inv repository.InventoryRepository, deltas []stockDelta) error {
	for _, d := range deltas {
		remaining, err := RemainingStock(ctx, inv, d.ItemID, d.Delta)
		if err != nil {
			if err == repository.ErrNotFound {
				return validationError("item " + d.ItemID.String() + " not found")
			}
			return dependencyError("failed to check inventory")
		}
		if remaining < 0 {
			return validationError("item " + d.ItemID.String() + " does not have the required amount in stock")
		}
	}
	return nil
}

// applyDeltas writes the validated stock changes.
func applyDeltas(ctx context.Context, inv repository.InventoryRepository, deltas []stockDelta) error {
	for _, d := range deltas {
		if d.Delta == 0 {
			continue
		}
		item, err := inv.Get(ctx, d.ItemID)
		if err != nil {
			return err
		}
		if err := inv.Update(ctx, d.ItemID, map[string]interface{}{"quantity": item.Quantity - d.Delta}); err != nil {
			return err
		}
	}
	return nil
}
