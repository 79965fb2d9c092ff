package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"order-inventory-service/models"
)

func newTestInventoryService() (*InventoryService, *fakeInventoryRepo) {
	repo := newFakeInventoryRepo()
	return NewInventoryService(repo, zap.NewNop()), repo
}

func TestCreateItem(t *testing.T) {
	svc, _ := newTestInventoryService()

	item, svcErr := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:        "widget",
		Description: "a widget",
		Price:       decimal.NewFromFloat(10.5),
		Quantity:    5,
	})
	if svcErr != nil {
		t.Fatalf("unexpected error: %v", svcErr)
	}
	if item.ID == uuid.Nil {
		t.Error("expected server-assigned id")
	}

	got, svcErr := svc.GetItem(context.Background(), item.ID)
	if svcErr != nil {
		t.Fatalf("unexpected error: %v", svcErr)
	}
	if got.Name != "widget" || got.Quantity != 5 || !got.Price.Equal(decimal.NewFromFloat(10.5)) {
		t.Errorf("unexpected item: %+v", got)
	}
}

func TestCreateItem_Validation(t *testing.T) {
	svc, _ := newTestInventoryService()

	cases := []struct {
		name string
		req  models.CreateItemRequest
	}{
		{"empty name", models.CreateItemRequest{Name: "", Quantity: 1}},
		{"negative price", models.CreateItemRequest{Name: "widget", Price: decimal.NewFromInt(-1)}},
		{"negative quantity", models.CreateItemRequest{Name: "widget", Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, svcErr := svc.CreateItem(context.Background(), &tc.req)
			if svcErr == nil || svcErr.StatusCode != 400 {
				t.Errorf("expected 400, got %v", svcErr)
			}
		})
	}
}

func TestUpdateItem_PartialFields(t *testing.T) {
	svc, _ := newTestInventoryService()
	item, _ := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name: "widget", Description: "old", Price: decimal.NewFromInt(10), Quantity: 5,
	})

	qty := 7
	updated, svcErr := svc.UpdateItem(context.Background(), item.ID, &models.UpdateItemRequest{Quantity: &qty})
	if svcErr != nil {
		t.Fatalf("unexpected error: %v", svcErr)
	}
	if updated.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", updated.Quantity)
	}
	if updated.Name != "widget" || updated.Description != "old" || !updated.Price.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unmentioned fields changed: %+v", updated)
	}
}

func TestUpdateItem_Validation(t *testing.T) {
	svc, _ := newTestInventoryService()
	item, _ := svc.CreateItem(context.Background(), &models.CreateItemRequest{Name: "widget", Quantity: 5})

	negQty := -1
	if _, svcErr := svc.UpdateItem(context.Background(), item.ID, &models.UpdateItemRequest{Quantity: &negQty}); svcErr == nil || svcErr.StatusCode != 400 {
		t.Errorf("expected 400 for negative quantity, got %v", svcErr)
	}

	negPrice := decimal.NewFromInt(-5)
	if _, svcErr := svc.UpdateItem(context.Background(), item.ID, &models.UpdateItemRequest{Price: &negPrice}); svcErr == nil || svcErr.StatusCode != 400 {
		t.Errorf("expected 400 for negative price, got %v", svcErr)
	}

	if _, svcErr := svc.UpdateItem(context.Background(), item.ID, &models.UpdateItemRequest{}); svcErr == nil || svcErr.StatusCode != 400 {
		t.Errorf("expected 400 for empty payload, got %v", svcErr)
	}

	// Rejected updates leave the item untouched.
	got, _ := svc.GetItem(context.Background(), item.ID)
	if got.Quantity != 5 {
		t.Errorf("rejected update mutated item: %+v", got)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc, _ := newTestInventoryService()
	qty := 1
	if _, svcErr := svc.UpdateItem(context.Background(), uuid.New(), &models.UpdateItemRequest{Quantity: &qty}); svcErr == nil || svcErr.StatusCode != 404 {
		t.Errorf("expected 404, got %v", svcErr)
	}
}

func TestDeleteItem(t *testing.T) {
	svc, _ := newTestInventoryService()
	item, _ := svc.CreateItem(context.Background(), &models.CreateItemRequest{Name: "widget", Quantity: 5})

	deleted, svcErr := svc.DeleteItem(context.Background(), item.ID)
	if svcErr != nil {
		t.Fatalf("unexpected error: %v", svcErr)
	}
	if deleted.ID != item.ID {
		t.Error("expected the deleted item back")
	}
	if _, svcErr := svc.GetItem(context.Background(), item.ID); svcErr == nil || svcErr.StatusCode != 404 {
		t.Errorf("expected 404 after delete, got %v", svcErr)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	svc, _ := newTestInventoryService()
	if _, svcErr := svc.DeleteItem(context.Background(), uuid.New()); svcErr == nil || svcErr.StatusCode != 404 {
		t.Errorf("expected 404, got %v", svcErr)
	}
}
