package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"order-inventory-service/models"
	"order-inventory-service/repository"
)

// InventoryAPI is the surface controllers depend on.
type InventoryAPI interface {
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, *ServiceError)
	GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, *ServiceError)
	ListItems(ctx context.Context) ([]models.InventoryItem, *ServiceError)
	UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, *ServiceError)
	DeleteItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, *ServiceError)
}

// InventoryService owns the inventory invariants: name non-empty, price and
// quantity never negative. Violating writes are rejected, not clamped.
type InventoryService struct {
	repo   repository.InventoryRepository
	logger *zap.Logger
}

func NewInventoryService(repo repository.InventoryRepository, logger *zap.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, *ServiceError) {
	if req.Name == "" {
		return nil, validationError("name should not be empty")
	}
	if req.Price.IsNegative() || req.Quantity < 0 {
		return nil, validationError("value cannot be negative")
	}

	item := &models.InventoryItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create inventory item", zap.Error(err))
		return nil, dependencyError("failed to create inventory item")
	}

	s.logger.Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.Int("quantity", item.Quantity))
	return item, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, *ServiceError) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, notFoundError("item not found")
		}
		s.logger.Error("failed to get inventory item", zap.String("item_id", id.String()), zap.Error(err))
		return nil, dependencyError("failed to get inventory item")
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, *ServiceError) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list inventory items", zap.Error(err))
		return nil, dependencyError("failed to get inventory items")
	}
	return items, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, *ServiceError) {
	if req.IsEmpty() {
		return nil, validationError("no update payload")
	}
	if req.Name != nil && *req.Name == "" {
		return nil, validationError("name should not be empty")
	}
	if (req.Price != nil && req.Price.IsNegative()) || (req.Quantity != nil && *req.Quantity < 0) {
		return nil, validationError("value cannot be negative")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if err == repository.ErrNotFound {
			return nil, notFoundError("item not found")
		}
		s.logger.Error("failed to update inventory item", zap.String("item_id", id.String()), zap.Error(err))
		return nil, dependencyError("failed to update inventory item")
	}

	return s.GetItem(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, *ServiceError) {
	item, svcErr := s.GetItem(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return nil, notFoundError("item not found")
		}
		s.logger.Error("failed to delete inventory item", zap.String("item_id", id.String()), zap.Error(err))
		return nil, dependencyError("failed to delete inventory item")
	}

	s.logger.Info("inventory item deleted", zap.String("item_id", id.String()))
	return item, nil
}
