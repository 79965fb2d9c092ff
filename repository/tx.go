package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxFn runs against repositories bound to one database transaction.
type TxFn func(inv InventoryRepository, orders OrderRepository) error

// TxRunner executes a function atomically: either every write inside it is
// committed or none are. The order workflow runs its validate-then-mutate
// sequence through this.
type TxRunner interface {
	RunInTx(ctx context.Context, fn TxFn) error
}

// GormTxRunner implements TxRunner with a database transaction.
type GormTxRunner struct {
	db *gorm.DB
}

func NewGormTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{db: db}
}

func (r *GormTxRunner) RunInTx(ctx context.Context, fn TxFn) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormInventoryRepository(tx), NewGormOrderRepository(tx))
	})
}
