package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/users-api/internal/domain/ports"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implementa ports.UnitOfWork
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction abre uma transação, a injeta no contexto e executa fn.
// Commit se fn retornar nil; rollback (antes de propagar) em erro ou panic.
// Chamadas aninhadas reaproveitam a transação já aberta.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}

	var fnErr error
	err := uow.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(context.WithValue(ctx, txKey, tx))
		return fnErr
	})

	if err != nil && err != fnErr {
		// Falha ao abrir ou ao fazer commit
		return storageError("transaction", err)
	}
	return err
}

// dbFromContext extrai a transação do contexto, ou usa o pool
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
