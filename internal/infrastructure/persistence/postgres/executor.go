package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
)

// Result descreve o efeito de um comando que não retorna linhas
type Result struct {
	RowsAffected int64
}

// Executor executa SQL parametrizado (placeholders ?) dentro da transação
// do contexto, se houver. Todo erro do banco vira *errors.StorageError.
type Executor struct {
	db *gorm.DB
}

func NewExecutor(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

// Execute roda um comando sem retorno de linhas
func (e *Executor) Execute(ctx context.Context, sql string, args ...any) (Result, error) {
	res := dbFromContext(ctx, e.db).Exec(sql, args...)
	if res.Error != nil {
		return Result{}, storageError("execute", res.Error)
	}
	return Result{RowsAffected: res.RowsAffected}, nil
}

// QueryOne lê a primeira linha em dest; found é falso quando não há linhas
func (e *Executor) QueryOne(ctx context.Context, dest any, sql string, args ...any) (bool, error) {
	res := dbFromContext(ctx, e.db).Raw(sql, args...).Scan(dest)
	if res.Error != nil {
		return false, storageError("query one", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// QueryMany lê em dest (ponteiro para slice) as linhas da consulta montada por build,
// na ordem que ela pedir. Valores vão sempre como parâmetros do gorm.
func (e *Executor) QueryMany(ctx context.Context, dest any, build func(*gorm.DB) *gorm.DB) error {
	res := build(dbFromContext(ctx, e.db)).Find(dest)
	if res.Error != nil {
		return storageError("query many", res.Error)
	}
	return nil
}

// storageError converte um erro do driver em StorageError.
// SQLSTATE classe 22 (dado inválido) e 23 (violação de constraint) são erros do cliente.
func storageError(op string, err error) error {
	var existing *domainerrors.StorageError
	if errors.As(err, &existing) {
		return err
	}

	serr := &domainerrors.StorageError{
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		serr.Message = pgErr.Message
		serr.Client = strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
	}

	return serr
}
