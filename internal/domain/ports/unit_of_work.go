package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// WithTransaction faz commit quando fn retorna nil e rollback em qualquer erro ou panic.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
