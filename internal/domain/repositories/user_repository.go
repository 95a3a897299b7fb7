package repositories

import (
	"context"
	"strings"

	"github.com/rafabene/users-api/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Métodos de leitura retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	Deactivate(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Active ActiveFilter
	Name   string // substring, case-insensitive; vazio = sem filtro
	Sort   SortColumn
}

// ActiveFilter é o seletor de três estados para a coluna active.
// O valor zero (ActiveAny) significa "sem filtro".
type ActiveFilter int

const (
	ActiveAny ActiveFilter = iota
	ActiveOnly
	InactiveOnly
)

// ActiveFilterAll é o sentinela explícito aceito na borda HTTP para "sem filtro"
const ActiveFilterAll = "all"

// ParseActiveFilter converte o parâmetro de query: "true", "false", "all" ou vazio
func ParseActiveFilter(raw string) (ActiveFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ActiveFilterAll:
		return ActiveAny, true
	case "true":
		return ActiveOnly, true
	case "false":
		return InactiveOnly, true
	default:
		return ActiveAny, false
	}
}

// Value retorna o valor booleano a filtrar e se há filtro
func (f ActiveFilter) Value() (active bool, ok bool) {
	switch f {
	case ActiveOnly:
		return true, true
	case InactiveOnly:
		return false, true
	default:
		return false, false
	}
}

// SortColumn é a lista fechada de colunas aceitas em ORDER BY.
// Nomes de coluna não podem ser parametrizados, então o SQL só recebe
// o resultado de Column().
type SortColumn int

const (
	SortByID SortColumn = iota
	SortByName
	SortByEmail
)

// ParseSortColumn converte o parâmetro de query; qualquer valor desconhecido vira SortByID
func ParseSortColumn(raw string) SortColumn {
	switch raw {
	case "name":
		return SortByName
	case "email":
		return SortByEmail
	default:
		return SortByID
	}
}

// Column retorna o nome da coluna SQL
func (s SortColumn) Column() string {
	switch s {
	case SortByName:
		return "name"
	case SortByEmail:
		return "email"
	default:
		return "id"
	}
}
