package postgres

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/users-api/internal/domain/entities"
)

// newTestDB abre um banco SQLite em arquivo temporário com o schema criado
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "users.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func mustCreateUser(t *testing.T, repo interface {
	Create(context.Context, *entities.User) error
}, name, email string, active bool) *entities.User {
	t.Helper()

	user := mustNewUser(t, name, email)
	user.Active = active
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func mustNewUser(t *testing.T, name, email string) *entities.User {
	t.Helper()

	user, err := entities.NewUser(name, email, true)
	if err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	return user
}
