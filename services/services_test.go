package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"message-system/models"
)

// newTestDB opens a per-test in-memory sqlite database and migrates the
// schema. cache=shared keeps the database alive across the pool's
// connections; the per-test name isolates tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// mustCreateUser registers a user or fails the test.
func mustCreateUser(t *testing.T, users *UserService, email, name string) *models.User {
	t.Helper()
	user, err := users.Create(email, name)
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}
