package testhelpers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interviewpro/api/internal/models"
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := db.AutoMigrate(&models.InterviewSession{}, &models.Attempt{}, &models.Question{}); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}

// DropSessionTables removes the session tables to force store errors.
func DropSessionTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Migrator().DropTable(&models.Attempt{}, &models.InterviewSession{}); err != nil {
		panic(fmt.Sprintf("failed to drop session tables: %v", err))
	}
}
