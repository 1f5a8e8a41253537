package services

import (
	"strings"
	"testing"

	"github.com/hiveproductions/hive/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory store for one test and migrates the
// full schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedOrganization(t *testing.T, db *gorm.DB, name, code string) *models.Organization {
	t.Helper()
	org := &models.Organization{Name: name, SignupCode: code}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	return org
}

func seedEvent(t *testing.T, db *gorm.DB, orgID uint, name string) *models.Event {
	t.Helper()
	event := &models.Event{Name: name, Date: "2024-06-01", OrganizationID: orgID}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func seedPersonnel(t *testing.T, db *gorm.DB, name, role string) *models.Personnel {
	t.Helper()
	p := &models.Personnel{Name: name, Role: role, Phone: "555-0100", Email: name + "@example.com"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed personnel: %v", err)
	}
	return p
}
