package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func Connect(dsn string, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")
	return db, nil
}

// Migrate creates the schema. It is shared with the tests, which run it
// against an in-memory SQLite database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.ApplicationEvent{},
		&models.SavedJob{},
		&models.Notification{},
	); err != nil {
		return err
	}

	// At most one non-withdrawn application per (user, job). This has to
	// live in the store because handlers may run on different hosts; a
	// partial unique index expresses it on both Postgres and SQLite.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_user_job_open
		ON applications (user_id, job_id)
		WHERE status <> 'WITHDRAWN'
	`).Error
}
