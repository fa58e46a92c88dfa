package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jobflix/jobflix-backend/internal/database"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		PasswordHash: "x",
		FullName:     "Test User",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, owner *models.User) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:        "Acme",
		Slug:        "acme-" + uuid.NewString()[:8],
		OwnerUserID: owner.ID,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedJob(t *testing.T, db *gorm.DB, company *models.Company, mutate ...func(*models.Job)) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:       company.ID,
		Title:           "Backend Engineer",
		Requirements:    datatypes.NewJSONSlice([]string{"Go", "SQL"}),
		SalaryMin:       80000,
		SalaryMax:       120000,
		WorkType:        models.WorkFullTime,
		ExperienceLevel: models.ExperienceMid,
		Location:        "Berlin",
		Status:          models.JobActive,
	}
	for _, m := range mutate {
		m(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func seedProfile(t *testing.T, db *gorm.DB, user *models.User, skills []string, years int) *models.Profile {
	t.Helper()
	profile := &models.Profile{
		UserID:          user.ID,
		Skills:          datatypes.NewJSONSlice(skills),
		ExperienceYears: years,
		Location:        "Berlin",
		DesiredSalary:   100000,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func expired(job *models.Job) {
	past := time.Now().Add(-time.Hour)
	job.ExpiresAt = &past
}
