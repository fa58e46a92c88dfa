package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

type SavedJobService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewSavedJobService(db *gorm.DB, log *logger.Logger) *SavedJobService {
	return &SavedJobService{DB: db, log: log.With("service", "SavedJobService")}
}

// Save bookmarks a job. The unique index on (user_id, job_id) backs the
// one-bookmark invariant at the store level.
func (s *SavedJobService) Save(ctx context.Context, userID, jobID uuid.UUID, notes string, tags []string) (*models.SavedJob, error) {
	var saved *models.SavedJob
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(apperr.CodeJobNotFound, "job %s not found", jobID)
			}
			return err
		}
		if !job.Visible(time.Now()) {
			return apperr.NotFound(apperr.CodeJobNotFound, "job %s is no longer listed", jobID)
		}

		saved = &models.SavedJob{
			UserID: userID,
			JobID:  jobID,
			Notes:  notes,
			Tags:   datatypes.NewJSONSlice(tags),
		}
		if err := tx.Create(saved).Error; err != nil {
			return translateUniqueViolation(err, apperr.CodeDuplicateSave,
				"job is already saved")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SavedJobService) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeNotFound, "job %s is not saved", jobID)
	}
	return nil
}

func (s *SavedJobService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
