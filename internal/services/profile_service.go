package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

type ProfileService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewProfileService(db *gorm.DB, log *logger.Logger) *ProfileService {
	return &ProfileService{DB: db, log: log.With("service", "ProfileService")}
}

// Upsert writes the profile and recomputes the completion percentage.
// Completion is derived; callers cannot set it.
func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, req *dtos.ProfileUpdateRequest) (*models.Profile, error) {
	var profile *models.Profile
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile = &models.Profile{}
		err := tx.First(profile, "user_id = ?", userID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = &models.Profile{UserID: userID}
		case err != nil:
			return err
		}

		profile.Skills = datatypes.NewJSONSlice(req.Skills)
		profile.ExperienceYears = req.ExperienceYears
		profile.Location = req.Location
		profile.DesiredSalary = req.DesiredSalary
		profile.Availability = req.Availability
		profile.Bio = req.Bio
		profile.Completion = completionPercent(profile)

		return tx.Save(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeNotFound, "no profile on record")
		}
		return nil, err
	}
	return &profile, nil
}

func completionPercent(p *models.Profile) int {
	fields := []bool{
		len(p.Skills) > 0,
		p.ExperienceYears > 0,
		p.Location != "",
		p.DesiredSalary > 0,
		p.Availability != "",
		p.Bio != "",
	}
	done := 0
	for _, ok := range fields {
		if ok {
			done++
		}
	}
	return done * 100 / len(fields)
}
