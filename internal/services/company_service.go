package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

type CompanyService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewCompanyService(db *gorm.DB, log *logger.Logger) *CompanyService {
	return &CompanyService{DB: db, log: log.With("service", "CompanyService")}
}

// Create registers a company. The slug is its permanent identity; a taken
// slug is a conflict, not an update.
func (s *CompanyService) Create(ctx context.Context, ownerID uuid.UUID, req *dtos.CompanyCreationRequest) (*models.Company, error) {
	company := &models.Company{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Size:        req.Size,
		Industry:    req.Industry,
		Location:    req.Location,
		OwnerUserID: ownerID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Company{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict(apperr.CodeDuplicateSlug, "company slug %q is taken", req.Slug)
		}
		if err := tx.Create(company).Error; err != nil {
			return translateUniqueViolation(err, apperr.CodeDuplicateSlug,
				"company slug is taken")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	if err := s.DB.WithContext(ctx).Preload("Jobs").First(&company, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeNotFound, "company %q not found", slug)
		}
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, err
}
