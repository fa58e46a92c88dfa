package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

type JobService struct {
	DB  *gorm.DB
	log *logger.Logger
}

func NewJobService(db *gorm.DB, log *logger.Logger) *JobService {
	return &JobService{DB: db, log: log.With("service", "JobService")}
}

// Create posts a job under a company the actor owns (admins may post for any
// company).
func (s *JobService) Create(ctx context.Context, actorID uuid.UUID, actorRole models.Role, req *dtos.JobCreationRequest) (*models.Job, error) {
	var company models.Company
	if err := s.DB.WithContext(ctx).First(&company, "slug = ?", req.CompanySlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeNotFound, "company %q not found", req.CompanySlug)
		}
		return nil, err
	}
	if company.OwnerUserID != actorID && actorRole != models.RoleAdmin {
		return nil, apperr.Unauthorized("company %q belongs to another user", req.CompanySlug)
	}

	questions := make([]models.ScreeningQuestion, 0, len(req.ScreeningQuestions))
	seen := map[string]bool{}
	for _, q := range req.ScreeningQuestions {
		if seen[q.ID] {
			return nil, apperr.Validation(apperr.CodeValidation, "duplicate screening question id %q", q.ID)
		}
		seen[q.ID] = true
		questions = append(questions, models.ScreeningQuestion{
			ID:       q.ID,
			Question: q.Question,
			Type:     models.QuestionType(q.Type),
			Required: q.Required,
			Options:  q.Options,
		})
	}
	if req.SalaryMin > 0 && req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		return nil, apperr.Validation(apperr.CodeValidation, "salary_min exceeds salary_max")
	}

	job := &models.Job{
		CompanyID:          company.ID,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       datatypes.NewJSONSlice(req.Requirements),
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		WorkType:           models.WorkType(req.WorkType),
		ExperienceLevel:    models.ExperienceLevel(req.ExperienceLevel),
		Location:           req.Location,
		IsRemote:           req.IsRemote,
		Status:             models.JobActive,
		ExpiresAt:          req.ExpiresAt,
		ResumeRequired:     req.ResumeRequired,
		ScreeningQuestions: datatypes.NewJSONSlice(questions),
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// Get returns a job regardless of expiry; listings filter, detail pages
// still render expired postings.
func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeJobNotFound, "job %s not found", id)
		}
		return nil, err
	}
	return &job, nil
}

// List returns visible jobs only: ACTIVE and not past expiry.
func (s *JobService) List(ctx context.Context, filters dtos.JobFilters) ([]models.Job, error) {
	q := s.DB.WithContext(ctx).
		Preload("Company").
		Where("status = ?", models.JobActive).
		Where("expires_at IS NULL OR expires_at > ?", time.Now())

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if filters.Location != "" {
		q = q.Where("location = ?", filters.Location)
	}
	if filters.WorkType != "" {
		q = q.Where("work_type = ?", filters.WorkType)
	}
	if filters.IsRemote != nil {
		q = q.Where("is_remote = ?", *filters.IsRemote)
	}
	if filters.CompanySlug != "" {
		q = q.Joins("JOIN companies ON companies.id = jobs.company_id").
			Where("companies.slug = ?", filters.CompanySlug)
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}

	var jobs []models.Job
	err := q.Order("jobs.created_at DESC").
		Limit(filters.Limit).
		Offset((filters.Page - 1) * filters.Limit).
		Find(&jobs).Error
	return jobs, err
}

// Close takes a job off the board. Applications in flight keep their state.
func (s *JobService) Close(ctx context.Context, actorID uuid.UUID, actorRole models.Role, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeJobNotFound, "job %s not found", id)
		}
		return nil, err
	}
	if job.Company.OwnerUserID != actorID && actorRole != models.RoleAdmin {
		return nil, apperr.Unauthorized("job belongs to another company")
	}
	if job.Status == models.JobClosed {
		return &job, nil
	}
	if err := s.DB.WithContext(ctx).Model(&job).Update("status", models.JobClosed).Error; err != nil {
		return nil, err
	}
	job.Status = models.JobClosed
	return &job, nil
}
