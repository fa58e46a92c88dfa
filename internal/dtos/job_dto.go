package dtos

import (
	"time"

	"github.com/jobflix/jobflix-backend/internal/models"
)

type ScreeningQuestionInput struct {
	ID       string   `json:"id" binding:"required"`
	Question string   `json:"question" binding:"required"`
	Type     string   `json:"type" binding:"required,oneof=text multiple_choice yes_no file_upload"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type JobCreationRequest struct {
	CompanySlug string `json:"company_slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	Requirements    []string `json:"requirements"`
	SalaryMin       int      `json:"salary_min"`
	SalaryMax       int      `json:"salary_max"`
	WorkType        string   `json:"work_type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP FREELANCE"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=ENTRY_LEVEL MID_LEVEL SENIOR_LEVEL EXECUTIVE"`
	Location        string   `json:"location"`
	IsRemote        bool     `json:"is_remote"`

	ExpiresAt          *time.Time               `json:"expires_at"`
	ResumeRequired     bool                     `json:"resume_required"`
	ScreeningQuestions []ScreeningQuestionInput `json:"screening_questions"`
}

type JobFilters struct {
	Search      string `form:"search"`
	Location    string `form:"location"`
	WorkType    string `form:"work_type"`
	IsRemote    *bool  `form:"is_remote"`
	CompanySlug string `form:"company"`
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
}

type RankedJob struct {
	Job   models.Job `json:"job"`
	Score int        `json:"score"`
}
