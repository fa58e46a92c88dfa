package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobActive  JobStatus = "ACTIVE"
	JobExpired JobStatus = "EXPIRED"
	JobClosed  JobStatus = "CLOSED"
)

type WorkType string

const (
	WorkFullTime   WorkType = "FULL_TIME"
	WorkPartTime   WorkType = "PART_TIME"
	WorkContract   WorkType = "CONTRACT"
	WorkInternship WorkType = "INTERNSHIP"
	WorkFreelance  WorkType = "FREELANCE"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "ENTRY_LEVEL"
	ExperienceMid       ExperienceLevel = "MID_LEVEL"
	ExperienceSenior    ExperienceLevel = "SENIOR_LEVEL"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionFileUpload     QuestionType = "file_upload"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionMultipleChoice, QuestionYesNo, QuestionFileUpload:
		return true
	}
	return false
}

// Company owns jobs. The slug is the public identity and never changes once
// the company is created.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Size        string `json:"size"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`

	// OwnerUserID receives new-application notifications for this company's
	// jobs.
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null" json:"owner_user_id"`

	Jobs []Job `json:"jobs,omitempty"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ScreeningQuestion is defined by the job and answered by applicants before
// submission.
type ScreeningQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   Company   `json:"company,omitempty"`

	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`

	SalaryMin int `json:"salary_min"`
	SalaryMax int `json:"salary_max"`

	WorkType        WorkType        `gorm:"type:varchar(20)" json:"work_type"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experience_level"`
	Location        string          `json:"location"`
	IsRemote        bool            `json:"is_remote"`

	Status    JobStatus  `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	ResumeRequired     bool                                   `json:"resume_required"`
	ScreeningQuestions datatypes.JSONSlice[ScreeningQuestion] `json:"screening_questions"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Visible reports whether the job can still be applied to at the given
// instant. Expiry is gated by comparison, there is no sweep that flips
// status.
func (j *Job) Visible(now time.Time) bool {
	if j.Status != JobActive {
		return false
	}
	if j.ExpiresAt != nil && !j.ExpiresAt.After(now) {
		return false
	}
	return true
}

// Question looks up a screening question by id.
func (j *Job) Question(id string) (ScreeningQuestion, bool) {
	for _, q := range j.ScreeningQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return ScreeningQuestion{}, false
}

// SavedJob bookmarks a job for a user, independent of any application. The
// composite unique index keeps one row per (user, job).
type SavedJob struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`
	Job    Job       `json:"job,omitempty"`

	Notes string                      `gorm:"type:text" json:"notes"`
	Tags  datatypes.JSONSlice[string] `json:"tags"`
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
