package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusDraft              ApplicationStatus = "DRAFT"
	StatusSubmitted          ApplicationStatus = "SUBMITTED"
	StatusUnderReview        ApplicationStatus = "UNDER_REVIEW"
	StatusShortlisted        ApplicationStatus = "SHORTLISTED"
	StatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	StatusInterviewCompleted ApplicationStatus = "INTERVIEW_COMPLETED"
	StatusOfferMade          ApplicationStatus = "OFFER_MADE"
	StatusAccepted           ApplicationStatus = "ACCEPTED"
	StatusRejected           ApplicationStatus = "REJECTED"
	StatusWithdrawn          ApplicationStatus = "WITHDRAWN"
)

// Terminal states have no outgoing transitions.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// ScreeningAnswer records one answer along with the question's declared type
// and required flag at answer time.
type ScreeningAnswer struct {
	QuestionID   string       `json:"question_id"`
	Question     string       `json:"question"`
	Answer       string       `json:"answer"`
	QuestionType QuestionType `json:"question_type"`
	Required     bool         `json:"required"`
}

// Application links one user to one job. A partial unique index set up in
// database.Migrate enforces at most one non-withdrawn application per
// (user, job) pair at the store level.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID  uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	Job    Job       `json:"job,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(30);default:'DRAFT'" json:"status"`

	ResumeURL        string                                  `json:"resume_url,omitempty"`
	CoverLetter      string                                  `gorm:"type:text" json:"cover_letter,omitempty"`
	ScreeningAnswers datatypes.JSONSlice[ScreeningAnswer]    `json:"screening_answers"`
	SubmittedAt      *time.Time                              `json:"submitted_at,omitempty"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Answer looks up a recorded answer by question id.
func (a *Application) Answer(questionID string) (ScreeningAnswer, bool) {
	for _, ans := range a.ScreeningAnswers {
		if ans.QuestionID == questionID {
			return ans, true
		}
	}
	return ScreeningAnswer{}, false
}

// ApplicationEvent is an append-only audit row written on every successful
// transition.
type ApplicationEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ApplicationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"application_id"`
	FromStatus    ApplicationStatus `gorm:"type:varchar(30)" json:"from_status"`
	ToStatus      ApplicationStatus `gorm:"type:varchar(30)" json:"to_status"`
	ActorID       uuid.UUID         `gorm:"type:uuid" json:"actor_id"`
}

func (e *ApplicationEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
