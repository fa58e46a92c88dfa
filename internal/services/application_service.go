package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
	"github.com/jobflix/jobflix-backend/internal/storage"
)

const maxResumeBytes = 10 << 20 // 10 MB

var allowedResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// forwardEdges is the strict forward sequence of the application lifecycle.
// REJECTED and WITHDRAWN are reachable from any non-terminal state and are
// handled separately; DRAFT leaves only through Submit.
var forwardEdges = map[models.ApplicationStatus]models.ApplicationStatus{
	models.StatusSubmitted:          models.StatusUnderReview,
	models.StatusUnderReview:        models.StatusShortlisted,
	models.StatusShortlisted:        models.StatusInterviewScheduled,
	models.StatusInterviewScheduled: models.StatusInterviewCompleted,
	models.StatusInterviewCompleted: models.StatusOfferMade,
	models.StatusOfferMade:          models.StatusAccepted,
}

var validStatuses = map[models.ApplicationStatus]bool{
	models.StatusDraft: true, models.StatusSubmitted: true, models.StatusUnderReview: true,
	models.StatusShortlisted: true, models.StatusInterviewScheduled: true,
	models.StatusInterviewCompleted: true, models.StatusOfferMade: true,
	models.StatusAccepted: true, models.StatusRejected: true, models.StatusWithdrawn: true,
}

// ApplicationService owns the application lifecycle: draft creation,
// screening answers, resume attachment, submission and the transition graph.
// Every state check and write happens inside one store transaction.
type ApplicationService struct {
	DB       *gorm.DB
	log      *logger.Logger
	store    storage.Store
	notifier *NotificationService
}

func NewApplicationService(db *gorm.DB, log *logger.Logger, store storage.Store, notifier *NotificationService) *ApplicationService {
	return &ApplicationService{
		DB:       db,
		log:      log.With("service", "ApplicationService"),
		store:    store,
		notifier: notifier,
	}
}

// CreateDraft starts a DRAFT application for the user on a visible job.
func (s *ApplicationService) CreateDraft(ctx context.Context, userID, jobID uuid.UUID) (*models.Application, error) {
	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(apperr.CodeJobNotFound, "job %s not found", jobID)
			}
			return err
		}
		if !job.Visible(time.Now()) {
			return apperr.NotFound(apperr.CodeJobNotFound, "job %s is no longer accepting applications", jobID)
		}

		var count int64
		if err := tx.Model(&models.Application{}).
			Where("user_id = ? AND job_id = ? AND status <> ?", userID, jobID, models.StatusWithdrawn).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict(apperr.CodeDuplicateApplication,
				"an application for this job already exists")
		}

		app = &models.Application{
			UserID:           userID,
			JobID:            jobID,
			Status:           models.StatusDraft,
			ScreeningAnswers: []models.ScreeningAnswer{},
		}
		if err := tx.Create(app).Error; err != nil {
			return translateUniqueViolation(err, apperr.CodeDuplicateApplication,
				"an application for this job already exists")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// RecordScreeningAnswers merges the given answers into the draft. Every
// answer must reference a known question and match its declared type, and
// after the merge every required question must have a non-empty answer.
func (s *ApplicationService) RecordScreeningAnswers(ctx context.Context, userID, draftID uuid.UUID,
	inputs []dtos.ScreeningAnswerInput) (*models.Application, error) {

	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		app, err = s.lockDraft(tx, userID, draftID)
		if err != nil {
			return err
		}
		var job models.Job
		if err := tx.First(&job, "id = ?", app.JobID).Error; err != nil {
			return err
		}

		merged := map[string]models.ScreeningAnswer{}
		for _, existing := range app.ScreeningAnswers {
			merged[existing.QuestionID] = existing
		}
		for _, in := range inputs {
			q, ok := job.Question(in.QuestionID)
			if !ok {
				return apperr.Validation(apperr.CodeValidation,
					"unknown screening question %q", in.QuestionID)
			}
			if string(q.Type) != in.Type {
				return apperr.Validation(apperr.CodeValidation,
					"answer type %q does not match question %q type %q", in.Type, q.ID, q.Type)
			}
			if err := checkAnswerValue(q, in.Answer); err != nil {
				return err
			}
			merged[q.ID] = models.ScreeningAnswer{
				QuestionID:   q.ID,
				Question:     q.Question,
				Answer:       strings.TrimSpace(in.Answer),
				QuestionType: q.Type,
				Required:     q.Required,
			}
		}

		// Answers are stored in the job's question order, one per question.
		ordered := make([]models.ScreeningAnswer, 0, len(job.ScreeningQuestions))
		for _, q := range job.ScreeningQuestions {
			ans, answered := merged[q.ID]
			if q.Required && (!answered || ans.Answer == "") {
				return apperr.Validation(apperr.CodeValidation,
					"required screening question %q is unanswered", q.ID)
			}
			if answered {
				ordered = append(ordered, ans)
			}
		}

		app.ScreeningAnswers = ordered
		return tx.Model(app).Update("screening_answers", app.ScreeningAnswers).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func checkAnswerValue(q models.ScreeningQuestion, answer string) error {
	answer = strings.TrimSpace(answer)
	switch q.Type {
	case models.QuestionYesNo:
		if answer != "" && answer != "yes" && answer != "no" {
			return apperr.Validation(apperr.CodeValidation,
				"question %q takes yes or no, got %q", q.ID, answer)
		}
	case models.QuestionMultipleChoice:
		if answer == "" || len(q.Options) == 0 {
			return nil
		}
		for _, opt := range q.Options {
			if opt == answer {
				return nil
			}
		}
		return apperr.Validation(apperr.CodeValidation,
			"answer %q is not one of question %q's options", answer, q.ID)
	}
	return nil
}

// AttachResume sniffs the real content type; the client-declared MIME type
// is not trusted.
func (s *ApplicationService) AttachResume(ctx context.Context, userID, draftID uuid.UUID,
	filename string, content []byte) (*models.Application, error) {

	if len(content) > maxResumeBytes {
		return nil, apperr.Validation(apperr.CodeFileTooLarge,
			"resume is %d bytes, the limit is 10 MB", len(content))
	}
	mtype := mimetype.Detect(content)
	allowed := false
	for _, t := range allowedResumeTypes {
		if mtype.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperr.Validation(apperr.CodeUnsupportedFileType,
			"resume type %q not accepted, use PDF, DOC or DOCX", mtype.String())
	}

	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		app, err = s.lockDraft(tx, userID, draftID)
		if err != nil {
			return err
		}
		key := fmt.Sprintf("resumes/%s/%s%s", app.ID, uuid.New(), mtype.Extension())
		url, err := s.store.Save(ctx, key, bytes.NewReader(content))
		if err != nil {
			return apperr.Transport("resume upload: %v", err)
		}
		app.ResumeURL = url
		return tx.Model(app).Update("resume_url", url).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) SetCoverLetter(ctx context.Context, userID, draftID uuid.UUID, coverLetter string) (*models.Application, error) {
	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		app, err = s.lockDraft(tx, userID, draftID)
		if err != nil {
			return err
		}
		app.CoverLetter = coverLetter
		return tx.Model(app).Update("cover_letter", coverLetter).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Submit moves DRAFT to SUBMITTED once the draft is complete, freezes it and
// notifies the job's owning company.
func (s *ApplicationService) Submit(ctx context.Context, userID, draftID uuid.UUID) (*models.Application, error) {
	var app *models.Application
	var ownerID uuid.UUID
	var jobTitle string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		app, err = s.lockDraft(tx, userID, draftID)
		if err != nil {
			return err
		}
		var job models.Job
		if err := tx.Preload("Company").First(&job, "id = ?", app.JobID).Error; err != nil {
			return err
		}

		for _, q := range job.ScreeningQuestions {
			if !q.Required {
				continue
			}
			ans, ok := app.Answer(q.ID)
			if !ok || ans.Answer == "" {
				return apperr.State(apperr.CodeIncompleteApplication,
					"required screening question %q is unanswered", q.ID)
			}
		}
		if job.ResumeRequired && app.ResumeURL == "" {
			return apperr.State(apperr.CodeIncompleteApplication,
				"this job requires a resume")
		}

		now := time.Now()
		app.Status = models.StatusSubmitted
		app.SubmittedAt = &now
		if err := tx.Model(app).Updates(map[string]any{
			"status":       models.StatusSubmitted,
			"submitted_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.ApplicationEvent{
			ApplicationID: app.ID,
			FromStatus:    models.StatusDraft,
			ToStatus:      models.StatusSubmitted,
			ActorID:       userID,
		}).Error; err != nil {
			return err
		}
		ownerID = job.Company.OwnerUserID
		jobTitle = job.Title
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notification is emitted after the commit; delivery problems must not
	// roll back the submission.
	if s.notifier != nil && ownerID != uuid.Nil {
		if _, err := s.notifier.Notify(ctx, ownerID, models.NotifyApplicationUpdate,
			"New application received",
			fmt.Sprintf("A candidate applied for %s.", jobTitle),
			"/applications/"+app.ID.String(),
			map[string]any{"application_id": app.ID.String(), "job_id": app.JobID.String()},
		); err != nil {
			s.log.Warn("submit notification failed", "application_id", app.ID, "error", err)
		}
	}
	return app, nil
}

// Transition validates the requested edge against the lifecycle graph and
// the actor's role, then applies it and notifies the applicant.
func (s *ApplicationService) Transition(ctx context.Context, applicationID uuid.UUID,
	newStatus models.ApplicationStatus, actorID uuid.UUID, actorRole models.Role) (*models.Application, error) {

	if !validStatuses[newStatus] {
		return nil, apperr.Validation(apperr.CodeValidation, "unknown application status %q", newStatus)
	}

	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app = &models.Application{}
		if err := tx.First(app, "id = ?", applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound(apperr.CodeNotFound, "application %s not found", applicationID)
			}
			return err
		}

		from := app.Status
		if from.Terminal() {
			return apperr.State(apperr.CodeIllegalTransition,
				"%s is terminal, no further transitions", from)
		}

		switch newStatus {
		case models.StatusWithdrawn:
			// Withdrawal is the applicant's move.
			if actorID != app.UserID {
				return apperr.Unauthorized("only the applicant may withdraw")
			}
		case models.StatusRejected:
			if !actorRole.Elevated() {
				return apperr.Unauthorized("role %s may not reject applications", actorRole)
			}
		default:
			if forwardEdges[from] != newStatus {
				return apperr.State(apperr.CodeIllegalTransition,
					"cannot move %s to %s", from, newStatus)
			}
			if !actorRole.Elevated() {
				return apperr.Unauthorized("role %s may not advance applications", actorRole)
			}
		}

		app.Status = newStatus
		if err := tx.Model(app).Update("status", newStatus).Error; err != nil {
			return err
		}
		return tx.Create(&models.ApplicationEvent{
			ApplicationID: app.ID,
			FromStatus:    from,
			ToStatus:      newStatus,
			ActorID:       actorID,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if _, err := s.notifier.Notify(ctx, app.UserID, models.NotifyApplicationUpdate,
			"Application status updated",
			fmt.Sprintf("Your application moved to %s.", app.Status),
			"/applications/"+app.ID.String(),
			map[string]any{"application_id": app.ID.String(), "status": string(app.Status)},
		); err != nil {
			s.log.Warn("transition notification failed", "application_id", app.ID, "error", err)
		}
	}
	return app, nil
}

func (s *ApplicationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) GetByID(ctx context.Context, userID uuid.UUID, role models.Role, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.DB.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeNotFound, "application %s not found", id)
		}
		return nil, err
	}
	if app.UserID != userID && !role.Elevated() {
		return nil, apperr.Unauthorized("application belongs to another user")
	}
	return &app, nil
}

// Events returns the transition audit trail, oldest first.
func (s *ApplicationService) Events(ctx context.Context, applicationID uuid.UUID) ([]models.ApplicationEvent, error) {
	var events []models.ApplicationEvent
	err := s.DB.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// lockDraft loads a draft owned by the user for update. A submitted
// application is frozen: further edits fail with ALREADY_SUBMITTED.
func (s *ApplicationService) lockDraft(tx *gorm.DB, userID, draftID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := tx.First(&app, "id = ?", draftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeDraftNotFound, "draft %s not found", draftID)
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, apperr.Unauthorized("draft belongs to another user")
	}
	if app.Status != models.StatusDraft {
		return nil, apperr.State(apperr.CodeAlreadySubmitted,
			"application is %s and can no longer be edited", app.Status)
	}
	return &app, nil
}

func translateUniqueViolation(err error, code, msg string) error {
	if err == nil {
		return nil
	}
	text := err.Error()
	if strings.Contains(text, "duplicate key") || strings.Contains(text, "UNIQUE constraint") {
		return apperr.Conflict(code, "%s", msg)
	}
	return err
}
