package dtos

type DraftCreationRequest struct {
	JobID string `json:"job_id" binding:"required,uuid"`
}

type ScreeningAnswerInput struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
	// Type the client believes the question has; validated against the
	// job's declared question type.
	Type string `json:"type" binding:"required,oneof=text multiple_choice yes_no file_upload"`
}

type ScreeningAnswersRequest struct {
	Answers []ScreeningAnswerInput `json:"answers" binding:"required,dive"`
}

type CoverLetterRequest struct {
	CoverLetter string `json:"cover_letter" binding:"required"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}
