package dtos

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=JOB_SEEKER EMPLOYER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type ProfileUpdateRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years" binding:"min=0"`
	Location        string   `json:"location"`
	DesiredSalary   int      `json:"desired_salary" binding:"min=0"`
	Availability    string   `json:"availability"`
	Bio             string   `json:"bio"`
}

type CompanyCreationRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,lowercase"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

type SaveJobRequest struct {
	JobID string   `json:"job_id" binding:"required,uuid"`
	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`
}

type NotificationFilters struct {
	Type       string `form:"type" binding:"omitempty,oneof=job_match application_update system reminder"`
	UnreadOnly bool   `form:"unread"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
}

type AssistantRequest struct {
	Message string `json:"message" binding:"required"`
}
