package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleEmployer  Role = "EMPLOYER"
	RoleAdmin     Role = "ADMIN"
)

// Elevated reports whether the role may drive application transitions past
// SUBMITTED.
func (r Role) Elevated() bool {
	return r == RoleEmployer || r == RoleAdmin
}

// User is the identity record. Users are never hard-deleted; gorm's soft
// delete keeps the row around.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `json:"full_name"`
	Role         Role   `gorm:"type:varchar(20);default:'JOB_SEEKER'" json:"role"`

	Profile *Profile `json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile holds the matchable facts about a job seeker. Completion is
// derived on every write by ProfileService, never set by callers.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Skills          datatypes.JSONSlice[string] `json:"skills"`
	ExperienceYears int                         `json:"experience_years"`
	Location        string                      `json:"location"`
	DesiredSalary   int                         `json:"desired_salary"`
	Availability    string                      `json:"availability"`
	Bio             string                      `gorm:"type:text" json:"bio"`

	Completion int `json:"completion"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
