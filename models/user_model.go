package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RoleLearner  = "learner"
	RoleTrainer  = "trainer"
	RoleExaminee = "examinee"
	RoleAdmin    = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'learner'" json:"role"`

	// Exam ids this account is permitted to attempt. An id is appended on
	// enroll and never appended twice for the same exam.
	EnrolledExams pq.StringArray `gorm:"type:text[]" json:"enrolled_exams"`

	IsBanned bool `gorm:"default:false" json:"is_banned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsEnrolled(examID uuid.UUID) bool {
	id := examID.String()
	for _, e := range u.EnrolledExams {
		if e == id {
			return true
		}
	}
	return false
}
