package models

import (
	"time"

	"github.com/google/uuid"
)

// Result holds one account's latest scored attempt at one exam. Resubmission
// overwrites the row in place, keyed by the (user_id, exam_id) unique index.
type Result struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_user_exam" json:"user_id"`
	ExamID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_results_user_exam" json:"exam_id"`

	// Snapshot of the exam's type captured at submission time. Not
	// live-joined, so historical results stay correct if the exam's type is
	// edited later.
	ExamType string `gorm:"size:50;not null" json:"exam_type"`

	ObtainedMarks    float64 `json:"obtained_marks"`
	CorrectAnswers   int     `json:"correct_answers"`
	IncorrectAnswers int     `json:"incorrect_answers"`
	TotalQuestions   int     `json:"total_questions"`
	Percentage       float64 `json:"percentage"`
	Passed           bool    `json:"passed"`

	// Set asynchronously to the certificate issuance flow; nil means "not
	// yet issued".
	CertificateURL *string `gorm:"type:text" json:"certificate_url"`

	SubmittedAt time.Time `json:"submitted_at"`

	User User `gorm:"foreignkey:UserID" json:"-"`
	Exam Exam `gorm:"foreignkey:ExamID" json:"-"`
}
