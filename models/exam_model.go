package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ExamTypePractice      = "Practice Test"
	ExamTypeCertification = "Certification Exam"
)

// PassThreshold is the fraction of an exam's total marks required to pass.
const PassThreshold = 0.4

type Exam struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Code         string    `gorm:"size:20;unique" json:"code"`
	Subject      string    `gorm:"size:255" json:"subject"`
	Category     string    `gorm:"size:255" json:"category"`
	TimeLimit    int       `json:"time_limit"`
	NumQuestions int       `json:"num_questions"`
	TotalMarks   float64   `gorm:"not null" json:"total_marks"`
	Type         string    `gorm:"size:50" json:"type"`
	Randomized   bool      `json:"randomized"`

	// Ordered ids of the exam's current question set. A question batch call
	// replaces this list wholesale; question rows dropped from the list are
	// kept in storage.
	Questions pq.StringArray `gorm:"type:text[]" json:"questions"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`

	CertificateTemplate string         `gorm:"size:255" json:"certificate_template"`
	Sections            datatypes.JSON `json:"sections"`
	AccessCodes         pq.StringArray `gorm:"type:text[]" json:"access_codes"`
	ExpiryDate          *time.Time     `json:"expiry_date"`
	AttemptsLimit       int            `json:"attempts_limit"`
	RestrictCopyPaste   bool           `json:"restrict_copy_paste"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy User `gorm:"foreignkey:CreatedByID" json:"-"`
}

// ExamSection is the shape of one entry in Exam.Sections.
type ExamSection struct {
	Name      string `json:"name"`
	TimeLimit int    `json:"time_limit"`
}

// MarksPerQuestion is derived from the current question set every time it is
// needed. TotalMarks stays a fixed denominator while the question set is
// edited, so this must never be cached on the row.
func (e *Exam) MarksPerQuestion() float64 {
	if len(e.Questions) == 0 {
		return 0
	}
	return e.TotalMarks / float64(len(e.Questions))
}

// PassingMarks is the minimum obtained marks counted as a pass.
func (e *Exam) PassingMarks() float64 {
	return e.TotalMarks * PassThreshold
}
