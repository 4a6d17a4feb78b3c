package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Question struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExamID uuid.UUID `gorm:"type:uuid;not null;index" json:"exam_id"`

	Text    string         `gorm:"type:text;not null" json:"text"`
	Options pq.StringArray `gorm:"type:text[]" json:"options"`

	// Stored as the literal option text, not an index into Options.
	CorrectAnswer string `gorm:"type:text;not null" json:"correct_answer"`

	Marks           float64 `json:"marks"`
	NegativeMarking float64 `json:"negative_marking"`
	Difficulty      string  `gorm:"size:10" json:"difficulty"`
	Explanation     string  `gorm:"type:text" json:"explanation"`
}

// HasValidAnswer reports whether CorrectAnswer is one of Options.
func (q *Question) HasValidAnswer() bool {
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return true
		}
	}
	return false
}
