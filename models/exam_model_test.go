package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func TestMarksPerQuestion(t *testing.T) {
	tests := []struct {
		name       string
		totalMarks float64
		questions  int
		want       float64
	}{
		{name: "even split", totalMarks: 100, questions: 5, want: 20},
		{name: "uneven split", totalMarks: 100, questions: 3, want: 100.0 / 3.0},
		{name: "single question", totalMarks: 50, questions: 1, want: 50},
		{name: "no questions yet", totalMarks: 100, questions: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exam := Exam{TotalMarks: tc.totalMarks}
			for i := 0; i < tc.questions; i++ {
				exam.Questions = append(exam.Questions, uuid.New().String())
			}
			if got := exam.MarksPerQuestion(); got != tc.want {
				t.Errorf("MarksPerQuestion() = %v, want %v", got, tc.want)
			}
		})
	}
}

// The per-question weight tracks edits to the question set while the total
// stays fixed.
func TestMarksPerQuestionRecomputedAfterEdit(t *testing.T) {
	exam := Exam{
		TotalMarks: 100,
		Questions:  pq.StringArray{uuid.New().String(), uuid.New().String()},
	}
	if got := exam.MarksPerQuestion(); got != 50 {
		t.Fatalf("MarksPerQuestion() = %v, want 50", got)
	}

	exam.Questions = append(exam.Questions, uuid.New().String(), uuid.New().String())
	if got := exam.MarksPerQuestion(); got != 25 {
		t.Errorf("MarksPerQuestion() after edit = %v, want 25", got)
	}
}

func TestPassingMarks(t *testing.T) {
	exam := Exam{TotalMarks: 100}
	if got := exam.PassingMarks(); got != 40 {
		t.Errorf("PassingMarks() = %v, want 40", got)
	}
}

func TestQuestionHasValidAnswer(t *testing.T) {
	q := Question{
		Options:       pq.StringArray{"4", "5", "6"},
		CorrectAnswer: "5",
	}
	if !q.HasValidAnswer() {
		t.Error("HasValidAnswer() = false for an answer present in options")
	}

	q.CorrectAnswer = "7"
	if q.HasValidAnswer() {
		t.Error("HasValidAnswer() = true for an answer missing from options")
	}
}

func TestUserIsEnrolled(t *testing.T) {
	examID := uuid.New()
	user := User{EnrolledExams: pq.StringArray{examID.String()}}

	if !user.IsEnrolled(examID) {
		t.Error("IsEnrolled() = false for an enrolled exam")
	}
	if user.IsEnrolled(uuid.New()) {
		t.Error("IsEnrolled() = true for an exam never enrolled")
	}
}
