package handlers

import (
	"testing"

	"github.com/devdojo/devdojo-api/models"
	"github.com/google/uuid"
)

func TestQuestionPayloadHasValidAnswer(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    bool
	}{
		{name: "answer present", options: []string{"New Delhi", "Mumbai", "Chennai"}, answer: "New Delhi", want: true},
		{name: "answer missing", options: []string{"New Delhi", "Mumbai", "Chennai"}, answer: "Kolkata", want: false},
		{name: "case sensitive", options: []string{"True", "False"}, answer: "true", want: false},
		{name: "no options", options: nil, answer: "anything", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := QuestionPayload{Options: tc.options, CorrectAnswer: tc.answer}
			if got := p.hasValidAnswer(); got != tc.want {
				t.Errorf("hasValidAnswer() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderByIDList(t *testing.T) {
	a := models.Question{ID: uuid.New(), Text: "a"}
	b := models.Question{ID: uuid.New(), Text: "b"}
	c := models.Question{ID: uuid.New(), Text: "c"}

	t.Run("preserves list order", func(t *testing.T) {
		ids := []string{c.ID.String(), a.ID.String(), b.ID.String()}
		got := orderByIDList(ids, []models.Question{a, b, c})
		if len(got) != 3 {
			t.Fatalf("got %d questions, want 3", len(got))
		}
		if got[0].Text != "c" || got[1].Text != "a" || got[2].Text != "b" {
			t.Errorf("order = [%s %s %s], want [c a b]", got[0].Text, got[1].Text, got[2].Text)
		}
	})

	t.Run("skips unresolvable ids", func(t *testing.T) {
		ids := []string{a.ID.String(), uuid.New().String(), b.ID.String()}
		got := orderByIDList(ids, []models.Question{a, b})
		if len(got) != 2 {
			t.Fatalf("got %d questions, want 2", len(got))
		}
		if got[0].Text != "a" || got[1].Text != "b" {
			t.Errorf("order = [%s %s], want [a b]", got[0].Text, got[1].Text)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if got := orderByIDList(nil, []models.Question{a}); len(got) != 0 {
			t.Errorf("got %d questions, want 0", len(got))
		}
	})
}
