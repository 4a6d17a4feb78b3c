package services

import (
	"strings"
	"testing"

	"github.com/devdojo/devdojo-api/models"
	"github.com/google/uuid"
)

func TestCertificatePublicID(t *testing.T) {
	userID := uuid.New()
	examID := uuid.New()

	first := CertificatePublicID(userID, examID)
	second := CertificatePublicID(userID, examID)
	if first != second {
		t.Errorf("public id not deterministic: %q vs %q", first, second)
	}

	if !strings.Contains(first, userID.String()) || !strings.Contains(first, examID.String()) {
		t.Errorf("public id %q missing user or exam id", first)
	}

	other := CertificatePublicID(userID, uuid.New())
	if first == other {
		t.Error("public ids for different exams collide")
	}
}

func TestRenderCertificateHTML(t *testing.T) {
	user := models.User{FullName: "Asha Rao"}
	result := models.Result{
		ObtainedMarks: 82,
		Exam: models.Exam{
			Title:      "Go Fundamentals",
			TotalMarks: 100,
		},
	}

	html, err := renderCertificateHTML(user, result)
	if err != nil {
		t.Fatalf("renderCertificateHTML: %v", err)
	}

	for _, want := range []string{"Asha Rao", "Go Fundamentals", "82", "100"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered certificate missing %q", want)
		}
	}
}

func TestRenderCertificateHTMLEscapesTitle(t *testing.T) {
	user := models.User{FullName: "Asha Rao"}
	result := models.Result{
		Exam: models.Exam{Title: `<script>alert("x")</script>`, TotalMarks: 10},
	}

	html, err := renderCertificateHTML(user, result)
	if err != nil {
		t.Fatalf("renderCertificateHTML: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("exam title not escaped in rendered certificate")
	}
}
