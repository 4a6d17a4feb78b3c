package handlers

import (
	"time"

	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// RawResult carries the client-computed score breakdown. The fields are
// pointers so that legitimate zero values still satisfy "required".
type RawResult struct {
	ObtainedMarks  *float64 `json:"obtained_marks" validate:"required"`
	Correct        *int     `json:"correct" validate:"required,gte=0"`
	Incorrect      *int     `json:"incorrect" validate:"required,gte=0"`
	TotalQuestions *int     `json:"total_questions" validate:"required,gt=0"`
}

type SubmitResultRequest struct {
	ExamID string     `json:"exam_id" validate:"required"`
	Result *RawResult `json:"result" validate:"required"`
}

type resultResponse struct {
	ID               string    `json:"id"`
	ExamTitle        string    `json:"exam_title"`
	ExamType         string    `json:"exam_type"`
	ObtainedMarks    float64   `json:"obtained_marks"`
	CorrectAnswers   int       `json:"correct_answers"`
	IncorrectAnswers int       `json:"incorrect_answers"`
	TotalQuestions   int       `json:"total_questions"`
	Percentage       float64   `json:"percentage"`
	Passed           bool      `json:"passed"`
	CertificateURL   *string   `json:"certificate_url,omitempty"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// SubmitResult records the caller's latest attempt at an exam. The marks
// breakdown is computed client-side and trusted as-is; the server only
// derives the percentage and the pass flag, then upserts the single result
// row keyed by (user, exam) in one conditional write. Retrying an identical
// submission lands on the same row.
func SubmitResult(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var req SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", req.ExamID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exam details not found or invalid"})
	}
	if exam.Type == "" || exam.TotalMarks <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exam details not found or invalid"})
	}

	result := models.Result{
		UserID:           userID,
		ExamID:           exam.ID,
		ExamType:         exam.Type,
		ObtainedMarks:    *req.Result.ObtainedMarks,
		CorrectAnswers:   *req.Result.Correct,
		IncorrectAnswers: *req.Result.Incorrect,
		TotalQuestions:   *req.Result.TotalQuestions,
		Percentage:       Percentage(*req.Result.Correct, *req.Result.TotalQuestions),
		Passed:           Passed(*req.Result.ObtainedMarks, exam.TotalMarks),
		SubmittedAt:      time.Now(),
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "exam_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"exam_type",
			"obtained_marks",
			"correct_answers",
			"incorrect_answers",
			"total_questions",
			"percentage",
			"passed",
			"submitted_at",
		}),
	}).Create(&result).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save result"})
	}

	var stored models.Result
	if err := database.DB.First(&stored, "user_id = ? AND exam_id = ?", userID, exam.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load result"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Result submitted successfully",
		"result":  stored,
	})
}

func GetSubmittedResults(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var results []models.Result
	err := database.DB.
		Preload("Exam").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&results).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	if len(results) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No results found."})
	}

	formatted := make([]resultResponse, len(results))
	for i, result := range results {
		// A result whose exam has since vanished still renders, with
		// placeholders instead of failing the whole list.
		examTitle := result.Exam.Title
		examType := result.Exam.Type
		if examTitle == "" {
			examTitle = "Unknown Exam"
		}
		if examType == "" {
			examType = "N/A"
		}

		formatted[i] = resultResponse{
			ID:               result.ID.String(),
			ExamTitle:        examTitle,
			ExamType:         examType,
			ObtainedMarks:    result.ObtainedMarks,
			CorrectAnswers:   result.CorrectAnswers,
			IncorrectAnswers: result.IncorrectAnswers,
			TotalQuestions:   result.TotalQuestions,
			Percentage:       result.Percentage,
			Passed:           result.Passed,
			CertificateURL:   result.CertificateURL,
			SubmittedAt:      result.SubmittedAt,
		}
	}

	return c.JSON(formatted)
}
