package handlers

import (
	"encoding/json"
	"time"

	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/devdojo/devdojo-api/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ExamRequest struct {
	Title               string               `json:"title" validate:"required"`
	Code                string               `json:"code"`
	Subject             string               `json:"subject"`
	Category            string               `json:"category"`
	TimeLimit           int                  `json:"time_limit" validate:"omitempty,gt=0"`
	NumQuestions        int                  `json:"num_questions" validate:"omitempty,gt=0"`
	TotalMarks          float64              `json:"total_marks" validate:"required,gt=0"`
	Type                string               `json:"type" validate:"required,oneof='Practice Test' 'Certification Exam'"`
	Randomized          bool                 `json:"randomized"`
	CertificateTemplate string               `json:"certificate_template"`
	Sections            []models.ExamSection `json:"sections"`
	AccessCodes         []string             `json:"access_codes"`
	ExpiryDate          *time.Time           `json:"expiry_date"`
	AttemptsLimit       int                  `json:"attempts_limit"`
	RestrictCopyPaste   bool                 `json:"restrict_copy_paste"`
}

type examResponse struct {
	models.Exam
	MarksPerQuestion float64 `json:"marks_per_question"`
}

func (r *ExamRequest) apply(exam *models.Exam) error {
	sections, err := json.Marshal(r.Sections)
	if err != nil {
		return err
	}

	exam.Title = r.Title
	exam.Subject = r.Subject
	exam.Category = r.Category
	exam.TimeLimit = r.TimeLimit
	exam.NumQuestions = r.NumQuestions
	exam.TotalMarks = r.TotalMarks
	exam.Type = r.Type
	exam.Randomized = r.Randomized
	exam.CertificateTemplate = r.CertificateTemplate
	exam.Sections = sections
	exam.AccessCodes = pq.StringArray(r.AccessCodes)
	exam.ExpiryDate = r.ExpiryDate
	exam.AttemptsLimit = r.AttemptsLimit
	exam.RestrictCopyPaste = r.RestrictCopyPaste
	return nil
}

// canMutateExam is the single mutation policy: the creator or an admin.
func canMutateExam(exam *models.Exam, userID string, role string) bool {
	return role == models.RoleAdmin || exam.CreatedByID.String() == userID
}

func CreateExam(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	// Narrower than the route allowlist: only trainers author exams.
	if role != models.RoleTrainer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only trainers can create exams"})
	}

	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exam := models.Exam{CreatedByID: userID}
	if err := req.apply(&exam); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sections payload"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code := req.Code
		if code == "" {
			generated, err := utils.GenerateUniqueExamCode(tx)
			if err != nil {
				return err
			}
			code = generated
		}
		exam.Code = code
		return tx.Create(&exam).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(fiber.StatusCreated).JSON(exam)
}

func ListExams(c *fiber.Ctx) error {
	var exams []models.Exam
	if err := database.DB.Find(&exams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	response := make([]examResponse, len(exams))
	for i, exam := range exams {
		response[i] = examResponse{Exam: exam, MarksPerQuestion: exam.MarksPerQuestion()}
	}
	return c.JSON(response)
}

func GetCreatedExams(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var exams []models.Exam
	err := database.DB.
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&exams).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch created exams"})
	}
	return c.JSON(exams)
}

func UpdateExam(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	if !canMutateExam(&exam, userID.String(), role) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized to update this exam"})
	}

	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := req.apply(&exam); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sections payload"})
	}
	if req.Code != "" {
		exam.Code = req.Code
	}

	if err := database.DB.Save(&exam).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update exam"})
	}

	return c.JSON(fiber.Map{"message": "Exam updated successfully", "exam": exam})
}

func DeleteExam(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	if !canMutateExam(&exam, userID.String(), role) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized to delete this exam"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Question{}, "exam_id = ?", exam.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&exam).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete exam"})
	}

	return c.JSON(fiber.Map{"message": "Exam deleted successfully"})
}
