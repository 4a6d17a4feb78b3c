package handlers

import (
	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type enrolledExamSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Trainer  string `json:"trainer"`
}

func EnrollExam(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Exam not found"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	// Stricter than the route allowlist: only learners and examinees may
	// enroll, whatever the route lets through.
	if user.Role != models.RoleLearner && user.Role != models.RoleExaminee {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Only learners and examinees can enroll in exams",
		})
	}

	if user.IsEnrolled(exam.ID) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Already enrolled in this exam",
		})
	}

	// Conditional append: the membership check runs inside the same write,
	// so two racing enrolls cannot both add the id.
	res := database.DB.Model(&models.User{}).
		Where("id = ? AND NOT (? = ANY(COALESCE(enrolled_exams, '{}')))", user.ID, exam.ID.String()).
		Update("enrolled_exams", gorm.Expr("array_append(COALESCE(enrolled_exams, '{}'), ?)", exam.ID.String()))
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to enroll"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Already enrolled in this exam",
		})
	}

	if err := database.DB.First(&user, "id = ?", user.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to enroll"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Enrolled in exam successfully",
		"enrolled_exams": user.EnrolledExams,
	})
}

func GetEnrolledExams(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	summaries := []enrolledExamSummary{}
	if len(user.EnrolledExams) > 0 {
		var exams []models.Exam
		err := database.DB.
			Preload("CreatedBy").
			Where("id IN ?", []string(user.EnrolledExams)).
			Find(&exams).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch enrolled exams"})
		}

		for _, exam := range exams {
			summaries = append(summaries, enrolledExamSummary{
				ID:       exam.ID.String(),
				Title:    exam.Title,
				Subject:  exam.Subject,
				Category: exam.Category,
				Type:     exam.Type,
				Trainer:  exam.CreatedBy.FullName,
			})
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Enrolled exams fetched successfully",
		"enrolled_exams": summaries,
	})
}
