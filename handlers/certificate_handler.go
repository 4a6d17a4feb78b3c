package handlers

import (
	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/devdojo/devdojo-api/services"
	"github.com/gofiber/fiber/v2"
)

// GenerateCertificate issues (or re-issues) the caller's certificate for a
// passed exam. The artifact lives at a deterministic storage key per
// (user, exam), so repeat calls overwrite the same document and the URL on
// the result row is only ever written after a successful upload.
func GenerateCertificate(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	examID := c.Params("examId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var result models.Result
	err := database.DB.
		Preload("Exam").
		First(&result, "exam_id = ? AND user_id = ?", examID, userID).Error
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "No exam result found"})
	}
	if !result.Passed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You are not eligible for a certificate"})
	}

	certificateURL, err := services.GenerateExamCertificate(user, result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Certificate upload failed"})
	}

	err = database.DB.Model(&models.Result{}).
		Where("id = ?", result.ID).
		Update("certificate_url", certificateURL).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save certificate URL"})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         "Certificate generated successfully",
		"certificate_url": certificateURL,
	})
}
