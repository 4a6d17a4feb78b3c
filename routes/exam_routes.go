package routes

import (
	"github.com/devdojo/devdojo-api/handlers"
	"github.com/devdojo/devdojo-api/middleware"
	"github.com/devdojo/devdojo-api/models"
	"github.com/gofiber/fiber/v2"
)

func ExamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exams := api.Group("/exams", middleware.Protected())

	// Authoring. Handlers apply narrower checks (trainer-only creation,
	// creator-or-admin mutation) on top of these allowlists.
	exams.Post("/create",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.CreateExam)
	exams.Post("/add-questions",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.AddQuestions)
	exams.Put("/update-exam/:examId",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.UpdateExam)
	exams.Put("/update-question/:questionId",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.UpdateQuestion)
	exams.Get("/created-exams",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.GetCreatedExams)

	// Reading.
	exams.Get("/all",
		middleware.RoleRequired(models.RoleTrainer, models.RoleExaminee, models.RoleAdmin, models.RoleLearner),
		handlers.ListExams)

	// Enrollment.
	exams.Post("/enroll/:examId",
		middleware.RoleRequired(models.RoleLearner, models.RoleExaminee, models.RoleAdmin),
		handlers.EnrollExam)
	exams.Get("/enrolledExam",
		middleware.RoleRequired(models.RoleLearner, models.RoleExaminee, models.RoleAdmin),
		handlers.GetEnrolledExams)

	// Attempts and certificates.
	exams.Post("/submit-result",
		middleware.RoleRequired(models.RoleLearner, models.RoleExaminee, models.RoleTrainer, models.RoleAdmin),
		handlers.SubmitResult)
	exams.Get("/submitted-results",
		middleware.RoleRequired(models.RoleLearner, models.RoleExaminee, models.RoleTrainer, models.RoleAdmin),
		handlers.GetSubmittedResults)

	// Parameterized routes last so the static paths above keep winning.
	exams.Get("/:examId/questions",
		middleware.RoleRequired(models.RoleTrainer, models.RoleExaminee, models.RoleAdmin, models.RoleLearner),
		handlers.GetExamQuestions)
	exams.Get("/:examId/certificate",
		middleware.RoleRequired(models.RoleLearner, models.RoleExaminee, models.RoleTrainer, models.RoleAdmin),
		handlers.GenerateCertificate)
	exams.Delete("/exam/:examId",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.DeleteExam)
	exams.Delete("/question/:questionId",
		middleware.RoleRequired(models.RoleTrainer, models.RoleAdmin),
		handlers.DeleteQuestion)
}
