package handlers

import (
	"errors"

	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionPayload struct {
	ID              string   `json:"id"`
	Text            string   `json:"text" validate:"required"`
	Options         []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer   string   `json:"correct_answer" validate:"required"`
	Marks           float64  `json:"marks" validate:"omitempty,gte=0"`
	NegativeMarking float64  `json:"negative_marking" validate:"omitempty,gte=0"`
	Difficulty      string   `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Explanation     string   `json:"explanation"`
}

type AddQuestionsRequest struct {
	ExamID    string            `json:"exam_id" validate:"required"`
	Questions []QuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

// hasValidAnswer reports whether the payload's correct answer is one of its
// options. Enforced at authoring time so stored questions are always
// internally consistent.
func (p *QuestionPayload) hasValidAnswer() bool {
	for _, opt := range p.Options {
		if opt == p.CorrectAnswer {
			return true
		}
	}
	return false
}

func (p *QuestionPayload) apply(q *models.Question) {
	q.Text = p.Text
	q.Options = pq.StringArray(p.Options)
	q.CorrectAnswer = p.CorrectAnswer
	q.Marks = p.Marks
	q.NegativeMarking = p.NegativeMarking
	q.Difficulty = p.Difficulty
	q.Explanation = p.Explanation
}

// AddQuestions applies a mixed batch of updates (entries with an id) and
// inserts (entries without). The exam's question-id list is then replaced
// wholesale with the ids of the batch, in batch order; question rows dropped
// from the list are left in storage. An id that resolves to no question fails
// the whole batch.
func AddQuestions(c *fiber.Ctx) error {
	_, role := currentUser(c)
	if role != models.RoleTrainer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only trainers can add questions"})
	}

	var req AddQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, p := range req.Questions {
		if !p.hasValidAnswer() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Correct answer must be one of the question's options",
			})
		}
	}

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", req.ExamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	var processed []models.Question
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		processed = processed[:0]

		for _, p := range req.Questions {
			if p.ID != "" {
				id, err := uuid.Parse(p.ID)
				if err != nil {
					return gorm.ErrRecordNotFound
				}
				var question models.Question
				if err := tx.First(&question, "id = ?", id).Error; err != nil {
					return err
				}
				p.apply(&question)
				question.ExamID = exam.ID
				if err := tx.Save(&question).Error; err != nil {
					return err
				}
				processed = append(processed, question)
			} else {
				question := models.Question{ExamID: exam.ID}
				p.apply(&question)
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
				processed = append(processed, question)
			}
		}

		ids := make(pq.StringArray, len(processed))
		for i, q := range processed {
			ids[i] = q.ID.String()
		}
		return tx.Model(&exam).Update("questions", ids).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "One or more question ids do not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save questions"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Questions added/updated successfully",
		"questions": processed,
	})
}

// orderByIDList sorts questions into the order of the exam's question-id
// list. Ids with no matching row are skipped.
func orderByIDList(ids []string, questions []models.Question) []models.Question {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID.String()] = q
	}

	ordered := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}

func GetExamQuestions(c *fiber.Ctx) error {
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	if len(exam.Questions) == 0 {
		return c.JSON([]models.Question{})
	}

	var questions []models.Question
	if err := database.DB.Where("id IN ?", []string(exam.Questions)).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	return c.JSON(orderByIDList(exam.Questions, questions))
}

func UpdateQuestion(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	questionID := c.Params("questionId")

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", question.ExamID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}
	if !canMutateExam(&exam, userID.String(), role) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized to update this question"})
	}

	var req QuestionPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.hasValidAnswer() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Correct answer must be one of the question's options",
		})
	}

	req.apply(&question)
	if err := database.DB.Save(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(fiber.Map{"message": "Question updated successfully", "question": question})
}

func DeleteQuestion(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	questionID := c.Params("questionId")

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", question.ExamID).Error; err == nil {
		if !canMutateExam(&exam, userID.String(), role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized to delete this question"})
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&question).Error; err != nil {
			return err
		}
		if exam.ID == uuid.Nil {
			return nil
		}

		remaining := make(pq.StringArray, 0, len(exam.Questions))
		for _, id := range exam.Questions {
			if id != questionID {
				remaining = append(remaining, id)
			}
		}
		return tx.Model(&exam).Update("questions", remaining).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}

	return c.JSON(fiber.Map{"message": "Question deleted successfully"})
}
