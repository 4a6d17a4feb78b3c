package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/devdojo/devdojo-api/database"
	"github.com/devdojo/devdojo-api/models"
	"github.com/devdojo/devdojo-api/notifications"
)

// SendExamExpiryNotices emails exam creators whose exams expire within the
// next 24 hours. Runs once a day from the scheduler in main.
func SendExamExpiryNotices() {
	log.Println("Running job: SendExamExpiryNotices...")

	now := time.Now()
	upperBound := now.Add(24 * time.Hour)

	var expiringExams []models.Exam
	err := database.DB.
		Preload("CreatedBy").
		Where("expiry_date IS NOT NULL AND expiry_date BETWEEN ? AND ?", now, upperBound).
		Find(&expiringExams).Error
	if err != nil {
		log.Printf("Error checking for expiring exams: %v", err)
		return
	}

	if len(expiringExams) == 0 {
		return
	}

	for _, exam := range expiringExams {
		log.Printf("Sending expiry notice for exam ID: %s", exam.ID)

		emailSubject := "Your exam expires within 24 hours"
		emailBody := fmt.Sprintf(
			"<h1>Exam Expiry Notice</h1><p>Hi there,</p><p>Your exam <b>%s</b> (code %s) expires on %s. Extend its expiry date if learners still need access.</p>",
			exam.Title,
			exam.Code,
			exam.ExpiryDate.Format("January 2, 2006 15:04"),
		)

		go notifications.SendEmail(exam.CreatedBy.FullName, exam.CreatedBy.Email, emailSubject, emailBody)
	}
}
