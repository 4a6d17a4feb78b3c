package utils

import (
	"math/rand"
	"time"

	"github.com/devdojo/devdojo-api/models"
	"gorm.io/gorm"
)

const examCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueExamCode produces a short code not yet used by any exam.
func GenerateUniqueExamCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, examCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var exam models.Exam
		err := tx.Where("code = ?", code).First(&exam).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
