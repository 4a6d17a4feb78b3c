package handlers

import "github.com/devdojo/devdojo-api/models"

// Percentage is correct/total scaled to 0-100. Zero total yields zero rather
// than dividing by it.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Passed applies the fixed 40% pass threshold against the exam's total marks.
func Passed(obtainedMarks, totalMarks float64) bool {
	return obtainedMarks >= totalMarks*models.PassThreshold
}
