package handlers

import "testing"

func TestPassed(t *testing.T) {
	tests := []struct {
		name          string
		obtainedMarks float64
		totalMarks    float64
		want          bool
	}{
		{name: "exactly at threshold", obtainedMarks: 40, totalMarks: 100, want: true},
		{name: "just under threshold", obtainedMarks: 39.999, totalMarks: 100, want: false},
		{name: "well above threshold", obtainedMarks: 45, totalMarks: 100, want: true},
		{name: "well below threshold", obtainedMarks: 35, totalMarks: 100, want: false},
		{name: "zero marks", obtainedMarks: 0, totalMarks: 100, want: false},
		{name: "full marks", obtainedMarks: 100, totalMarks: 100, want: true},
		{name: "small total at threshold", obtainedMarks: 2, totalMarks: 5, want: true},
		{name: "small total under threshold", obtainedMarks: 1.9, totalMarks: 5, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Passed(tc.obtainedMarks, tc.totalMarks); got != tc.want {
				t.Errorf("Passed(%v, %v) = %v, want %v", tc.obtainedMarks, tc.totalMarks, got, tc.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    float64
	}{
		{name: "seven of ten", correct: 7, total: 10, want: 70},
		{name: "all correct", correct: 5, total: 5, want: 100},
		{name: "none correct", correct: 0, total: 8, want: 0},
		{name: "one of three", correct: 1, total: 3, want: 100.0 / 3.0},
		{name: "zero total", correct: 3, total: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percentage(tc.correct, tc.total); got != tc.want {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
			}
		})
	}
}
