package docxgrid

import "testing"

func TestSemesterLabel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain", "Class Routine for 3rd sem students", "3rd sem"},
		{"full word", "Routine - 5th Semester - ECE", "5th sem"},
		{"uppercase", "1ST SEM ROUTINE", "1st sem"},
		{"spaced ordinal", "2 nd sem", "2nd sem"},
		{"no marker", "Weekly schedule", ""},
		{"empty", "", ""},
		{"first match wins", "3rd sem routine, shared with 5th sem", "3rd sem"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SemesterLabel(tt.body); got != tt.want {
				t.Errorf("SemesterLabel(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
