package docxgrid

import (
	"regexp"
	"strings"
)

// semesterRe matches markers like "3rd sem", "5th Semester", "1st sem.".
var semesterRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(st|nd|rd|th)\s*sem(?:ester)?\b`)

// SemesterLabel extracts a semester marker from document body text, returning
// it in canonical "3rd sem" form, or "" when no marker is present. Routine
// documents carry the semester in their free text above the table.
func SemesterLabel(bodyText string) string {
	m := semesterRe.FindStringSubmatch(bodyText)
	if m == nil {
		return ""
	}
	return m[1] + strings.ToLower(m[2]) + " sem"
}
