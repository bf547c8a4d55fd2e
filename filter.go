package projreport

import "strings"

// Include reports whether a project belongs in the filtered report. Completed
// projects, projects without updates and projects flagged to be ignored are
// left out.
func Include(r Record) bool {
	if v, _ := r.Get(FieldOverallStatus); v == "Complete" {
		return false
	}
	if v, ok := r.Get(FieldUpdates); ok && v == "None" {
		return false
	}
	switch strings.ToLower(r.Lookup(FieldIgnoreInReports, "f")) {
	case "t", "true":
		return false
	}
	return true
}

// Filter returns the records for which keep reports true, in order. The input
// slice is left untouched.
func Filter(records []Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
