package types

import (
	"strconv"
	"strings"
)

// Canonical attribute names of a student record.
const (
	FieldStudentID      = "student_id"
	FieldName           = "name"
	FieldGender         = "gender"
	FieldCourse         = "course"
	FieldYear           = "year"
	FieldSleepTime      = "sleep_time"
	FieldStudyHours     = "study_hours"
	FieldSocialLevel    = "social_level"
	FieldCleanliness    = "cleanliness"
	FieldSmoker         = "smoker"
	FieldNoiseTolerance = "noise_tolerance"
	FieldRegion         = "region"
)

// Default values applied by the normalizer when an optional attribute is absent.
const (
	DefaultCourse    = "General"
	DefaultYear      = "1"
	DefaultLifestyle = "medium"
)

// Student is one normalized roster entry.
//
// All attributes are kept in their textual form so that the compatibility
// scorer can apply exact-match rules and the feature encoder can decide
// how to interpret each column. Students are value objects: they are never
// mutated after normalization and two records are the same student when
// their IDs are equal.
type Student struct {
	ID     string `json:"student_id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Course string `json:"course"`
	Year   string `json:"year"`

	SleepTime      string `json:"sleep_time"`
	StudyHours     string `json:"study_hours"`
	SocialLevel    string `json:"social_level"`
	Cleanliness    string `json:"cleanliness"`
	Smoker         string `json:"smoker"`
	NoiseTolerance string `json:"noise_tolerance"`
	Region         string `json:"region"`
}

// Same reports whether s and o denote the same student.
func (s Student) Same(o Student) bool {
	return s.ID == o.ID
}

// Attribute returns the value of the canonical field name, or "" if the
// name is not a student attribute.
func (s Student) Attribute(field string) string {
	switch field {
	case FieldStudentID:
		return s.ID
	case FieldName:
		return s.Name
	case FieldGender:
		return s.Gender
	case FieldCourse:
		return s.Course
	case FieldYear:
		return s.Year
	case FieldSleepTime:
		return s.SleepTime
	case FieldStudyHours:
		return s.StudyHours
	case FieldSocialLevel:
		return s.SocialLevel
	case FieldCleanliness:
		return s.Cleanliness
	case FieldSmoker:
		return s.Smoker
	case FieldNoiseTolerance:
		return s.NoiseTolerance
	case FieldRegion:
		return s.Region
	default:
		return ""
	}
}

// SetAttribute assigns value to the canonical field name.
//
// Returns:
//   - bool: false when field is not a student attribute
func (s *Student) SetAttribute(field, value string) bool {
	switch field {
	case FieldStudentID:
		s.ID = value
	case FieldName:
		s.Name = value
	case FieldGender:
		s.Gender = value
	case FieldCourse:
		s.Course = value
	case FieldYear:
		s.Year = value
	case FieldSleepTime:
		s.SleepTime = value
	case FieldStudyHours:
		s.StudyHours = value
	case FieldSocialLevel:
		s.SocialLevel = value
	case FieldCleanliness:
		s.Cleanliness = value
	case FieldSmoker:
		s.Smoker = value
	case FieldNoiseTolerance:
		s.NoiseTolerance = value
	case FieldRegion:
		s.Region = value
	default:
		return false
	}

	return true
}

// CompareYear orders two year values.
//
// Ordering rules:
//   - Both values are integers: numeric order ("2" < "10")
//   - Otherwise: plain string order
//
// Returns:
//   - int: -1 if a < b, 0 if equal, +1 if a > b
func CompareYear(a, b string) int {
	ai, aErr := strconv.Atoi(strings.TrimSpace(a))
	bi, bErr := strconv.Atoi(strings.TrimSpace(b))
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}

// IDs returns the student IDs of roster in order.
func IDs(roster []Student) []string {
	ids := make([]string, len(roster))
	for i, s := range roster {
		ids[i] = s.ID
	}

	return ids
}
