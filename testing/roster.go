package testing

import (
	"fmt"

	"github.com/arloliu/hostelmatch/types"
)

// NewStudent builds a student with the attributes the greedy scorer reads.
// Lifestyle attributes are left at the normalizer default.
func NewStudent(id, gender, course, year string) types.Student {
	return types.Student{
		ID:             id,
		Name:           "Student " + id,
		Gender:         gender,
		Course:         course,
		Year:           year,
		SleepTime:      types.DefaultLifestyle,
		StudyHours:     types.DefaultLifestyle,
		SocialLevel:    types.DefaultLifestyle,
		Cleanliness:    types.DefaultLifestyle,
		Smoker:         types.DefaultLifestyle,
		NoiseTolerance: types.DefaultLifestyle,
	}
}

// Roster builds n students S001..Sn that alternate gender M/F and share
// course and year, so every same-gender pair is maximally compatible.
func Roster(n int) []types.Student {
	roster := make([]types.Student, 0, n)
	for i := range n {
		gender := "M"
		if i%2 == 1 {
			gender = "F"
		}
		roster = append(roster, NewStudent(fmt.Sprintf("S%03d", i+1), gender, "CS", "1"))
	}

	return roster
}

// Table converts a roster into a raw input table using canonical column names.
func Table(roster []types.Student) types.Table {
	columns := []string{
		types.FieldStudentID, types.FieldName, types.FieldGender, types.FieldCourse, types.FieldYear,
		types.FieldSleepTime, types.FieldStudyHours, types.FieldSocialLevel, types.FieldCleanliness,
		types.FieldSmoker, types.FieldNoiseTolerance, types.FieldRegion,
	}

	rows := make([][]string, 0, len(roster))
	for _, s := range roster {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = s.Attribute(c)
		}
		rows = append(rows, row)
	}

	return types.Table{Columns: columns, Rows: rows}
}
