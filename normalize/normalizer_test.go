package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hostelmatch/types"
)

func TestRoster(t *testing.T) {
	t.Run("canonical columns", func(t *testing.T) {
		tbl := types.Table{
			Columns: []string{"student_id", "name", "gender", "course", "year", "sleep_time", "study_hours", "social_level", "cleanliness"},
			Rows: [][]string{
				{"S1", "Ann", "Female", "CS", "2", "early", "high", "introvert", "high"},
			},
		}

		roster, err := Roster(tbl)
		require.NoError(t, err)
		require.Equal(t, []types.Student{{
			ID: "S1", Name: "Ann", Gender: "Female", Course: "CS", Year: "2",
			SleepTime: "early", StudyHours: "high", SocialLevel: "introvert", Cleanliness: "high",
			Smoker: "medium", NoiseTolerance: "medium", Region: "medium",
		}}, roster)
	})

	t.Run("Roll_No resolves as student_id", func(t *testing.T) {
		tbl := types.Table{
			Columns: []string{"Roll_No", "Name", "Gender"},
			Rows:    [][]string{{"R-17", "Bo", "Male"}},
		}

		n := New()
		roster, res, err := n.Normalize(tbl)
		require.NoError(t, err)
		require.Equal(t, "R-17", roster[0].ID)

		m, ok := res.Column(types.FieldStudentID)
		require.True(t, ok)
		require.Equal(t, "Roll_No", m.Column)
		require.Equal(t, TierFallback, m.Rule.Tier)
		require.Equal(t, "roll", m.Rule.Pattern)
	})

	t.Run("optional defaults", func(t *testing.T) {
		roster, err := Roster(types.Table{
			Columns: []string{"ID", "Name", "Gender"},
			Rows:    [][]string{{"1", "Cy", "Male"}},
		})
		require.NoError(t, err)
		s := roster[0]
		require.Equal(t, types.DefaultCourse, s.Course)
		require.Equal(t, types.DefaultYear, s.Year)
		require.Equal(t, "medium", s.SleepTime)
		require.Equal(t, "medium", s.StudyHours)
		require.Equal(t, "medium", s.SocialLevel)
		require.Equal(t, "medium", s.Cleanliness)
	})

	t.Run("empty optional cell takes default", func(t *testing.T) {
		roster, err := Roster(types.Table{
			Columns: []string{"student_id", "name", "gender", "course"},
			Rows:    [][]string{{"1", "Di", "Female", "  "}},
		})
		require.NoError(t, err)
		require.Equal(t, types.DefaultCourse, roster[0].Course)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		roster, err := Roster(types.Table{
			Columns: []string{" Student ID ", "Name", "Gender"},
			Rows:    [][]string{{" 42 ", " Ed ", "Male "}},
		})
		require.NoError(t, err)
		require.Equal(t, types.Student{
			ID: "42", Name: "Ed", Gender: "Male",
			Course: "General", Year: "1",
			SleepTime: "medium", StudyHours: "medium", SocialLevel: "medium", Cleanliness: "medium",
			Smoker: "medium", NoiseTolerance: "medium", Region: "medium",
		}, roster[0])
	})

	t.Run("header only table yields empty roster", func(t *testing.T) {
		roster, err := Roster(types.Table{Columns: []string{"student_id", "name", "gender"}})
		require.NoError(t, err)
		require.Empty(t, roster)
	})
}

func TestResolveTiers(t *testing.T) {
	t.Run("direct match beats another field's fallback", func(t *testing.T) {
		res, err := New().Resolve([]string{"Student Name", "Student ID", "Gender"})
		require.NoError(t, err)

		id, _ := res.Column(types.FieldStudentID)
		require.Equal(t, "Student ID", id.Column)
		require.Equal(t, TierStrippedExact, id.Rule.Tier)

		name, _ := res.Column(types.FieldName)
		require.Equal(t, "Student Name", name.Column)
		require.Equal(t, TierSubstring, name.Rule.Tier)
	})

	t.Run("substring tier claims before fallback tier", func(t *testing.T) {
		res, err := New().Resolve([]string{"id", "name", "gender", "student_region"})
		require.NoError(t, err)

		id, _ := res.Column(types.FieldStudentID)
		require.Equal(t, "id", id.Column)
		region, _ := res.Column(types.FieldRegion)
		require.Equal(t, "student_region", region.Column)
	})

	t.Run("field specific fallbacks", func(t *testing.T) {
		res, err := New().Resolve([]string{
			"student_id", "name", "Sex", "study_pref", "Smoking", "Noise", "Hometown", "Social Battery",
		})
		require.NoError(t, err)

		expect := map[string]string{
			types.FieldGender:         "Sex",
			types.FieldStudyHours:     "study_pref",
			types.FieldSmoker:         "Smoking",
			types.FieldNoiseTolerance: "Noise",
			types.FieldRegion:         "Hometown",
			types.FieldSocialLevel:    "Social Battery",
		}
		for field, col := range expect {
			m, ok := res.Column(field)
			require.True(t, ok, field)
			require.Equal(t, col, m.Column, field)
		}
		require.ElementsMatch(t, []string{types.FieldCourse, types.FieldYear, types.FieldSleepTime, types.FieldCleanliness}, res.Defaulted)
	})

	t.Run("fallback picks the leftmost matching column", func(t *testing.T) {
		cases := [][]string{
			{"Roll_No", "Name", "Gender", "Hostel_Code", "Residence_Id"},
			{"Roll_No", "Full Name", "Gender", "Student_Type"},
		}
		for _, columns := range cases {
			res, err := New().Resolve(columns)
			require.NoError(t, err)

			id, ok := res.Column(types.FieldStudentID)
			require.True(t, ok)
			require.Equal(t, "Roll_No", id.Column, columns)
			require.Equal(t, TierFallback, id.Rule.Tier)
			require.Equal(t, "roll", id.Rule.Pattern)
		}
	})

	t.Run("missing mandatory fields", func(t *testing.T) {
		_, err := New().Resolve([]string{"course", "year"})
		require.ErrorIs(t, err, types.ErrSchema)

		var se *types.SchemaError
		require.ErrorAs(t, err, &se)
		require.Equal(t, []string{types.FieldName, types.FieldGender}, se.Fields[1:])
		require.Equal(t, types.FieldStudentID, se.Fields[0])
		require.Zero(t, se.Row)
	})
}

func TestNormalizeRowErrors(t *testing.T) {
	t.Run("empty mandatory cell", func(t *testing.T) {
		_, err := Roster(types.Table{
			Columns: []string{"student_id", "name", "gender"},
			Rows:    [][]string{{"1", "A", "Male"}, {"2", "B", ""}},
		})
		var se *types.SchemaError
		require.ErrorAs(t, err, &se)
		require.Equal(t, 2, se.Row)
		require.Equal(t, []string{types.FieldGender}, se.Fields)
	})

	t.Run("ragged row counts as empty", func(t *testing.T) {
		_, err := Roster(types.Table{
			Columns: []string{"student_id", "name", "gender"},
			Rows:    [][]string{{"1", "A"}},
		})
		require.ErrorIs(t, err, types.ErrSchema)
	})

	t.Run("duplicate student ids", func(t *testing.T) {
		_, err := Roster(types.Table{
			Columns: []string{"student_id", "name", "gender"},
			Rows:    [][]string{{"1", "A", "Male"}, {"2", "B", "Male"}, {"1", "C", "Female"}},
		})
		var se *types.SchemaError
		require.ErrorAs(t, err, &se)
		require.Equal(t, 3, se.Row)
		require.Contains(t, se.Reason, "first seen in row 1")
	})
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	tbl := types.Table{
		Columns: []string{"student_id", "name", "gender"},
		Rows:    [][]string{{" 1 ", "A", "Male"}},
	}
	_, err := Roster(tbl)
	require.NoError(t, err)
	require.Equal(t, " 1 ", tbl.Rows[0][0])
}

func TestRecords(t *testing.T) {
	roster, err := Records([]map[string]string{
		{"Roll": "9", "Name": "Fay", "Gender": "Female", "Year": "3"},
	})
	require.NoError(t, err)
	require.Equal(t, "9", roster[0].ID)
	require.Equal(t, "3", roster[0].Year)
}

func TestWithRules(t *testing.T) {
	n := New(WithRules([]FieldRule{
		{Field: types.FieldStudentID, Required: true, Rules: []Rule{{Tier: TierExact, Pattern: "matric"}}},
		{Field: types.FieldName, Required: true, Rules: []Rule{{Tier: TierExact, Pattern: "who"}}},
		{Field: types.FieldGender, Required: false, Default: "Unknown", Rules: []Rule{{Tier: TierExact, Pattern: "g"}}},
	}))

	roster, res, err := n.Normalize(types.Table{
		Columns: []string{"Matric", "Who"},
		Rows:    [][]string{{"m1", "Gil"}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{types.FieldGender}, res.Defaulted)
	require.Equal(t, types.Student{ID: "m1", Name: "Gil", Gender: "Unknown"}, roster[0])
}

func TestTierString(t *testing.T) {
	require.Equal(t, "exact", TierExact.String())
	require.Equal(t, "stripped_exact", TierStrippedExact.String())
	require.Equal(t, "substring", TierSubstring.String())
	require.Equal(t, "fallback", TierFallback.String())
	require.Equal(t, "unknown", Tier(99).String())
}
