package source

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/arloliu/hostelmatch/types"
)

// Sample defaults.
const (
	DefaultSampleCount       = 60
	DefaultSampleSeed  int64 = 42
)

var (
	sampleGenders  = []string{"Male", "Female"}
	sampleCourses  = []string{"CS", "EE", "ME", "CE"}
	sampleYears    = []string{"1", "2", "3", "4"}
	sampleSleep    = []string{"early", "late", "medium"}
	sampleStudy    = []string{"low", "medium", "high"}
	sampleSocial   = []string{"introvert", "extrovert", "ambivert"}
	sampleClean    = []string{"high", "medium", "low"}
	sampleRegions  = []string{"North", "South", "East", "West", "Central"}
	categoricalCol = []string{
		types.FieldStudentID, types.FieldName, types.FieldGender, types.FieldCourse, types.FieldYear,
		types.FieldSleepTime, types.FieldStudyHours, types.FieldSocialLevel, types.FieldCleanliness,
	}
	numericCol = []string{
		types.FieldStudentID, types.FieldName, types.FieldGender,
		types.FieldSleepTime, "study_pref", types.FieldCleanliness, types.FieldSmoker,
		types.FieldNoiseTolerance, types.FieldRegion,
	}
)

// Sample implements a roster source generating demo data.
//
// The categorical roster cycles gender, course, year and the lifestyle survey
// answers, which suits the greedy strategy. The numeric roster draws sleep hour,
// study preference, cleanliness, smoking and noise tolerance from seeded normal
// distributions plus a home region, which suits the cluster strategy. Output is
// identical for identical options.
type Sample struct {
	count   int
	seed    int64
	numeric bool
}

var _ types.RosterSource = (*Sample)(nil)

// SampleOption configures a Sample source.
type SampleOption func(*Sample)

// WithCount sets the number of students (default: 60).
func WithCount(n int) SampleOption {
	return func(s *Sample) {
		s.count = n
	}
}

// WithSampleSeed sets the seed of the numeric generator (default: 42).
func WithSampleSeed(seed int64) SampleOption {
	return func(s *Sample) {
		s.seed = seed
	}
}

// WithNumeric switches to the numeric lifestyle roster.
func WithNumeric() SampleOption {
	return func(s *Sample) {
		s.numeric = true
	}
}

// NewSample creates a sample roster source.
//
// Example:
//
//	src := source.NewSample(source.WithCount(30), source.WithNumeric())
func NewSample(opts ...SampleOption) *Sample {
	s := &Sample{count: DefaultSampleCount, seed: DefaultSampleSeed}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadTable generates the roster.
//
// Returns:
//   - types.Table: Generated roster
//   - error: Context error only
func (s *Sample) LoadTable(ctx context.Context) (types.Table, error) {
	if err := ctx.Err(); err != nil {
		return types.Table{}, err
	}
	if s.numeric {
		return s.numericTable(), nil
	}

	return s.categoricalTable(), nil
}

func (s *Sample) categoricalTable() types.Table {
	t := types.Table{Columns: append([]string(nil), categoricalCol...)}
	for i := range max(s.count, 0) {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("STU%03d", i+1),
			fmt.Sprintf("Student %d", i+1),
			sampleGenders[i%len(sampleGenders)],
			sampleCourses[i%len(sampleCourses)],
			sampleYears[i%len(sampleYears)],
			sampleSleep[i%len(sampleSleep)],
			sampleStudy[i%len(sampleStudy)],
			sampleSocial[i%len(sampleSocial)],
			sampleClean[i%len(sampleClean)],
		})
	}

	return t
}

func (s *Sample) numericTable() types.Table {
	rng := rand.New(rand.NewSource(s.seed)) //nolint:gosec // demo data

	normal := func(mean, sd float64) float64 {
		return rng.NormFloat64()*sd + mean
	}
	score := func(mean float64) string {
		return strconv.Itoa(int(clip(normal(mean, 2), 0, 10)))
	}

	t := types.Table{Columns: append([]string(nil), numericCol...)}
	for i := range max(s.count, 0) {
		// night owls cluster around 23:00, early sleepers around 01:00
		centre := 23.0
		if rng.Float64() < 0.5 {
			centre = 1
		}
		hour := math.Mod(normal(centre, 2), 24)
		if hour < 0 {
			hour += 24
		}

		study := score(6)
		clean := score(6)
		smoker := "0"
		if rng.Float64() < 0.1 {
			smoker = "1"
		}
		noise := score(5)
		region := sampleRegions[rng.Intn(len(sampleRegions))]

		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("STU%03d", i+1),
			fmt.Sprintf("Student_%03d", i+1),
			sampleGenders[i%len(sampleGenders)],
			strconv.Itoa(int(clip(hour, 0, 23))),
			study,
			clean,
			smoker,
			noise,
			region,
		})
	}

	return t
}

func clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
