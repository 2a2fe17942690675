// Package features turns students into numeric vectors for similarity clustering.
//
// Numeric lifestyle attributes are z-score standardized over the roster being
// encoded; categorical attributes are one-hot encoded over the categories
// observed in that roster. Nothing is persisted between calls: every Encode
// fits its own means, deviations and vocabulary.
package features

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/hostelmatch/types"
)

// DefaultNumeric are the attributes standardized by default.
var DefaultNumeric = []string{
	types.FieldSleepTime,
	types.FieldStudyHours,
	types.FieldSocialLevel,
	types.FieldCleanliness,
	types.FieldSmoker,
	types.FieldNoiseTolerance,
}

// DefaultCategorical are the attributes one-hot encoded by default.
var DefaultCategorical = []string{types.FieldRegion}

// ordinal positions of common survey words on a 0..1 scale
var ordinal = map[string]float64{
	"low": 0, "early": 0, "no": 0, "false": 0, "introvert": 0, "never": 0, "none": 0,
	"medium": 0.5, "moderate": 0.5, "ambivert": 0.5, "sometimes": 0.5, "average": 0.5,
	"high": 1, "late": 1, "yes": 1, "true": 1, "extrovert": 1, "often": 1, "always": 1,
}

// Encoding is the fitted encoding of one roster.
type Encoding struct {
	// Columns names every vector component: numeric fields first, then
	// "field=category" indicators.
	Columns []string

	// Means and StdDevs are the standardization parameters per numeric field.
	// A zero deviation is replaced by 1 so constant columns encode as 0.
	Means   []float64
	StdDevs []float64

	// Categories holds the sorted vocabulary per categorical field.
	Categories map[string][]string

	// Vectors are aligned 1:1 with the encoded roster.
	Vectors [][]float64
}

// Width returns the length of every vector.
func (e *Encoding) Width() int {
	return len(e.Columns)
}

// Encoder converts rosters into feature vectors.
type Encoder struct {
	numeric     []string
	categorical []string
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithNumeric replaces the standardized fields.
func WithNumeric(fields ...string) Option {
	return func(e *Encoder) {
		e.numeric = fields
	}
}

// WithCategorical replaces the one-hot encoded fields.
func WithCategorical(fields ...string) Option {
	return func(e *Encoder) {
		e.categorical = fields
	}
}

// NewEncoder creates an encoder over DefaultNumeric and DefaultCategorical.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		numeric:     slices.Clone(DefaultNumeric),
		categorical: slices.Clone(DefaultCategorical),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode fits the encoder on roster and returns one vector per student.
//
// Numeric cells are parsed as numbers; survey words ("low", "medium", "late",
// "yes", ...) map onto the observed numeric range of the column (0..1 when the
// column holds no numbers) and unknown words onto its midpoint.
//
// Returns:
//   - *Encoding: Fitted parameters and vectors in roster order
//   - error: types.ErrNoData for an empty roster
func (e *Encoder) Encode(roster []types.Student) (*Encoding, error) {
	if len(roster) == 0 {
		return nil, types.ErrNoData
	}

	enc := &Encoding{
		Means:      make([]float64, len(e.numeric)),
		StdDevs:    make([]float64, len(e.numeric)),
		Categories: make(map[string][]string, len(e.categorical)),
		Vectors:    make([][]float64, len(roster)),
	}

	numeric := make([][]float64, len(e.numeric))
	for j, field := range e.numeric {
		col := numericColumn(roster, field)
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		enc.Means[j] = mean
		enc.StdDevs[j] = std
		numeric[j] = col
		enc.Columns = append(enc.Columns, field)
	}

	offsets := make([]map[string]int, len(e.categorical))
	for k, field := range e.categorical {
		vocab := vocabulary(roster, field)
		enc.Categories[field] = vocab
		offsets[k] = make(map[string]int, len(vocab))
		for _, cat := range vocab {
			offsets[k][cat] = len(enc.Columns)
			enc.Columns = append(enc.Columns, field+"="+cat)
		}
	}

	for i, s := range roster {
		vec := make([]float64, len(enc.Columns))
		for j := range e.numeric {
			vec[j] = (numeric[j][i] - enc.Means[j]) / enc.StdDevs[j]
		}
		for k, field := range e.categorical {
			vec[offsets[k][s.Attribute(field)]] = 1
		}
		enc.Vectors[i] = vec
	}

	return enc, nil
}

// Encode encodes roster with the default encoder.
func Encode(roster []types.Student) (*Encoding, error) {
	return NewEncoder().Encode(roster)
}

func numericColumn(roster []types.Student, field string) []float64 {
	col := make([]float64, len(roster))
	parsed := make([]bool, len(roster))
	lo, hi := 0.0, 1.0
	seen := false
	for i, s := range roster {
		v, err := strconv.ParseFloat(strings.TrimSpace(s.Attribute(field)), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		col[i], parsed[i] = v, true
		if !seen {
			lo, hi, seen = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}

	for i, s := range roster {
		if parsed[i] {
			continue
		}
		pos, ok := ordinal[strings.ToLower(strings.TrimSpace(s.Attribute(field)))]
		if !ok {
			pos = 0.5
		}
		col[i] = lo + pos*(hi-lo)
	}

	return col
}

func vocabulary(roster []types.Student, field string) []string {
	vocab := make([]string, 0, len(roster))
	for _, s := range roster {
		vocab = append(vocab, s.Attribute(field))
	}
	slices.Sort(vocab)

	return slices.Compact(vocab)
}
