package normalize

import (
	"fmt"
	"strings"

	"github.com/arloliu/hostelmatch/types"
)

// Match records which column a field resolved to and through which rule.
type Match struct {
	Field  string
	Column string
	Index  int
	Rule   Rule
}

// Resolution is the outcome of resolving a table header.
type Resolution struct {
	// Matches holds the resolved fields in rule-table order.
	Matches []Match

	// Defaulted lists optional fields that were not found and take their default.
	Defaulted []string
}

// Column returns the match for field.
func (r *Resolution) Column(field string) (Match, bool) {
	for _, m := range r.Matches {
		if m.Field == field {
			return m, true
		}
	}

	return Match{}, false
}

// Normalizer converts raw tables into rosters. It holds no state beyond its
// rule table and is safe for concurrent use.
type Normalizer struct {
	rules []FieldRule
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithRules replaces the rule table.
//
// Parameters:
//   - rules: Field rules in priority order
//
// Returns:
//   - Option: Configuration option
func WithRules(rules []FieldRule) Option {
	return func(n *Normalizer) {
		n.rules = rules
	}
}

// New creates a Normalizer with DefaultRules unless overridden.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{rules: DefaultRules()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Roster normalizes t with the default rule table.
//
// Parameters:
//   - t: Raw roster table
//
// Returns:
//   - []types.Student: Students in table row order
//   - error: *types.SchemaError on unresolved columns, empty mandatory cells
//     or duplicate student IDs
func Roster(t types.Table) ([]types.Student, error) {
	roster, _, err := New().Normalize(t)

	return roster, err
}

// Records normalizes key/value records, e.g. rows decoded from JSON.
func Records(records []map[string]string) ([]types.Student, error) {
	return Roster(types.NewTableFromRecords(records))
}

// Resolve maps canonical fields onto the given column names.
//
// Returns:
//   - *Resolution: Matched and defaulted fields
//   - error: *types.SchemaError listing every unresolved mandatory field
func (n *Normalizer) Resolve(columns []string) (*Resolution, error) {
	claimed := make([]bool, len(columns))
	found := make(map[string]Match, len(n.rules))

	for tier := range tierCount {
		for _, fr := range n.rules {
			if _, ok := found[fr.Field]; ok {
				continue
			}
			if m, ok := matchTier(fr, Tier(tier), columns, claimed); ok {
				claimed[m.Index] = true
				found[fr.Field] = m
			}
		}
	}

	res := &Resolution{}
	var missing []string
	for _, fr := range n.rules {
		m, ok := found[fr.Field]
		switch {
		case ok:
			res.Matches = append(res.Matches, m)
		case fr.Required:
			missing = append(missing, fr.Field)
		default:
			res.Defaulted = append(res.Defaulted, fr.Field)
		}
	}
	if len(missing) > 0 {
		return nil, &types.SchemaError{Fields: missing}
	}

	return res, nil
}

// matchTier returns the leftmost unclaimed column satisfying any of the
// field's rules in tier.
func matchTier(fr FieldRule, tier Tier, columns []string, claimed []bool) (Match, bool) {
	for i, col := range columns {
		if claimed[i] {
			continue
		}
		for _, rule := range fr.Rules {
			if rule.Tier == tier && rule.Matches(col) {
				return Match{Field: fr.Field, Column: col, Index: i, Rule: rule}, true
			}
		}
	}

	return Match{}, false
}

// Normalize resolves the header of t and builds one student per row.
//
// Cell values are trimmed. Empty optional cells take the field default. The
// input table is not modified.
//
// Returns:
//   - []types.Student: Students in table row order
//   - *Resolution: How each field was resolved
//   - error: *types.SchemaError
func (n *Normalizer) Normalize(t types.Table) ([]types.Student, *Resolution, error) {
	res, err := n.Resolve(t.Columns)
	if err != nil {
		return nil, nil, err
	}

	defaults := make(map[string]string, len(n.rules))
	required := make(map[string]bool, len(n.rules))
	for _, fr := range n.rules {
		defaults[fr.Field] = fr.Default
		required[fr.Field] = fr.Required
	}

	roster := make([]types.Student, 0, t.Len())
	seen := make(map[string]int, t.Len())
	for row := range t.Rows {
		var s types.Student
		for _, field := range res.Defaulted {
			s.SetAttribute(field, defaults[field])
		}
		for _, m := range res.Matches {
			value := strings.TrimSpace(t.Cell(row, m.Index))
			if value == "" {
				if required[m.Field] {
					return nil, nil, &types.SchemaError{
						Fields: []string{m.Field},
						Row:    row + 1,
						Reason: fmt.Sprintf("empty value in column %q", m.Column),
					}
				}
				value = defaults[m.Field]
			}
			s.SetAttribute(m.Field, value)
		}

		if first, dup := seen[s.ID]; dup {
			return nil, nil, &types.SchemaError{
				Fields: []string{types.FieldStudentID},
				Row:    row + 1,
				Reason: fmt.Sprintf("duplicate student_id %q (first seen in row %d)", s.ID, first),
			}
		}
		seen[s.ID] = row + 1
		roster = append(roster, s)
	}

	return roster, res, nil
}
