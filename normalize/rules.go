package normalize

import (
	"strings"

	"github.com/arloliu/hostelmatch/types"
)

// Tier orders match rules from most to least specific.
type Tier int

const (
	// TierExact matches the lowercased, trimmed column name exactly.
	TierExact Tier = iota
	// TierStrippedExact matches after removing separators from both names.
	TierStrippedExact
	// TierSubstring matches when the stripped pattern occurs in the stripped column name.
	TierSubstring
	// TierFallback matches a field-specific token anywhere in the lowercased column name.
	TierFallback
)

// tierCount is the number of tiers walked by the resolver.
const tierCount = int(TierFallback) + 1

// String returns the tier name used in resolution logs.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierStrippedExact:
		return "stripped_exact"
	case TierSubstring:
		return "substring"
	case TierFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Rule is one column matching rule.
type Rule struct {
	Tier    Tier
	Pattern string
}

// Matches reports whether column satisfies the rule.
func (r Rule) Matches(column string) bool {
	lower := strings.ToLower(strings.TrimSpace(column))
	switch r.Tier {
	case TierExact:
		return lower == r.Pattern
	case TierStrippedExact:
		return strip(lower) == strip(r.Pattern)
	case TierSubstring:
		return strings.Contains(strip(lower), strip(r.Pattern))
	case TierFallback:
		return strings.Contains(lower, r.Pattern)
	default:
		return false
	}
}

// FieldRule describes how one canonical field is resolved.
type FieldRule struct {
	// Field is the canonical attribute name (types.Field*).
	Field string

	// Required fields fail normalization when unresolved or empty.
	Required bool

	// Default is used for optional fields that are unresolved or empty.
	Default string

	// Rules are the ordered match rules for this field.
	Rules []Rule
}

// DefaultRules returns the rule table used by New when no rules are supplied.
//
// Mandatory fields come first so they win contested columns inside a tier.
func DefaultRules() []FieldRule {
	return []FieldRule{
		field(types.FieldStudentID, true, "", "id", "student", "roll"),
		field(types.FieldName, true, ""),
		field(types.FieldGender, true, "", "sex"),
		field(types.FieldCourse, false, types.DefaultCourse, "program", "dept"),
		field(types.FieldYear, false, types.DefaultYear),
		field(types.FieldSleepTime, false, types.DefaultLifestyle, "sleep"),
		field(types.FieldStudyHours, false, types.DefaultLifestyle, "study"),
		field(types.FieldSocialLevel, false, types.DefaultLifestyle, "social"),
		field(types.FieldCleanliness, false, types.DefaultLifestyle, "clean"),
		field(types.FieldSmoker, false, types.DefaultLifestyle, "smok"),
		field(types.FieldNoiseTolerance, false, types.DefaultLifestyle, "noise"),
		field(types.FieldRegion, false, types.DefaultLifestyle, "hometown", "home"),
	}
}

func field(name string, required bool, def string, fallbacks ...string) FieldRule {
	rules := []Rule{
		{Tier: TierExact, Pattern: name},
		{Tier: TierStrippedExact, Pattern: name},
		{Tier: TierSubstring, Pattern: name},
	}
	for _, fb := range fallbacks {
		rules = append(rules, Rule{Tier: TierFallback, Pattern: fb})
	}

	return FieldRule{Field: name, Required: required, Default: def, Rules: rules}
}

var separators = strings.NewReplacer("_", "", " ", "", "-", "")

func strip(s string) string {
	return separators.Replace(s)
}
