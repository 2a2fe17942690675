// Package normalize maps arbitrary roster tables onto the canonical student schema.
//
// Column resolution is driven by an explicit rule table (see DefaultRules). Every
// canonical field owns an ordered list of match rules, and rules are applied in
// tiers across all fields:
//
//  1. TierExact: lowercased column name equals the field name
//  2. TierStrippedExact: names equal after removing underscores, spaces and hyphens
//  3. TierSubstring: the stripped field name is contained in the stripped column name
//  4. TierFallback: field-specific tokens, e.g. "id", "student", "roll" for student_id
//
// Within a tier, fields are visited in rule-table order and columns in table order.
// A column claimed by one field is never reused by another, so a direct match always
// wins over another field's fallback.
//
// Mandatory fields (student_id, name, gender) that cannot be resolved fail with
// *types.SchemaError. Optional fields fall back to their defaults: "General" for
// course, "1" for year and "medium" for lifestyle attributes.
package normalize
