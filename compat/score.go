// Package compat scores how well two students would share a room.
//
// The score is a symmetric, non-negative integer. Zero is a veto: students of
// different gender never share a room, whatever else they have in common.
package compat

import "github.com/arloliu/hostelmatch/types"

// Score weights.
const (
	BaseScore      = 10
	CourseBonus    = 5
	YearBonus      = 3
	LifestyleBonus = 2

	// MaxScore is the score of two students matching on every rule.
	MaxScore = BaseScore + CourseBonus + YearBonus + LifestyleBonus*len(lifestyleFields)
)

// lifestyleFields are compared by exact value; no distance weighting.
var lifestyleFields = [...]string{
	types.FieldSleepTime,
	types.FieldStudyHours,
	types.FieldSocialLevel,
	types.FieldCleanliness,
}

// Score returns the compatibility of a and b.
//
// Rules, in order:
//  1. Different gender: 0 (veto, short-circuits everything else)
//  2. Base score 10
//  3. +5 for the same course, +3 for the same year
//  4. +2 for each equal value of sleep_time, study_hours, social_level, cleanliness
//
// Returns:
//   - int: 0 for a forbidden pairing, otherwise 10..MaxScore
func Score(a, b types.Student) int {
	if a.Gender != b.Gender {
		return 0
	}

	score := BaseScore
	if a.Course == b.Course {
		score += CourseBonus
	}
	if a.Year == b.Year {
		score += YearBonus
	}
	for _, f := range lifestyleFields {
		if a.Attribute(f) == b.Attribute(f) {
			score += LifestyleBonus
		}
	}

	return score
}

// Compatible reports whether a and b may share a room.
func Compatible(a, b types.Student) bool {
	return Score(a, b) > 0
}

// RoomScore returns the lowest pairwise score among members, the score of the
// weakest pairing in the room. Rooms with fewer than two members score MaxScore.
func RoomScore(members []types.Student) int {
	lowest := MaxScore
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			lowest = min(lowest, Score(members[i], members[j]))
		}
	}

	return lowest
}
