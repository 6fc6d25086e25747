// Package scoring rates a lead's quality from the information the visitor
// chose to provide. The score is a fixed additive heuristic, not a model.
package scoring

import (
	"strings"
	"unicode/utf8"
)

const maxScore = 10

// Input holds the lead fields that contribute to the score. All fields are
// optional; empty strings simply contribute nothing.
type Input struct {
	Phone       string
	Email       string
	Address     string
	JobType     string
	Description string
}

// Score maps lead fields to an integer quality score in [0,10].
//
// Phone is weighted highest since it is what the sales team actually needs
// to close; a detailed description and an urgent job type add smaller
// bumps. The sum is capped at 10.
func Score(in Input) int {
	score := 0

	if in.Phone != "" {
		score += 3
	}
	if in.Email != "" {
		score += 2
	}
	if in.Address != "" {
		score += 2
	}

	// Tier on characters, not bytes, so non-ASCII descriptions land in
	// the right bucket.
	switch n := utf8.RuneCountInString(in.Description); {
	case n > 50:
		score += 2
	case n > 20:
		score += 1
	}

	switch strings.ToLower(in.JobType) {
	case "repair", "emergency":
		score += 1
	}

	if score > maxScore {
		return maxScore
	}
	return score
}
