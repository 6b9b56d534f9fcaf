package interview

import (
	"math"
	"strings"
)

// Scoring constants. An answer saturates its quality contribution at
// saturationWords words; the base score plus the full quality weight
// gives the 65-95 pre-clamp range.
const (
	saturationWords = 30
	scoreBase       = 65
	qualityWeight   = 30
	scoreFloor      = 60
	scoreCeiling    = 100
)

// scoreCategories lists the per-category labels and their offsets from
// the overall score, in display order.
var scoreCategories = []struct {
	label  string
	offset int
}{
	{"Technical concepts", 5},
	{"Problem solving", 0},
	{"Communication", 3},
	{"Cultural fit", -3},
}

// strengthsPool and improvementsPool are static feedback candidates; the
// result always carries the first three of each. Content-derived feedback
// is not implemented, so the feedback is identical regardless of answers.
var strengthsPool = []string{
	"Clear and concise communication",
	"Strong problem-solving approach",
	"Good technical understanding",
	"Relevant examples provided",
}

var improvementsPool = []string{
	"Provide more specific examples",
	"Structure answers using STAR method",
	"Show more enthusiasm for the role",
	"Include quantifiable results",
}

// CategoryScore is one entry of the per-category breakdown.
type CategoryScore struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// ScoreResult is the derived evaluation of a completed session.
type ScoreResult struct {
	OverallScore   int             `json:"overall_score"`
	Strengths      []string        `json:"strengths"`
	Improvements   []string        `json:"improvements"`
	QuestionScores []CategoryScore `json:"question_scores"`
}

// wordCount counts non-empty whitespace-separated tokens. Empty and
// whitespace-only answers count zero words.
func wordCount(answer string) int {
	return len(strings.Fields(answer))
}

// Score computes the deterministic evaluation for a set of answers.
// Each answer contributes a quality value of min(wordCount/30, 1.0); the
// mean quality scales the base score of 65 by up to 30 points, and the
// rounded result is clamped to [60, 100]. A zero-length answer slice
// scores the base 65 rather than failing.
func Score(answers []string) ScoreResult {
	var quality float64
	for _, answer := range answers {
		quality += math.Min(float64(wordCount(answer))/saturationWords, 1.0)
	}

	n := len(answers)
	if n == 0 {
		n = 1
	}
	quality /= float64(n)

	overall := int(math.Round(scoreBase + quality*qualityWeight))
	if overall < scoreFloor {
		overall = scoreFloor
	}
	if overall > scoreCeiling {
		overall = scoreCeiling
	}

	breakdown := make([]CategoryScore, 0, len(scoreCategories))
	for _, category := range scoreCategories {
		score := overall + category.offset
		if score > scoreCeiling {
			score = scoreCeiling
		}
		if score < 0 {
			score = 0
		}
		breakdown = append(breakdown, CategoryScore{Label: category.label, Score: score})
	}

	return ScoreResult{
		OverallScore:   overall,
		Strengths:      append([]string(nil), strengthsPool[:3]...),
		Improvements:   append([]string(nil), improvementsPool[:3]...),
		QuestionScores: breakdown,
	}
}
