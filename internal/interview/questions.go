// Package interview implements the mock interview session model: fixed
// question banks per interview type, deterministic answer scoring, and
// single-shot session finalization.
package interview

import "strings"

// Type identifies the kind of mock interview.
type Type string

// Supported interview types.
const (
	TypeTechnical Type = "technical"
	TypeBehavioral Type = "behavioral"
	TypeCaseStudy Type = "case_study"
)

// questionBanks maps each interview type to its fixed five questions.
// Order is significant and stable across calls.
var questionBanks = map[Type][]string{
	TypeTechnical: {
		"Explain the difference between let, const, and var in JavaScript.",
		"How would you optimize a slow-performing database query?",
		"Describe the concept of closures in JavaScript with an example.",
		"What are the principles of RESTful API design?",
		"How would you handle state management in a large React application?",
	},
	TypeBehavioral: {
		"Tell me about a time when you had to work with a difficult team member.",
		"Describe a situation where you had to meet a tight deadline.",
		"How do you handle constructive criticism?",
		"Tell me about a project you're particularly proud of.",
		"Describe a time when you had to learn a new technology quickly.",
	},
	TypeCaseStudy: {
		"How would you design a system to handle 1 million concurrent users?",
		"A client wants to increase their e-commerce conversion rate by 20%. What would you recommend?",
		"How would you prioritize features for a new mobile app with limited resources?",
		"Design a recommendation system for a streaming platform.",
		"How would you approach reducing customer churn for a SaaS product?",
	},
}

// Valid reports whether t is a recognized interview type.
func (t Type) Valid() bool {
	_, ok := questionBanks[t]
	return ok
}

// Label returns the human-readable form of the type, with underscores
// replaced by spaces (e.g. "case_study" -> "case study").
func (t Type) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// SelectQuestions returns the fixed question list for the given interview
// type, in stable order. Unknown types yield an empty slice; callers must
// refuse to start a session in that case.
func SelectQuestions(t Type) []string {
	bank, ok := questionBanks[t]
	if !ok {
		return nil
	}
	questions := make([]string, len(bank))
	copy(questions, bank)
	return questions
}
