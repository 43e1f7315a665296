package response_models

// PlanSlot is one generated itinerary entry for a single time-of-day.
// Untrusted until it has been reconciled against the candidate catalog.
type PlanSlot struct {
	Time string `json:"time"`
	Name string `json:"name"`
	City string `json:"city"`
	Type string `json:"type"`
}

// GeneratedPlan maps a day label ("Day 1", "Day 2", ...) to its slots.
type GeneratedPlan map[string][]PlanSlot

// MatchedSlot pairs a generated slot with the real candidate it resolved
// to. Slot keeps the generated time-of-day; everything persisted comes
// from Candidate.
type MatchedSlot struct {
	Slot      PlanSlot
	Candidate CandidatePlace
}

// MatchedDay is the reconciled subset of one generated day, in day order.
type MatchedDay struct {
	Label  string
	Number int
	Slots  []MatchedSlot
}

// SkippedSlot records a generated mention that found no catalog match.
// Not an error, but kept for observability and surfaced as a warning.
type SkippedSlot struct {
	Name string `json:"name"`
	City string `json:"city"`
}
