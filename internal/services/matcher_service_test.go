package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rihla/internal/models/response_models"
)

func candidate(name, city string) response_models.CandidatePlace {
	return response_models.CandidatePlace{Name: name, City: city}
}

func TestMatchPlanExactMatchWinsOverSubstring(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "morning", Name: "Najd Village", City: "Riyadh", Type: "restaurant"},
		},
	}
	candidates := []response_models.CandidatePlace{
		candidate("Najd Village Restaurant", "Riyadh"),
		candidate("Najd Village", "Riyadh"),
	}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Slots, 1)
	assert.Equal(t, "Najd Village", result.Days[0].Slots[0].Candidate.Name)
	assert.Empty(t, result.Skipped)
}

func TestMatchPlanSubstringBothDirections(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			// generated name contained in candidate name
			{Time: "morning", Name: "Masmak", City: "Riyadh", Type: "tourist_attraction"},
			// candidate name contained in generated name
			{Time: "afternoon", Name: "The Boulevard Riyadh City", City: "Riyadh", Type: "shopping_mall"},
		},
	}
	candidates := []response_models.CandidatePlace{
		candidate("Masmak Fortress", "Riyadh"),
		candidate("Boulevard Riyadh City", "Riyadh"),
	}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Slots, 2)
	assert.Equal(t, "Masmak Fortress", result.Days[0].Slots[0].Candidate.Name)
	assert.Equal(t, "Boulevard Riyadh City", result.Days[0].Slots[1].Candidate.Name)
}

func TestMatchPlanCityGate(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "morning", Name: "Al Baik", City: "Riyadh", Type: "restaurant"},
		},
	}
	// same name, wrong city: no match
	candidates := []response_models.CandidatePlace{candidate("Al Baik", "Jeddah")}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	assert.Empty(t, result.Days[0].Slots)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Al Baik", result.Skipped[0].Name)
	assert.Equal(t, "Riyadh", result.Skipped[0].City)
}

func TestMatchPlanCityComparisonIsCaseInsensitive(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "morning", Name: "al baik", City: "JEDDAH", Type: "restaurant"},
		},
	}
	candidates := []response_models.CandidatePlace{candidate("Al Baik", "Jeddah")}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Slots, 1)
	assert.Equal(t, "Al Baik", result.Days[0].Slots[0].Candidate.Name)
}

func TestMatchPlanShortestSubstringTieBreak(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "evening", Name: "Corniche", City: "Jeddah", Type: "tourist_attraction"},
		},
	}
	// both contain the generated name; the shorter one must win regardless
	// of catalog order
	longFirst := []response_models.CandidatePlace{
		candidate("Jeddah Corniche Waterfront Park", "Jeddah"),
		candidate("Jeddah Corniche", "Jeddah"),
	}
	shortFirst := []response_models.CandidatePlace{
		candidate("Jeddah Corniche", "Jeddah"),
		candidate("Jeddah Corniche Waterfront Park", "Jeddah"),
	}

	for _, candidates := range [][]response_models.CandidatePlace{longFirst, shortFirst} {
		result := matcher.MatchPlan(plan, candidates)
		require.Len(t, result.Days, 1)
		require.Len(t, result.Days[0].Slots, 1)
		assert.Equal(t, "Jeddah Corniche", result.Days[0].Slots[0].Candidate.Name)
	}
}

func TestMatchPlanMalformedSlotsSkipped(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "midnight", Name: "Al Baik", City: "Jeddah", Type: "restaurant"},
			{Time: "morning", Name: "", City: "Jeddah", Type: "restaurant"},
			{Time: "evening", Name: "Al Baik", City: "Jeddah", Type: "restaurant"},
		},
	}
	candidates := []response_models.CandidatePlace{candidate("Al Baik", "Jeddah")}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Slots, 1)
	assert.Len(t, result.Skipped, 2)
}

func TestMatchPlanDaysOrderedAndBadLabelsDropped(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 2": {
			{Time: "morning", Name: "Al Baik", City: "Jeddah", Type: "restaurant"},
		},
		"Day 1": {
			{Time: "morning", Name: "Masmak Fortress", City: "Riyadh", Type: "tourist_attraction"},
		},
		"Summary": {
			{Time: "morning", Name: "Not A Place", City: "Riyadh", Type: "other"},
		},
	}
	candidates := []response_models.CandidatePlace{
		candidate("Masmak Fortress", "Riyadh"),
		candidate("Al Baik", "Jeddah"),
	}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 2)
	assert.Equal(t, 1, result.Days[0].Number)
	assert.Equal(t, 2, result.Days[1].Number)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Not A Place", result.Skipped[0].Name)
}

func TestMatchPlanNoOverlapNoMatch(t *testing.T) {
	matcher := NewMatcherService()

	plan := response_models.GeneratedPlan{
		"Day 1": {
			{Time: "morning", Name: "Imaginary Garden", City: "Riyadh", Type: "tourist_attraction"},
		},
	}
	candidates := []response_models.CandidatePlace{candidate("Masmak Fortress", "Riyadh")}

	result := matcher.MatchPlan(plan, candidates)

	require.Len(t, result.Days, 1)
	assert.Empty(t, result.Days[0].Slots)
	assert.Len(t, result.Skipped, 1)
}
