package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/response_models"
)

func TestBuildItineraryPromptCarriesProfileAndConstraints(t *testing.T) {
	builder := NewPromptBuilder()
	profile := &dbm.PreferenceProfile{
		TravelStyle:     "cultural",
		Interests:       []string{"historical sites", "museums"},
		FavoriteFood:    []string{"Saudi food"},
		PreferredCities: []string{"Riyadh", "Diriyah"},
		BudgetRange:     "mid",
	}
	candidates := []response_models.CandidatePlace{
		{Name: "Masmak Fortress", City: "Riyadh", Types: []string{"tourist_attraction"}},
		{Name: "Najd Village", City: "Riyadh", Types: []string{"restaurant"}},
	}

	prompt := builder.BuildItineraryPrompt(profile, 3, candidates)

	assert.Contains(t, prompt, "3-day trip")
	assert.Contains(t, prompt, "historical sites, museums")
	assert.Contains(t, prompt, "Riyadh, Diriyah")
	assert.Contains(t, prompt, "Saudi food")
	assert.Contains(t, prompt, `"name": "Masmak Fortress"`)
	assert.Contains(t, prompt, "DO NOT invent anything")
	assert.Contains(t, prompt, "ONE real city per day")
	assert.Contains(t, prompt, "3 activities: morning, afternoon, evening")
	assert.Contains(t, prompt, "NEVER suggest the same place name more than once")
	assert.Contains(t, prompt, "ONLY return raw JSON")
}

func TestBuildItineraryPromptListsOnlyGivenCandidates(t *testing.T) {
	builder := NewPromptBuilder()
	profile := &dbm.PreferenceProfile{TravelStyle: "relaxed"}
	candidates := []response_models.CandidatePlace{
		{Name: "Al Baik", City: "Jeddah", Types: []string{"restaurant"}},
	}

	prompt := builder.BuildItineraryPrompt(profile, 1, candidates)

	assert.Equal(t, 1, strings.Count(prompt, `"name": "Al Baik"`))
	assert.NotContains(t, prompt, "Masmak")
}
