package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponseStripsFences(t *testing.T) {
	raw := "```json\n{\"Day 1\": []}\n```"
	assert.Equal(t, `{"Day 1": []}`, CleanJSONResponse(raw))
}

func TestDayNumber(t *testing.T) {
	assert.Equal(t, 1, DayNumber("Day 1"))
	assert.Equal(t, 12, DayNumber(" Day 12 "))
	assert.Equal(t, 0, DayNumber("Day One"))
	assert.Equal(t, 0, DayNumber("Summary"))
	assert.Equal(t, 0, DayNumber("day 1"))
}

func TestParseGeneratedPlanHappyPath(t *testing.T) {
	raw := "```json\n" + `{
	  "Day 1": [
	    { "time": "Morning", "name": "Masmak Fortress", "city": "Riyadh", "type": "tourist_attraction" },
	    { "time": "evening", "name": "Najd Village", "city": "Riyadh", "type": "restaurant" }
	  ]
	}` + "\n```"

	plan, err := ParseGeneratedPlan(raw)
	require.NoError(t, err)
	require.Len(t, plan["Day 1"], 2)
	// slot times are normalized to lower case
	assert.Equal(t, "morning", plan["Day 1"][0].Time)
}

func TestParseGeneratedPlanRejectsMalformedJSON(t *testing.T) {
	_, err := ParseGeneratedPlan("The plan is: go to Riyadh")
	assert.ErrorIs(t, err, ErrGenerationFormat)
}

func TestParseGeneratedPlanRejectsEmptyPlan(t *testing.T) {
	_, err := ParseGeneratedPlan("{}")
	assert.ErrorIs(t, err, ErrGenerationFormat)
}

func TestParseGeneratedPlanRejectsPlanWithoutDayLabels(t *testing.T) {
	_, err := ParseGeneratedPlan(`{"Trip": [{"time": "morning", "name": "A", "city": "B", "type": "other"}]}`)
	assert.ErrorIs(t, err, ErrGenerationFormat)
}
