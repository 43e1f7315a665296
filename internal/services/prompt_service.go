package services

import (
	"encoding/json"
	"fmt"
	"strings"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/response_models"
)

type PromptBuilderInterface interface {
	BuildItineraryPrompt(profile *dbm.PreferenceProfile, days int, candidates []response_models.CandidatePlace) string
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilderInterface {
	return &PromptBuilder{}
}

// cityInterestGuide steers city selection toward the profile's interests.
var cityInterestGuide = []string{
	"Jeddah: beaches, seafood, shopping, Saudi food",
	"Dammam: beaches, seafood, Saudi food",
	"Al Jubail: beaches, seafood, Saudi food",
	"Jazan: beaches, Saudi food",
	"Riyadh: historical sites, Saudi food, international food, shopping",
	"Medina: historical sites, religious sites, Saudi food",
	"Mecca: historical sites, religious sites, Saudi food",
	"Taif: mountains, nature",
	"AlUla: historical sites, museums, nature",
	"Abha: mountains, nature, Saudi food",
	"Tabuk: mountains, nature",
	"Diriyah: museums, Saudi food, heritage",
}

// BuildItineraryPrompt is a pure function of the profile, trip length and
// capped candidate subset. Every hard constraint the matcher and the
// persistence layer depend on is stated explicitly: no invented places,
// one city per day, three slots per day, no repeated names, cuisine
// alignment, raw-JSON-only output.
func (b *PromptBuilder) BuildItineraryPrompt(profile *dbm.PreferenceProfile, days int, candidates []response_models.CandidatePlace) string {
	type promptPlace struct {
		Name string `json:"name"`
		City string `json:"city"`
		Type string `json:"type"`
	}
	places := make([]promptPlace, 0, len(candidates))
	for _, c := range candidates {
		places = append(places, promptPlace{Name: c.Name, City: c.City, Type: c.TypeLabel()})
	}
	placesJSON, _ := json.MarshalIndent(places, "", "  ")

	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("You are a smart travel planner helping a user plan a %d-day trip in Saudi Arabia.\n\n", days))
	prompt.WriteString("Here are the user's preferences:\n")
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(profile.Interests, ", ")))
	prompt.WriteString(fmt.Sprintf("- Preferred Cities: %s\n", strings.Join(profile.PreferredCities, ", ")))
	prompt.WriteString(fmt.Sprintf("- Favorite Food: %s\n", strings.Join(profile.FavoriteFood, ", ")))
	prompt.WriteString(fmt.Sprintf("- Budget: %s\n", profile.BudgetRange))
	prompt.WriteString(fmt.Sprintf("- Travel Style: %s\n\n", profile.TravelStyle))

	prompt.WriteString("You have access to the following list of real places (DO NOT invent anything):\n\n")
	prompt.Write(placesJSON)
	prompt.WriteString("\n\nCity Interest Guide:\n")
	for _, line := range cityInterestGuide {
		prompt.WriteString("- " + line + "\n")
	}

	prompt.WriteString(`
Instructions:
- Select cities that match the user's selected **interests**.
- When recommending restaurants, match the name and type to the user's **preferred food** (e.g. only suggest Saudi-style restaurants if they selected "Saudi food").
- Do not suggest restaurants with clearly foreign names like "Brasa De Brazil", "Shang Palace", "P.F. Chang's" unless the user selected that cuisine.
- You may infer cuisine based on place names or city culture. For example, if the user selected "Saudi food", prefer places like "AlRomansiah", "Najd Village", or others with traditional/local identity.
- NEVER suggest the same place name more than once across the whole trip.
- If the user's favorite food is "Saudi food", strictly avoid suggesting restaurants with clearly foreign names or menus. Examples of foreign restaurants to avoid include "Italiano Pizza", "Sushi House", "Le Bistro Cafe", etc.
- Instead, if the user selected "Saudi food", focus on suggesting restaurants with names and descriptions that indicate local or regional cuisine. Examples of Saudi restaurants to prefer: "Al Romansiah", "Najd Village", "Al Tazaj", "Shawarma House", "Maqadir Restaurant", etc.

Rules:
- You MUST assign only ONE real city per day.
- Each day must include 3 activities: morning, afternoon, evening.
- Each activity must have:
  { "time": "morning" | "afternoon" | "evening", "name": string, "city": string, "type": string }

Final Output Rules:
- ONLY return raw JSON. Do NOT include any explanation, notes, or text before or after it.
- The entire output must be valid parsable JSON like this:
  {
    "Day 1": [
      { "time": "morning", "name": "Place A", "city": "CityX", "type": "tourist_attraction" },
      { "time": "afternoon", "name": "Place B", "city": "CityX", "type": "shopping_mall" },
      { "time": "evening", "name": "Place C", "city": "CityX", "type": "restaurant" }
    ],
    ...
  }`)

	return strings.TrimSpace(prompt.String())
}
