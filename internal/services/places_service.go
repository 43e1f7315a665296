package services

import (
	"context"
	"log"
	"sync"

	"rihla/internal/models/response_models"
)

// DefaultCities is used when a profile expresses no city preference.
var DefaultCities = []string{
	"Riyadh", "Jeddah", "Mecca", "Medina", "Dammam", "Taif",
	"AlUla", "Abha", "Tabuk", "Jazan", "Diriyah", "Al Jubail",
}

// MaxPromptCandidates caps the candidate list handed to the prompt
// builder. The cap is positional, not quality-ranked: the aggregator
// emits pairs in (city, category) order and the prefix is whatever came
// first. Matching still runs against the full list.
const MaxPromptCandidates = 100

type PlacesServiceInterface interface {
	CollectCandidates(ctx context.Context, cities, categories []string) []response_models.CandidatePlace
}

type PlacesService struct {
	searchClient PlaceSearchClient
}

func NewPlacesService(searchClient PlaceSearchClient) PlacesServiceInterface {
	return &PlacesService{searchClient: searchClient}
}

// CollectCandidates fans one search out per (city, category) pair and
// flattens the results in pair order. A failed pair degrades to an empty
// result set for that pair; the batch always completes.
func (s *PlacesService) CollectCandidates(ctx context.Context, cities, categories []string) []response_models.CandidatePlace {
	type pairResult struct {
		places []response_models.CandidatePlace
	}

	pairs := len(cities) * len(categories)
	results := make([]pairResult, pairs)

	var wg sync.WaitGroup
	for ci, city := range cities {
		for ti, category := range categories {
			wg.Add(1)
			go func(idx int, city, category string) {
				defer wg.Done()
				places, err := s.searchClient.SearchPlaces(ctx, city, category)
				if err != nil {
					log.Printf("place search failed for %s/%s: %v", city, category, err)
					return
				}
				results[idx] = pairResult{places: places}
			}(ci*len(categories)+ti, city, category)
		}
	}
	wg.Wait()

	// The same place often comes back from several category searches;
	// keep the first occurrence only.
	seen := map[string]bool{}
	var all []response_models.CandidatePlace
	for _, r := range results {
		for _, place := range r.places {
			key := place.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, place)
		}
	}
	return all
}

// CapCandidates truncates to a bounded prefix before prompting.
func CapCandidates(places []response_models.CandidatePlace, n int) []response_models.CandidatePlace {
	if len(places) <= n {
		return places
	}
	return places[:n]
}
