package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rihla/internal/models/response_models"
)

// stubSearchClient answers each (city, category) pair from a fixed table.
type stubSearchClient struct {
	results map[string][]response_models.CandidatePlace
	errs    map[string]error
}

func pairKey(city, category string) string {
	return fmt.Sprintf("%s/%s", city, category)
}

func (s *stubSearchClient) SearchPlaces(_ context.Context, city, category string) ([]response_models.CandidatePlace, error) {
	key := pairKey(city, category)
	if err := s.errs[key]; err != nil {
		return nil, err
	}
	return s.results[key], nil
}

func TestCollectCandidatesPreservesPairOrder(t *testing.T) {
	client := &stubSearchClient{
		results: map[string][]response_models.CandidatePlace{
			pairKey("Riyadh", "restaurant"):         {{Name: "Najd Village", City: "Riyadh"}},
			pairKey("Riyadh", "tourist_attraction"): {{Name: "Masmak Fortress", City: "Riyadh"}},
			pairKey("Jeddah", "restaurant"):         {{Name: "Al Baik", City: "Jeddah"}},
			pairKey("Jeddah", "tourist_attraction"): {{Name: "Corniche", City: "Jeddah"}},
		},
	}
	service := NewPlacesService(client)

	all := service.CollectCandidates(context.Background(),
		[]string{"Riyadh", "Jeddah"}, []string{"restaurant", "tourist_attraction"})

	require.Len(t, all, 4)
	assert.Equal(t, "Najd Village", all[0].Name)
	assert.Equal(t, "Masmak Fortress", all[1].Name)
	assert.Equal(t, "Al Baik", all[2].Name)
	assert.Equal(t, "Corniche", all[3].Name)
}

func TestCollectCandidatesDegradesOnPairFailure(t *testing.T) {
	client := &stubSearchClient{
		results: map[string][]response_models.CandidatePlace{
			pairKey("Riyadh", "restaurant"): {{Name: "Najd Village", City: "Riyadh"}},
		},
		errs: map[string]error{
			pairKey("Jeddah", "restaurant"): errors.New("quota exceeded"),
		},
	}
	service := NewPlacesService(client)

	all := service.CollectCandidates(context.Background(),
		[]string{"Riyadh", "Jeddah"}, []string{"restaurant"})

	require.Len(t, all, 1)
	assert.Equal(t, "Najd Village", all[0].Name)
}

func TestCollectCandidatesDropsCrossCategoryDuplicates(t *testing.T) {
	client := &stubSearchClient{
		results: map[string][]response_models.CandidatePlace{
			pairKey("Riyadh", "restaurant"): {{Name: "Najd Village", City: "Riyadh", Category: "restaurant"}},
			pairKey("Riyadh", "cafe"):       {{Name: "Najd Village", City: "Riyadh", Category: "cafe"}},
		},
	}
	service := NewPlacesService(client)

	all := service.CollectCandidates(context.Background(),
		[]string{"Riyadh"}, []string{"restaurant", "cafe"})

	require.Len(t, all, 1)
	assert.Equal(t, "restaurant", all[0].Category)
}

func TestCapCandidates(t *testing.T) {
	places := make([]response_models.CandidatePlace, 7)
	for i := range places {
		places[i].Name = fmt.Sprintf("Place %d", i)
	}

	capped := CapCandidates(places, 5)
	require.Len(t, capped, 5)
	assert.Equal(t, "Place 0", capped[0].Name)
	assert.Equal(t, "Place 4", capped[4].Name)

	assert.Len(t, CapCandidates(places, 10), 7)
}
