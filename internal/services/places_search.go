package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"rihla/internal/models/response_models"
	"rihla/pkg/utils"
)

const (
	CategoryRestaurant        = "restaurant"
	CategoryTouristAttraction = "tourist_attraction"
	CategoryHotel             = "hotel"
	CategoryCafe              = "cafe"
	CategoryMosque            = "mosque"
	CategoryShoppingMall      = "shopping_mall"
	CategoryOther             = "other"
)

// DefaultCategories is the fixed set the aggregator fans out over.
var DefaultCategories = []string{
	CategoryRestaurant,
	CategoryTouristAttraction,
	CategoryCafe,
	CategoryMosque,
	CategoryShoppingMall,
	CategoryHotel,
}

const maxResultsPerSearch = 10

// PlaceSearchClient is the opaque place-search capability: one text
// search per (city, category) pair.
type PlaceSearchClient interface {
	SearchPlaces(ctx context.Context, city, category string) ([]response_models.CandidatePlace, error)
}

// GooglePlacesClient queries the Google Places Text Search API and maps
// the provider vocabulary into our category set. Responses are cached per
// (city, category) pair because the same pairs are re-fetched on every
// generation attempt.
type GooglePlacesClient struct {
	HTTP   *http.Client
	APIKey string
	Cache  *gocache.Cache
}

func NewGooglePlacesClient() *GooglePlacesClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		panic("GOOGLE_MAPS_API_KEY is empty")
	}
	return &GooglePlacesClient{
		HTTP:   &http.Client{Timeout: 15 * time.Second},
		APIKey: key,
		Cache:  gocache.New(15*time.Minute, 30*time.Minute),
	}
}

func searchQuery(city, category string) string {
	switch category {
	case CategoryRestaurant:
		return fmt.Sprintf("top restaurants in %s Saudi Arabia", city)
	case CategoryTouristAttraction:
		return fmt.Sprintf("top tourist attractions in %s Saudi Arabia", city)
	case CategoryHotel:
		return fmt.Sprintf("top hotels in %s Saudi Arabia", city)
	case CategoryCafe:
		return fmt.Sprintf("best cafes in %s Saudi Arabia", city)
	case CategoryMosque:
		return fmt.Sprintf("beautiful mosques in %s Saudi Arabia", city)
	case CategoryShoppingMall:
		return fmt.Sprintf("top shopping malls in %s Saudi Arabia", city)
	default:
		return fmt.Sprintf("places in %s Saudi Arabia", city)
	}
}

// mapProviderTypes converts Google place types into the fixed category
// enum; anything unrecognized collapses to "other".
func mapProviderTypes(providerTypes []string) []string {
	known := map[string]string{
		"restaurant":         CategoryRestaurant,
		"tourist_attraction": CategoryTouristAttraction,
		"lodging":            CategoryHotel,
		"cafe":               CategoryCafe,
		"mosque":             CategoryMosque,
		"shopping_mall":      CategoryShoppingMall,
	}

	var mapped []string
	for _, t := range providerTypes {
		if category, ok := known[t]; ok {
			mapped = append(mapped, category)
		}
	}
	if len(mapped) == 0 {
		mapped = []string{CategoryOther}
	}
	return mapped
}

type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           *float64 `json:"rating"`
		Types            []string `json:"types"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GooglePlacesClient) SearchPlaces(ctx context.Context, city, category string) ([]response_models.CandidatePlace, error) {
	cacheKey := strings.ToLower(city) + "|" + category
	if cached, ok := c.Cache.Get(cacheKey); ok {
		return cached.([]response_models.CandidatePlace), nil
	}

	u := url.URL{
		Scheme: "https",
		Host:   "maps.googleapis.com",
		Path:   "/maps/api/place/textsearch/json",
	}
	q := url.Values{}
	q.Set("query", searchQuery(city, category))
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http error: %v", utils.ErrCatalogFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status: %s", utils.ErrCatalogFetch, resp.Status)
	}

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", utils.ErrCatalogFetch, err)
	}
	if body.Status != "OK" {
		// ZERO_RESULTS and quota issues both degrade to empty, matching
		// the per-pair failure policy.
		if body.Status != "ZERO_RESULTS" {
			return nil, fmt.Errorf("%w: api status %s: %s", utils.ErrCatalogFetch, body.Status, body.ErrorMessage)
		}
		c.Cache.Set(cacheKey, []response_models.CandidatePlace{}, gocache.DefaultExpiration)
		return nil, nil
	}

	places := make([]response_models.CandidatePlace, 0, maxResultsPerSearch)
	for _, result := range body.Results {
		if !strings.Contains(strings.ToLower(result.FormattedAddress), strings.ToLower(city)) {
			continue
		}
		if len(result.Photos) == 0 || result.Photos[0].PhotoReference == "" {
			continue
		}
		imageURL := fmt.Sprintf(
			"https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photo_reference=%s&key=%s",
			result.Photos[0].PhotoReference, c.APIKey,
		)
		places = append(places, response_models.CandidatePlace{
			Name:     result.Name,
			Address:  result.FormattedAddress,
			Stars:    result.Rating,
			ImageURL: imageURL,
			Types:    mapProviderTypes(result.Types),
			City:     city,
			Category: category,
			Lat:      result.Geometry.Location.Lat,
			Lng:      result.Geometry.Location.Lng,
		})
		if len(places) >= maxResultsPerSearch {
			break
		}
	}

	c.Cache.Set(cacheKey, places, gocache.DefaultExpiration)
	return places, nil
}
