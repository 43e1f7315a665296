package response_models

import "strings"

// CandidatePlace is a catalog-sourced place returned by one place search.
// It is immutable once fetched and serves as ground truth for matching:
// persisted coordinates, addresses and images always come from here.
type CandidatePlace struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Stars    *float64 `json:"stars"`
	ImageURL string   `json:"image_url"`
	Types    []string `json:"type"`
	City     string   `json:"city"`
	Category string   `json:"category"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
}

// Key identifies a candidate for de-duplication. The same place can come
// back from several category searches, so (name, city) lowercased is the
// identity, not the slice position.
func (p CandidatePlace) Key() string {
	return strings.ToLower(p.Name) + "|" + strings.ToLower(p.City)
}

func (p CandidatePlace) TypeLabel() string {
	return strings.Join(p.Types, ", ")
}
