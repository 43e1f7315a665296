package services

import (
	"context"
	"math"
	"sort"

	"github.com/pgvector/pgvector-go"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/request_models"
	"rihla/internal/models/response_models"
	"rihla/internal/repositories"
	"rihla/pkg/utils"
)

const (
	// PreferenceVectorDim matches the vector(5) column on enriched places.
	PreferenceVectorDim = 5

	DefaultRecommendationCount = 12
)

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, vector []float64, topN int) ([]response_models.ScoredPlace, error)
	AddCatalogPlace(ctx context.Context, req request_models.AddCatalogPlaceRequest) error
}

type RecommendService struct {
	catalogRepo repositories.CatalogRepository
}

func NewRecommendService(catalogRepo repositories.CatalogRepository) RecommendServiceInterface {
	return &RecommendService{catalogRepo: catalogRepo}
}

// Recommend scores every catalog place against the preference vector by
// cosine similarity and returns the topN highest, ties kept in catalog
// insertion order.
func (s *RecommendService) Recommend(ctx context.Context, vector []float64, topN int) ([]response_models.ScoredPlace, error) {
	if len(vector) != PreferenceVectorDim {
		return nil, utils.ErrInvalidPreferenceVector
	}

	catalog, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	scored := make([]response_models.ScoredPlace, 0, len(catalog))
	for _, place := range catalog {
		scored = append(scored, response_models.ScoredPlace{
			Name:     place.Name,
			City:     place.City,
			Stars:    place.Stars,
			ImageURL: place.ImageURL,
			Score:    cosineSimilarity(vector, place.Vector.Slice()),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN <= 0 {
		topN = DefaultRecommendationCount
	}
	if topN > len(scored) {
		topN = len(scored)
	}
	return scored[:topN], nil
}

// AddCatalogPlace stores a curated place with its feature vector.
func (s *RecommendService) AddCatalogPlace(ctx context.Context, req request_models.AddCatalogPlaceRequest) error {
	if len(req.Vector) != PreferenceVectorDim {
		return utils.ErrInvalidPreferenceVector
	}

	vec := make([]float32, PreferenceVectorDim)
	for i, v := range req.Vector {
		vec[i] = float32(v)
	}
	place := &dbm.EnrichedPlace{
		Name:     req.Name,
		City:     req.City,
		Stars:    req.Stars,
		ImageURL: req.ImageURL,
		Vector:   pgvector.NewVector(vec),
	}
	if err := s.catalogRepo.CreateEnrichedPlace(ctx, place); err != nil {
		return utils.ErrPersistenceWrite
	}
	return nil
}

// cosineSimilarity returns 0 when either vector has zero magnitude, and
// rounds to three decimals so equal-direction vectors compare equal.
func cosineSimilarity(u []float64, v []float32) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	var dot, magU, magV float64
	for i := 0; i < n; i++ {
		w := float64(v[i])
		dot += u[i] * w
		magU += u[i] * u[i]
		magV += w * w
	}
	if magU == 0 || magV == 0 {
		return 0
	}
	score := dot / (math.Sqrt(magU) * math.Sqrt(magV))
	return math.Round(score*1000) / 1000
}
