package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "rihla/internal/models/db_models"
	"rihla/internal/models/request_models"
	"rihla/internal/models/response_models"
	"rihla/internal/repositories"
	"rihla/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID uuid.UUID, req request_models.GenerateItineraryRequest) (*response_models.GenerateResult, error)
	PersistMatchedPlan(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time, forceNew bool, match MatchResult) (*response_models.GenerateResult, response_models.GeneratedPlan, error)
	CheckAvailability(ctx context.Context) error
}

type PlannerService struct {
	preferenceRepo repositories.PreferenceRepository
	itineraryRepo  repositories.ItineraryRepository
	placesService  PlacesServiceInterface
	promptBuilder  PromptBuilderInterface
	matcher        MatcherServiceInterface
	generation     utils.GenerationClientInterface
}

func NewPlannerService(
	preferenceRepo repositories.PreferenceRepository,
	itineraryRepo repositories.ItineraryRepository,
	placesService PlacesServiceInterface,
	promptBuilder PromptBuilderInterface,
	matcher MatcherServiceInterface,
	generation utils.GenerationClientInterface,
) PlannerServiceInterface {
	return &PlannerService{
		preferenceRepo: preferenceRepo,
		itineraryRepo:  itineraryRepo,
		placesService:  placesService,
		promptBuilder:  promptBuilder,
		matcher:        matcher,
		generation:     generation,
	}
}

// GenerateItinerary runs the whole pipeline: aggregate candidates, build
// the prompt, generate, reconcile, persist. Generation never starts when
// an itinerary already exists for the date range and force is off.
func (s *PlannerService) GenerateItinerary(ctx context.Context, userID uuid.UUID, req request_models.GenerateItineraryRequest) (*response_models.GenerateResult, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidInput
	}
	days := utils.TripLengthDays(startDate, endDate)

	if !req.ForceNew {
		existing, err := s.itineraryRepo.FindByUserAndDates(ctx, userID, startDate, endDate)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return &response_models.GenerateResult{ItineraryID: existing.ID.String(), Resumed: true}, nil
		}
	}

	profile, err := s.preferenceRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	cities := []string(profile.PreferredCities)
	if len(cities) == 0 {
		cities = DefaultCities
	}

	candidates := s.placesService.CollectCandidates(ctx, cities, DefaultCategories)
	if len(candidates) == 0 {
		return nil, utils.ErrNoCandidates
	}

	prompt := s.promptBuilder.BuildItineraryPrompt(profile, days, CapCandidates(candidates, MaxPromptCandidates))

	plan, err := s.generation.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Reconcile against the full aggregated list, not the capped prompt
	// subset: the cap only bounds the generation request.
	match := s.matcher.MatchPlan(plan, candidates)

	result, matchedPlan, err := s.PersistMatchedPlan(ctx, userID, startDate, endDate, req.ForceNew, match)
	if err != nil {
		return nil, err
	}

	if !result.Resumed && len(matchedPlan) > 0 {
		itineraryID, parseErr := uuid.Parse(result.ItineraryID)
		if parseErr == nil {
			go s.summarizeAsync(itineraryID, matchedPlan)
		}
	}

	return result, nil
}

// PersistMatchedPlan commits the reconciled plan: one itinerary, one
// daily plan per kept city-day, one selected place per retained slot.
// Writes abort on first failure with rows already written left in place;
// re-submission is governed by the idempotency check.
func (s *PlannerService) PersistMatchedPlan(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time, forceNew bool, match MatchResult) (*response_models.GenerateResult, response_models.GeneratedPlan, error) {
	if !forceNew {
		existing, err := s.itineraryRepo.FindByUserAndDates(ctx, userID, startDate, endDate)
		if err != nil {
			return nil, nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return &response_models.GenerateResult{ItineraryID: existing.ID.String(), Resumed: true}, nil, nil
		}
	}

	itinerary := &dbm.Itinerary{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Kind:      dbm.ItineraryKindAI,
	}
	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, nil, utils.ErrPersistenceWrite
	}

	matchedPlan := response_models.GeneratedPlan{}
	usedNames := map[string]bool{}

	for _, day := range match.Days {
		if len(day.Slots) == 0 {
			continue
		}
		// The day's city comes from its first retained slot; slots that
		// wandered into another city are dropped, as are repeats of a
		// place name already placed anywhere in this itinerary.
		dayCity := day.Slots[0].Candidate.City

		var kept []response_models.MatchedSlot
		for _, slot := range day.Slots {
			if !strings.EqualFold(slot.Candidate.City, dayCity) {
				continue
			}
			nameKey := strings.ToLower(slot.Candidate.Name)
			if usedNames[nameKey] {
				continue
			}
			usedNames[nameKey] = true
			kept = append(kept, slot)
		}
		if len(kept) == 0 {
			continue
		}

		dailyPlan, err := s.itineraryRepo.FindOrCreateDailyPlan(ctx, itinerary.ID, day.Number, dayCity)
		if err != nil {
			return nil, nil, utils.ErrPersistenceWrite
		}

		places := make([]dbm.SelectedPlace, 0, len(kept))
		for _, slot := range kept {
			places = append(places, dbm.SelectedPlace{
				DailyPlanID: dailyPlan.ID,
				PlaceName:   slot.Candidate.Name,
				Address:     slot.Candidate.Address,
				ImageURL:    slot.Candidate.ImageURL,
				Type:        slot.Candidate.TypeLabel(),
				Lat:         slot.Candidate.Lat,
				Lng:         slot.Candidate.Lng,
			})
			matchedPlan[day.Label] = append(matchedPlan[day.Label], slot.Slot)
		}
		if err := s.itineraryRepo.CreateSelectedPlaces(ctx, places); err != nil {
			return nil, nil, utils.ErrPersistenceWrite
		}
	}

	return &response_models.GenerateResult{
		ItineraryID: itinerary.ID.String(),
		Skipped:     match.Skipped,
	}, matchedPlan, nil
}

// summarizeAsync fills the description with a narrative built from the
// matched plan only; failure here never touches the persisted itinerary.
func (s *PlannerService) summarizeAsync(itineraryID uuid.UUID, matchedPlan response_models.GeneratedPlan) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := s.generation.GenerateSummary(ctx, matchedPlan)
	if err != nil {
		log.Printf("summary generation failed for itinerary %s: %v", itineraryID, err)
		return
	}
	if err := s.itineraryRepo.UpdateDescription(ctx, itineraryID, summary); err != nil {
		log.Printf("failed to store summary for itinerary %s: %v", itineraryID, err)
	}
}

func (s *PlannerService) CheckAvailability(ctx context.Context) error {
	return s.generation.Ping(ctx)
}
