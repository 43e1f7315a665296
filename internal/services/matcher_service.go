package services

import (
	"log"
	"sort"
	"strings"

	"rihla/internal/models/response_models"
	"rihla/pkg/utils"
)

var validSlotTimes = map[string]bool{
	"morning":   true,
	"afternoon": true,
	"evening":   true,
}

// MatchResult is the reconciled plan: only slots that resolved to a real
// candidate survive, grouped by day in day order. Skipped carries every
// generated mention that was dropped, for observability.
type MatchResult struct {
	Days    []response_models.MatchedDay
	Skipped []response_models.SkippedSlot
}

type MatcherServiceInterface interface {
	MatchPlan(plan response_models.GeneratedPlan, candidates []response_models.CandidatePlace) MatchResult
}

type MatcherService struct{}

func NewMatcherService() MatcherServiceInterface {
	return &MatcherService{}
}

// MatchPlan reconciles every generated slot against the candidate
// catalog. O(slots x candidates); both sides are bounded so no index is
// needed.
func (m *MatcherService) MatchPlan(plan response_models.GeneratedPlan, candidates []response_models.CandidatePlace) MatchResult {
	var result MatchResult

	labels := make([]string, 0, len(plan))
	for label := range plan {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return utils.DayNumber(labels[i]) < utils.DayNumber(labels[j])
	})

	for _, label := range labels {
		dayNumber := utils.DayNumber(label)
		if dayNumber == 0 {
			for _, slot := range plan[label] {
				result.Skipped = append(result.Skipped, response_models.SkippedSlot{Name: slot.Name, City: slot.City})
			}
			log.Printf("dropping unrecognized day label %q", label)
			continue
		}

		day := response_models.MatchedDay{Label: label, Number: dayNumber}
		for _, slot := range plan[label] {
			if !wellFormed(slot) {
				result.Skipped = append(result.Skipped, response_models.SkippedSlot{Name: slot.Name, City: slot.City})
				continue
			}
			candidate, ok := matchSlot(slot, candidates)
			if !ok {
				log.Printf("no match for %q in %s, skipping", slot.Name, slot.City)
				result.Skipped = append(result.Skipped, response_models.SkippedSlot{Name: slot.Name, City: slot.City})
				continue
			}
			day.Slots = append(day.Slots, response_models.MatchedSlot{Slot: slot, Candidate: candidate})
		}
		result.Days = append(result.Days, day)
	}

	return result
}

func wellFormed(slot response_models.PlanSlot) bool {
	return validSlotTimes[slot.Time] &&
		strings.TrimSpace(slot.Name) != "" &&
		strings.TrimSpace(slot.City) != ""
}

// matchSlot finds at most one candidate for a generated slot. The city
// must match exactly (case-insensitive). Among name comparisons an exact
// match beats a bidirectional substring match, and ties between substring
// matches go to the shortest candidate name, so the outcome does not
// depend on catalog ordering.
func matchSlot(slot response_models.PlanSlot, candidates []response_models.CandidatePlace) (response_models.CandidatePlace, bool) {
	slotName := strings.ToLower(strings.TrimSpace(slot.Name))
	slotCity := strings.ToLower(strings.TrimSpace(slot.City))

	var best response_models.CandidatePlace
	found := false

	for _, candidate := range candidates {
		if strings.ToLower(candidate.City) != slotCity {
			continue
		}
		candidateName := strings.ToLower(candidate.Name)

		if candidateName == slotName {
			return candidate, true
		}
		if strings.Contains(candidateName, slotName) || strings.Contains(slotName, candidateName) {
			if !found || len(candidate.Name) < len(best.Name) {
				best = candidate
				found = true
			}
		}
	}
	return best, found
}
