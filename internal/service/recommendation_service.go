package service

import (
	"fmt"
	"math"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
	"strings"
)

// Categories scoring below this mark get a focus entry and an action list.
const improvementThreshold = 4.0

// Below this a category's action list is classified High priority.
const highPriorityThreshold = 3.0

// RecommendationService turns scores into the ordered guidance list the
// presentation layer renders: one tier entry, an optional focus-areas
// summary, then per-category action lists from the catalog.
type RecommendationService struct {
	Catalog *catalog.Catalog
}

func NewRecommendationService(cat *catalog.Catalog) *RecommendationService {
	return &RecommendationService{Catalog: cat}
}

func (s *RecommendationService) Generate(categoryScores map[string]float64, overallScore float64) ([]model.Recommendation, error) {
	if err := s.checkScores(categoryScores, overallScore); err != nil {
		return []model.Recommendation{}, err
	}

	recommendations := []model.Recommendation{s.tierEntry(overallScore)}

	var focus []string
	for _, cat := range s.Catalog.Categories() {
		if score, ok := categoryScores[cat.Name]; ok && score < improvementThreshold {
			focus = append(focus, cat.ShortName())
		}
	}

	if len(focus) > 0 {
		recommendations = append(recommendations, model.Recommendation{
			Level:   "Focus Areas",
			Message: "Priority areas for improvement: " + strings.Join(focus, ", "),
			Icon:    "🎯",
		})
	}

	for _, cat := range s.Catalog.Categories() {
		score, ok := categoryScores[cat.Name]
		if !ok || score >= improvementThreshold {
			continue
		}
		priority := "Medium"
		if score < highPriorityThreshold {
			priority = "High"
		}
		recommendations = append(recommendations, model.Recommendation{
			Category: cat.Name,
			Score:    score,
			Priority: priority,
			Actions:  cat.Actions,
		})
	}

	return recommendations, nil
}

// tierEntry picks the first tier, high to low, whose threshold the overall
// score meets. Lower bounds are inclusive: 4.5 is Excellent, 4.49999 is not.
func (s *RecommendationService) tierEntry(overallScore float64) model.Recommendation {
	tiers := s.Catalog.Tiers()
	for _, tier := range tiers {
		if overallScore >= tier.Threshold {
			return model.Recommendation{
				Level:   tier.Level,
				Message: tier.Message,
				Icon:    tier.Icon,
			}
		}
	}
	last := tiers[len(tiers)-1]
	return model.Recommendation{Level: last.Level, Message: last.Message, Icon: last.Icon}
}

func (s *RecommendationService) checkScores(categoryScores map[string]float64, overallScore float64) error {
	if len(categoryScores) == 0 {
		return util.ErrEmptyScores
	}
	if math.IsNaN(overallScore) || overallScore < 0 || overallScore > 5 {
		return fmt.Errorf("%w: overall %v", util.ErrScoreOutOfRange, overallScore)
	}
	for name, score := range categoryScores {
		if math.IsNaN(score) || score < 0 || score > 5 {
			return fmt.Errorf("%w: %s %v", util.ErrScoreOutOfRange, name, score)
		}
	}
	return nil
}
