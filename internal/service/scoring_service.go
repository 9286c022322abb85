package service

import (
	"fmt"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
)

// ScoringService converts a response set into per-category and overall
// scores. Pure computation: no side effects, faults come back as explicit
// errors with empty results so the caller's session survives.
type ScoringService struct {
	Catalog *catalog.Catalog
}

func NewScoringService(cat *catalog.Catalog) *ScoringService {
	return &ScoringService{Catalog: cat}
}

// ComputeScores walks the catalog in order and accumulates weighted answer
// values per category. A category's normalized score is rawSum/maxSum scaled
// to 0-5; the map value is rounded to two decimals for display while the
// detail keeps full precision. The overall score is the unweighted mean of
// the UNROUNDED normalized scores, rounded exactly once at the end.
func (s *ScoringService) ComputeScores(responses model.ResponseSet) (map[string]float64, float64, map[string]model.CategoryScoreDetail, error) {
	categoryScores := make(map[string]float64)
	details := make(map[string]model.CategoryScoreDetail)

	if err := s.checkShape(responses); err != nil {
		return map[string]float64{}, 0, map[string]model.CategoryScoreDetail{}, err
	}

	sum := 0.0
	for _, cat := range s.Catalog.Categories() {
		answers := responses[cat.Name]

		rawSum := 0.0
		maxSum := 0.0
		questionScores := make([]model.QuestionScore, 0, len(cat.Questions))

		for i, q := range cat.Questions {
			answer := *answers[i]
			weighted := float64(answer) * q.Weight
			rawSum += weighted
			maxSum += float64(q.MaxAnswer()) * q.Weight
			questionScores = append(questionScores, model.QuestionScore{
				Question:      q.Text,
				Score:         answer,
				MaxScore:      q.MaxAnswer(),
				WeightedScore: weighted,
			})
		}

		normalized := 0.0
		if maxSum > 0 {
			normalized = rawSum / maxSum * 5
		}

		categoryScores[cat.Name] = util.Round2(normalized)
		details[cat.Name] = model.CategoryScoreDetail{
			RawScore:        rawSum,
			MaxPossible:     maxSum,
			NormalizedScore: normalized,
			QuestionDetails: questionScores,
		}
		sum += normalized
	}

	overall := 0.0
	if n := len(s.Catalog.Categories()); n > 0 {
		overall = util.Round2(sum / float64(n))
	}

	return categoryScores, overall, details, nil
}

// ValidateResponses lists the unanswered questions as "Category: Question N"
// identifiers, in catalog order, 1-based. An empty result means every slot
// holds a value and scoring may proceed.
func (s *ScoringService) ValidateResponses(responses model.ResponseSet) []string {
	var missing []string
	for _, cat := range s.Catalog.Categories() {
		answers := responses[cat.Name]
		for i := range cat.Questions {
			if i >= len(answers) || answers[i] == nil {
				missing = append(missing, fmt.Sprintf("%s: Question %d", cat.Name, i+1))
			}
		}
	}
	return missing
}

// checkShape rejects malformed response sets before any arithmetic runs, so
// a fault never leaves a partially computed result behind.
func (s *ScoringService) checkShape(responses model.ResponseSet) error {
	for name := range responses {
		if _, ok := s.Catalog.Category(name); !ok {
			return fmt.Errorf("%w: %q", util.ErrUnknownCategory, name)
		}
	}
	for _, cat := range s.Catalog.Categories() {
		answers, ok := responses[cat.Name]
		if !ok || len(answers) != len(cat.Questions) {
			return fmt.Errorf("%w: category %q has %d answers, want %d",
				util.ErrAnswerCountMismatch, cat.Name, len(answers), len(cat.Questions))
		}
		for i, a := range answers {
			if a == nil {
				return fmt.Errorf("%w: %s question %d unanswered", util.ErrIncompleteResponses, cat.Name, i+1)
			}
			if *a < 0 || *a > cat.Questions[i].MaxAnswer() {
				return fmt.Errorf("%w: %s question %d value %d", util.ErrAnswerOutOfRange, cat.Name, i+1, *a)
			}
		}
	}
	return nil
}
