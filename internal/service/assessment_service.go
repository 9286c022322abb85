package service

import (
	"fmt"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/repository"
	"physician_assessment_backend/internal/util"
)

// AssessmentService orchestrates one assessment run: capture answers into
// the session, gate scoring behind validation, and derive scores and
// recommendations on demand. Derived values are never stored beside the
// response set; every read recomputes from it.
type AssessmentService struct {
	Sessions *repository.SessionRepository
	Scoring  *ScoringService
	Recs     *RecommendationService
	Catalog  *catalog.Catalog
}

func NewAssessmentService(sessions *repository.SessionRepository, scoring *ScoringService, recs *RecommendationService, cat *catalog.Catalog) *AssessmentService {
	return &AssessmentService{
		Sessions: sessions,
		Scoring:  scoring,
		Recs:     recs,
		Catalog:  cat,
	}
}

func (s *AssessmentService) StartSession() *model.AssessmentSession {
	return s.Sessions.Create()
}

func (s *AssessmentService) GetSession(id string) (*model.AssessmentSession, error) {
	return s.Sessions.Find(id)
}

// CategoryAnswers is one category's answer slots as sent by the client.
// Null entries leave a question unanswered.
type CategoryAnswers struct {
	Category string `json:"category" binding:"required"`
	Answers  []*int `json:"answers" binding:"required"`
}

// SaveResponses merges the submitted answers into the session. Each
// category's list must match its question count; answer values must be
// within the question's option range. Submitted sessions are frozen until
// reset.
func (s *AssessmentService) SaveResponses(id string, batches []CategoryAnswers) error {
	return s.Sessions.Update(id, func(sess *model.AssessmentSession) error {
		if sess.Submitted {
			return util.ErrAlreadySubmitted
		}
		for _, batch := range batches {
			cat, ok := s.Catalog.Category(batch.Category)
			if !ok {
				return fmt.Errorf("%w: %q", util.ErrUnknownCategory, batch.Category)
			}
			if len(batch.Answers) != len(cat.Questions) {
				return fmt.Errorf("%w: category %q has %d answers, want %d",
					util.ErrAnswerCountMismatch, cat.Name, len(batch.Answers), len(cat.Questions))
			}
			for i, a := range batch.Answers {
				if a != nil && (*a < 0 || *a > cat.Questions[i].MaxAnswer()) {
					return fmt.Errorf("%w: %s question %d value %d",
						util.ErrAnswerOutOfRange, cat.Name, i+1, *a)
				}
			}
			merged := make([]*int, len(cat.Questions))
			existing := sess.Responses[cat.Name]
			for i := range merged {
				if i < len(existing) {
					merged[i] = existing[i]
				}
				if batch.Answers[i] != nil {
					v := *batch.Answers[i]
					merged[i] = &v
				}
			}
			sess.Responses[cat.Name] = merged
		}
		return nil
	})
}

// Submit validates the session's responses. When answers are missing it
// returns their identifiers and leaves the session untouched; otherwise it
// marks the session submitted and returns the freshly computed report.
func (s *AssessmentService) Submit(id string) ([]string, *model.ScoreReport, error) {
	sess, err := s.Sessions.Find(id)
	if err != nil {
		return nil, nil, err
	}
	if sess.Submitted {
		return nil, nil, util.ErrAlreadySubmitted
	}

	if missing := s.Scoring.ValidateResponses(sess.Responses); len(missing) > 0 {
		return missing, nil, nil
	}

	report, err := s.report(sess.Responses)
	if err != nil {
		return nil, nil, err
	}

	if err := s.Sessions.Update(id, func(sess *model.AssessmentSession) error {
		sess.Submitted = true
		return nil
	}); err != nil {
		return nil, nil, err
	}

	return nil, report, nil
}

// Scores recomputes the report from the stored responses. Only submitted
// sessions have valid scores.
func (s *AssessmentService) Scores(id string) (*model.ScoreReport, error) {
	sess, err := s.Sessions.Find(id)
	if err != nil {
		return nil, err
	}
	if !sess.Submitted {
		return nil, util.ErrNotSubmitted
	}
	return s.report(sess.Responses)
}

func (s *AssessmentService) Recommendations(id string) ([]model.Recommendation, error) {
	report, err := s.Scores(id)
	if err != nil {
		return nil, err
	}
	return s.Recs.Generate(report.CategoryScores, report.OverallScore)
}

// Reset discards the response set wholesale and returns the session to the
// unanswered state.
func (s *AssessmentService) Reset(id string) error {
	return s.Sessions.Reset(id)
}

func (s *AssessmentService) report(responses model.ResponseSet) (*model.ScoreReport, error) {
	categoryScores, overall, details, err := s.Scoring.ComputeScores(responses)
	if err != nil {
		return nil, err
	}
	return &model.ScoreReport{
		CategoryScores: categoryScores,
		OverallScore:   overall,
		Details:        details,
	}, nil
}
