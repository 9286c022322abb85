package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportService builds the downloadable result files. Both exports are
// synchronous in-memory buffer builds; nothing is streamed or persisted.
type ExportService struct {
	Scoring *ScoringService
	Recs    *RecommendationService
	Catalog *catalog.Catalog
}

func NewExportService(scoring *ScoringService, recs *RecommendationService, cat *catalog.Catalog) *ExportService {
	return &ExportService{Scoring: scoring, Recs: recs, Catalog: cat}
}

// ResultExport is the JSON download payload. Scores are serialized exactly
// as computed, with no additional rounding, so decoding the file reproduces
// them bit-identical.
type ResultExport struct {
	Timestamp       string                               `json:"timestamp"`
	OverallScore    float64                              `json:"overall_score"`
	CategoryScores  map[string]float64                   `json:"category_scores"`
	CategoryDetails map[string]model.CategoryScoreDetail `json:"category_details"`
	Responses       map[string][]int                     `json:"responses"`
}

func (s *ExportService) BuildJSON(sess *model.AssessmentSession) ([]byte, error) {
	if !sess.Submitted {
		return nil, util.ErrNotSubmitted
	}

	categoryScores, overall, details, err := s.Scoring.ComputeScores(sess.Responses)
	if err != nil {
		return nil, err
	}

	export := ResultExport{
		Timestamp:       time.Now().Format(time.RFC3339),
		OverallScore:    overall,
		CategoryScores:  categoryScores,
		CategoryDetails: details,
		Responses:       flattenResponses(sess.Responses),
	}

	return json.MarshalIndent(export, "", "  ")
}

// BuildWorkbook assembles the four-sheet xlsx report: Summary, Detailed
// Scores, Action Plan, and Overview.
func (s *ExportService) BuildWorkbook(sess *model.AssessmentSession) (*bytes.Buffer, error) {
	if !sess.Submitted {
		return nil, util.ErrNotSubmitted
	}

	categoryScores, overall, details, err := s.Scoring.ComputeScores(sess.Responses)
	if err != nil {
		return nil, err
	}
	recommendations, err := s.Recs.Generate(categoryScores, overall)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	now := time.Now()

	// Summary
	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Category", "Score (0-5)", "Assessment Date"}); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	row := 2
	for _, cat := range s.Catalog.Categories() {
		cell := fmt.Sprintf("A%d", row)
		values := []interface{}{cat.Name, categoryScores[cat.Name], now.Format(util.DateFormat)}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
		}
		row++
	}

	// Detailed Scores
	const detailSheet = "Detailed Scores"
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	header := []interface{}{"Category", "Question", "Raw Score", "Max Score", "Weighted Score", "Percentage"}
	if err := f.SetSheetRow(detailSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	totalQuestions := 0
	row = 2
	for _, cat := range s.Catalog.Categories() {
		for _, qd := range details[cat.Name].QuestionDetails {
			percentage := 0.0
			if qd.MaxScore > 0 {
				percentage = util.Round1(float64(qd.Score) / float64(qd.MaxScore) * 100)
			}
			cell := fmt.Sprintf("A%d", row)
			values := []interface{}{cat.Name, qd.Question, qd.Score, qd.MaxScore, util.Round2(qd.WeightedScore), percentage}
			if err := f.SetSheetRow(detailSheet, cell, &values); err != nil {
				return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
			}
			totalQuestions++
			row++
		}
	}

	// Action Plan
	const planSheet = "Action Plan"
	if _, err := f.NewSheet(planSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	planRows := 0
	row = 2
	for _, rec := range recommendations {
		if len(rec.Actions) == 0 {
			continue
		}
		for _, action := range rec.Actions {
			cell := fmt.Sprintf("A%d", row)
			values := []interface{}{rec.Category, rec.Priority, action}
			if err := f.SetSheetRow(planSheet, cell, &values); err != nil {
				return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
			}
			planRows++
			row++
		}
	}
	if planRows > 0 {
		if err := f.SetSheetRow(planSheet, "A1", &[]interface{}{"Category", "Priority", "Action Item"}); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
		}
	} else {
		if err := f.SetSheetRow(planSheet, "A1", &[]interface{}{"Note"}); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
		}
		if err := f.SetSheetRow(planSheet, "A2", &[]interface{}{"No specific recommendations needed"}); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
		}
	}

	// Overview
	const overviewSheet = "Overview"
	if _, err := f.NewSheet(overviewSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	overview := [][]interface{}{
		{"Metric", "Value"},
		{"Overall Score", fmt.Sprintf("%v/5.0", overall)},
		{"Assessment Date", now.Format(util.DateTimeFormat)},
		{"Total Questions Answered", totalQuestions},
	}
	for i, values := range overview {
		cell := fmt.Sprintf("A%d", i+1)
		v := values
		if err := f.SetSheetRow(overviewSheet, cell, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrWorkbookBuildFailed, err)
	}
	return buf, nil
}

// flattenResponses converts the nullable answer slots into plain ints for
// export. Callers only export submitted sessions, so every slot is set.
func flattenResponses(responses model.ResponseSet) map[string][]int {
	out := make(map[string][]int, len(responses))
	for cat, answers := range responses {
		flat := make([]int, len(answers))
		for i, a := range answers {
			if a != nil {
				flat[i] = *a
			}
		}
		out[cat] = flat
	}
	return out
}
