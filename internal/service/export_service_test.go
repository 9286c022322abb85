package service

import (
	"bytes"
	"encoding/json"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportService(cat *catalog.Catalog) *ExportService {
	scoring := NewScoringService(cat)
	return NewExportService(scoring, NewRecommendationService(cat), cat)
}

func submittedSession(cat *catalog.Catalog, value int) *model.AssessmentSession {
	now := time.Now()
	sess := &model.AssessmentSession{
		ID:         "test-session",
		Responses:  uniformResponses(cat, value),
		Submitted:  true,
		CreatedAt:  now,
		LastActive: now,
	}
	return sess
}

func TestBuildJSONRoundTrip(t *testing.T) {
	cat := catalog.Default()
	s := newExportService(cat)

	// Mixed answers so the scores carry fractional parts.
	sess := submittedSession(cat, 1)
	for _, c := range cat.Categories() {
		v := 3
		sess.Responses[c.Name][0] = &v
	}

	wantScores, wantOverall, _, err := s.Scoring.ComputeScores(sess.Responses)
	require.NoError(t, err)

	payload, err := s.BuildJSON(sess)
	require.NoError(t, err)

	var decoded ResultExport
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// Decoding reproduces the computed scores bit-identical.
	assert.Equal(t, wantOverall, decoded.OverallScore)
	assert.Equal(t, wantScores, decoded.CategoryScores)

	_, err = time.Parse(time.RFC3339, decoded.Timestamp)
	assert.NoError(t, err)

	for _, c := range cat.Categories() {
		answers, ok := decoded.Responses[c.Name]
		require.True(t, ok, "category %q", c.Name)
		require.Len(t, answers, len(c.Questions))
		assert.Equal(t, 3, answers[0])

		detail, ok := decoded.CategoryDetails[c.Name]
		require.True(t, ok, "category %q", c.Name)
		assert.Len(t, detail.QuestionDetails, len(c.Questions))
	}

	// Pretty-printed with two-space indent.
	assert.True(t, bytes.HasPrefix(payload, []byte("{\n  \"timestamp\"")))
}

func TestBuildJSONRequiresSubmission(t *testing.T) {
	cat := catalog.Default()
	s := newExportService(cat)

	sess := submittedSession(cat, 2)
	sess.Submitted = false

	_, err := s.BuildJSON(sess)
	assert.ErrorIs(t, err, util.ErrNotSubmitted)
}

func TestBuildWorkbookSheets(t *testing.T) {
	cat := catalog.Default()
	s := newExportService(cat)

	buf, err := s.BuildWorkbook(submittedSession(cat, 0))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Summary", "Detailed Scores", "Action Plan", "Overview"},
		f.GetSheetList())

	// Summary: header plus one row per category.
	header, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Category", header)
	firstCategory, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, cat.Categories()[0].Name, firstCategory)

	// Detailed Scores covers every question.
	rows, err := f.GetRows("Detailed Scores")
	require.NoError(t, err)
	assert.Len(t, rows, cat.TotalQuestions()+1)

	// All-zero answers put every category's action list in the plan.
	planRows, err := f.GetRows("Action Plan")
	require.NoError(t, err)
	assert.Len(t, planRows, cat.TotalQuestions()+1)
	priority, err := f.GetCellValue("Action Plan", "B2")
	require.NoError(t, err)
	assert.Equal(t, "High", priority)

	// Overview totals.
	total, err := f.GetCellValue("Overview", "B4")
	require.NoError(t, err)
	assert.Equal(t, "20", total)
	overall, err := f.GetCellValue("Overview", "B2")
	require.NoError(t, err)
	assert.Equal(t, "0/5.0", overall)
}

func TestBuildWorkbookNoActionsNeeded(t *testing.T) {
	cat := catalog.Default()
	s := newExportService(cat)

	buf, err := s.BuildWorkbook(submittedSession(cat, 4))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	note, err := f.GetCellValue("Action Plan", "A2")
	require.NoError(t, err)
	assert.Equal(t, "No specific recommendations needed", note)
}

func TestBuildWorkbookRequiresSubmission(t *testing.T) {
	cat := catalog.Default()
	s := newExportService(cat)

	sess := submittedSession(cat, 2)
	sess.Submitted = false

	_, err := s.BuildWorkbook(sess)
	assert.ErrorIs(t, err, util.ErrNotSubmitted)
}
