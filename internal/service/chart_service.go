package service

import "physician_assessment_backend/internal/catalog"

// ChartService serves the data series behind the score visualizations.
// Rendering itself happens in the presentation layer; this only shapes the
// numbers.
type ChartService struct {
	Catalog *catalog.Catalog
}

func NewChartService(cat *catalog.Catalog) *ChartService {
	return &ChartService{Catalog: cat}
}

// BarChart is the per-category score bar series with its two reference lines.
type BarChart struct {
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
	Target   float64   `json:"target"`
	Baseline float64   `json:"baseline"`
}

// RadarChart is the category profile polygon against the flat target.
type RadarChart struct {
	Axes   []string  `json:"axes"`
	Scores []float64 `json:"scores"`
	Target []float64 `json:"target"`
}

type ChartData struct {
	Bar   BarChart   `json:"bar"`
	Radar RadarChart `json:"radar"`
}

// TimelineStage is one step of the fixed professional development timeline.
type TimelineStage struct {
	Stage    string `json:"stage"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

func (s *ChartService) ScoreCharts(categoryScores map[string]float64) ChartData {
	categories := s.Catalog.Categories()
	labels := make([]string, 0, len(categories))
	scores := make([]float64, 0, len(categories))
	target := make([]float64, 0, len(categories))
	for _, cat := range categories {
		labels = append(labels, cat.ShortName())
		scores = append(scores, categoryScores[cat.Name])
		target = append(target, improvementThreshold)
	}
	return ChartData{
		Bar: BarChart{
			Labels:   labels,
			Scores:   scores,
			Target:   improvementThreshold,
			Baseline: highPriorityThreshold,
		},
		Radar: RadarChart{
			Axes:   labels,
			Scores: scores,
			Target: target,
		},
	}
}

// Timeline returns the fixed five-stage progress display constants. These
// are not derived from session state.
func (s *ChartService) Timeline() []TimelineStage {
	return []TimelineStage{
		{Stage: "Assessment", Progress: 100, Status: "Complete"},
		{Stage: "Analysis", Progress: 100, Status: "Complete"},
		{Stage: "Action Plan", Progress: 75, Status: "In Progress"},
		{Stage: "Implementation", Progress: 25, Status: "Not Started"},
		{Stage: "Re-assessment", Progress: 0, Status: "Not Started"},
	}
}
