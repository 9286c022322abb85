package model

// QuestionScore is the per-question breakdown inside a category detail.
type QuestionScore struct {
	Question      string  `json:"question"`
	Score         int     `json:"score"`
	MaxScore      int     `json:"max_score"`
	WeightedScore float64 `json:"weighted_score"`
}

// CategoryScoreDetail carries the weighted sums behind a category's
// normalized score. NormalizedScore keeps full precision; the rounded
// display value lives in the category score map.
type CategoryScoreDetail struct {
	RawScore        float64         `json:"raw_score"`
	MaxPossible     float64         `json:"max_possible"`
	NormalizedScore float64         `json:"normalized_score"`
	QuestionDetails []QuestionScore `json:"question_details"`
}

// ScoreReport is the full derived result of one scoring pass.
// swagger:model ScoreReport
type ScoreReport struct {
	CategoryScores map[string]float64             `json:"categoryScores"`
	OverallScore   float64                        `json:"overallScore"`
	Details        map[string]CategoryScoreDetail `json:"details"`
}

// Recommendation is either a summary-level entry (Level/Message/Icon) or a
// category-level entry (Category/Score/Priority/Actions), mirroring the
// shape consumed by the presentation layer.
// swagger:model Recommendation
type Recommendation struct {
	Level    string   `json:"level,omitempty"`
	Message  string   `json:"message,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Category string   `json:"category,omitempty"`
	Score    float64  `json:"score,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Actions  []string `json:"actions,omitempty"`
}
