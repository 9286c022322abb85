package model

import "strings"

// Question is a single weighted Likert-style item. The answer index into
// Options is the raw score (0 .. len(Options)-1).
// swagger:model Question
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Weight  float64  `json:"weight"`
}

// MaxAnswer returns the highest selectable answer value for the question.
func (q Question) MaxAnswer() int {
	return len(q.Options) - 1
}

// Category is a named ordered cluster of questions plus the fixed action
// list recommended when the category scores low.
// swagger:model Category
type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
	Actions   []string   `json:"-"`
}

// ShortName strips the parenthetical suffix, e.g.
// "Personal Connect (Do You Care About Me?)" -> "Personal Connect".
func (c Category) ShortName() string {
	if idx := strings.Index(c.Name, "("); idx >= 0 {
		return strings.TrimSpace(c.Name[:idx])
	}
	return c.Name
}

// Tier maps an overall score threshold (inclusive lower bound) to a
// qualitative label with its fixed message and icon.
type Tier struct {
	Threshold float64
	Level     string
	Message   string
	Icon      string
}
