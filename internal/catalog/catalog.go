// Package catalog holds the compiled-in assessment data: the four question
// categories with their weights and option labels, the per-category action
// lists, and the overall-score tier table. The catalog is read-only and
// process-wide constant so scoring stays deterministic.
package catalog

import "physician_assessment_backend/internal/model"

type Catalog struct {
	categories []model.Category
	byName     map[string]int
}

func New(categories []model.Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byName:     make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		c.byName[cat.Name] = i
	}
	return c
}

// Categories returns the categories in their fixed iteration order.
func (c *Catalog) Categories() []model.Category {
	return c.categories
}

func (c *Catalog) Category(name string) (model.Category, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return model.Category{}, false
	}
	return c.categories[idx], true
}

func (c *Catalog) TotalQuestions() int {
	total := 0
	for _, cat := range c.categories {
		total += len(cat.Questions)
	}
	return total
}

// Tiers returns the overall-score tier table ordered high to low; the first
// entry whose threshold the score meets wins. The final threshold of 0
// guarantees a match for any valid score.
func (c *Catalog) Tiers() []model.Tier {
	return tiers
}

var tiers = []model.Tier{
	{
		Threshold: 4.5,
		Level:     "Excellent",
		Message:   "You demonstrate exceptional patient-centered care across all dimensions. Continue your excellent work!",
		Icon:      "🎯",
	},
	{
		Threshold: 4.0,
		Level:     "Very Good",
		Message:   "You show strong patient care skills with minor areas for enhancement.",
		Icon:      "👍",
	},
	{
		Threshold: 3.5,
		Level:     "Good",
		Message:   "You have good patient care skills. Focus on the areas below to reach excellence.",
		Icon:      "📈",
	},
	{
		Threshold: 3.0,
		Level:     "Fair",
		Message:   "You have a foundation to build on. Improvement needed in several areas.",
		Icon:      "⚠️",
	},
	{
		Threshold: 0,
		Level:     "Needs Improvement",
		Message:   "Your patient care approach needs substantial development. Prioritize the recommendations below.",
		Icon:      "🚨",
	},
}

// Default returns the standard physician self-assessment catalog, based on
// "5 Questions Patients Have but Never Ask" (JAMA Neurology, 2018).
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = New([]model.Category{
	{
		Name: "Personal Connect (Do You Care About Me?)",
		Questions: []model.Question{
			{
				Text:    "How often do you call patients by name and make personal contact?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.2,
			},
			{
				Text:    "Do you sit down with patients (not standing) during consultations?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.0,
			},
			{
				Text:    "How frequently do you telephone patients to check on them after procedures or missed appointments?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.1,
			},
			{
				Text:    "Do you show empathy and listen actively to patients' stories?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.3,
			},
			{
				Text:    "How often do you discuss patients' personal life, hobbies, likes, and dislikes?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.0,
			},
		},
		Actions: []string{
			"Make it a habit to sit down during all patient consultations",
			"Call patients by name and ask about their personal interests at each visit",
			"Set calendar reminders to follow up with patients after procedures",
			"Practice active listening - allow 2-3 seconds of silence after patients speak",
			"Schedule 5-10 extra minutes for new patient appointments",
		},
	},
	{
		Name: "Trust of Your Trade (Are You the Best?)",
		Questions: []model.Question{
			{
				Text:    "How regularly do you attend lectures and national meetings?",
				Options: []string{"Never", "Once a year", "2-3 times/year", "Quarterly", "Monthly or more"},
				Weight:  1.0,
			},
			{
				Text:    "How often do you read the latest research in your area of practice?",
				Options: []string{"Never", "Rarely", "Monthly", "Weekly", "Daily"},
				Weight:  1.2,
			},
			{
				Text:    "Do you pursue continuing medical education and skill development?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Consistently"},
				Weight:  1.1,
			},
			{
				Text:    "How confident are you in acknowledging when you need refreshers in certain areas?",
				Options: []string{"Not confident", "Slightly confident", "Moderately confident", "Very confident", "Extremely confident"},
				Weight:  1.0,
			},
			{
				Text:    "Do you strive for excellence beyond just avoiding malpractice?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.3,
			},
		},
		Actions: []string{
			"Subscribe to 2-3 key journals in your specialty",
			"Register for at least 2 conferences per year with action plan implementation",
			"Join or start a journal club with colleagues",
			"Dedicate 30 minutes weekly to reading latest research (Friday afternoons work well)",
			"Complete 25+ CME credits annually focused on clinical practice gaps",
		},
	},
	{
		Name: "Social Trust (Can I Trust You?)",
		Questions: []model.Question{
			{
				Text:    "How much time do you invest in building trust with patients from different backgrounds?",
				Options: []string{"No effort", "Minimal effort", "Moderate effort", "Significant effort", "Maximum effort"},
				Weight:  1.2,
			},
			{
				Text:    "Do you create a safe environment for patients to share sensitive issues (substance use, mental health)?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.3,
			},
			{
				Text:    "How reliable are you in following up on patient concerns?",
				Options: []string{"Unreliable", "Somewhat reliable", "Moderately reliable", "Very reliable", "Completely reliable"},
				Weight:  1.1,
			},
			{
				Text:    "Do you demonstrate care about patients' wellbeing in your actions?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.2,
			},
			{
				Text:    "How well do you encourage patients to share when they're feeling sad, depressed, or lonely?",
				Options: []string{"Not at all", "Poorly", "Adequately", "Well", "Excellently"},
				Weight:  1.0,
			},
		},
		Actions: []string{
			"Use the BATHE technique (Background, Affect, Trouble, Handling, Empathy) for sensitive topics",
			"Start appointments with 'What's most important for us to discuss today?'",
			"Create a checklist for following up on every patient concern",
			"Practice reflective statements: 'What I hear you saying is...'",
			"Document patient preferences and follow up on them at next visit",
		},
	},
	{
		Name: "Treating Style (Are You Treating Me Differently?)",
		Questions: []model.Question{
			{
				Text:    "How conscious are you of health disparities affecting different populations?",
				Options: []string{"Not conscious", "Slightly conscious", "Moderately conscious", "Very conscious", "Extremely conscious"},
				Weight:  1.1,
			},
			{
				Text:    "Do you examine your own biases regarding race, ethnicity, sex, or socioeconomic status?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Regularly"},
				Weight:  1.3,
			},
			{
				Text:    "How carefully do you ensure equitable treatment across all patient demographics?",
				Options: []string{"Not carefully", "Somewhat carefully", "Moderately carefully", "Very carefully", "Extremely carefully"},
				Weight:  1.2,
			},
			{
				Text:    "Do you stay informed about social determinants of health?",
				Options: []string{"Not informed", "Slightly informed", "Moderately informed", "Well informed", "Expert level"},
				Weight:  1.0,
			},
			{
				Text:    "How often do you reflect on whether you might be perceived as judging patients?",
				Options: []string{"Never", "Rarely", "Sometimes", "Often", "Always"},
				Weight:  1.1,
			},
		},
		Actions: []string{
			"Complete implicit bias training annually",
			"Review practice data annually for demographic treatment patterns",
			"Use the SAFETIPS mnemonic (Sex, Age, Faith, Ethnicity, Trauma, Identity, Personality, Status) in patient assessments",
			"Partner with community organizations to understand local health determinants",
			"Regularly audit your own clinical decisions for consistency across patient groups",
		},
	},
})
