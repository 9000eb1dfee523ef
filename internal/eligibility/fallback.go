package eligibility

import (
	"strings"

	"github.com/aidlink/backend/internal/models"
)

// Rule-based substitutes for every assistant operation. They are deliberately
// simple and deterministic: the same input always produces the same output,
// so a user gets a sane answer even when the model is down or unconfigured.

// ExtractKeyFactors pulls coarse situation markers out of free text.
func ExtractKeyFactors(text string) []string {
	var factors []string
	lower := strings.ToLower(text)

	if strings.Contains(lower, "home") || strings.Contains(lower, "shelter") {
		factors = append(factors, "housing_crisis")
	}
	if strings.Contains(lower, "job") || strings.Contains(lower, "unemployed") || strings.Contains(lower, "laid off") {
		factors = append(factors, "unemployed")
	}
	if strings.Contains(lower, "child") || strings.Contains(lower, "kid") {
		factors = append(factors, "has_children")
	}
	if strings.Contains(lower, "food") || strings.Contains(lower, "hungry") {
		factors = append(factors, "food_insecure")
	}
	if strings.Contains(lower, "urgent") || strings.Contains(lower, "emergency") {
		factors = append(factors, "urgent_need")
	}

	if len(factors) == 0 {
		return []string{"general_assistance_needed"}
	}
	return factors
}

// BasicProgramMatch maps obvious keywords to the two programs with the widest
// eligibility nets.
func BasicProgramMatch(text string) []models.ProgramMatch {
	var programs []models.ProgramMatch
	lower := strings.ToLower(text)

	if strings.Contains(lower, "food") || strings.Contains(lower, "hungry") {
		programs = append(programs, models.ProgramMatch{
			Name:           "SNAP Benefits",
			Category:       models.CategoryFood,
			Confidence:     0.7,
			WhyTheyQualify: "Food assistance available",
			HowToApply:     "Contact local social services office",
		})
	}
	if strings.Contains(lower, "home") || strings.Contains(lower, "shelter") {
		programs = append(programs, models.ProgramMatch{
			Name:           "Emergency Shelter Services",
			Category:       models.CategoryHousing,
			Confidence:     0.8,
			WhyTheyQualify: "Housing insecurity",
			HowToApply:     "Call 211 or local shelter",
		})
	}
	return programs
}

// FallbackAnalysis is the no-model situation analysis: the situation text
// itself as the summary, keyword factors, basic program matches, middling
// urgency.
func FallbackAnalysis(situation string) models.Analysis {
	return models.Analysis{
		SituationSummary:       situation,
		KeyFactors:             ExtractKeyFactors(situation),
		LikelyEligiblePrograms: BasicProgramMatch(situation),
		UrgencyScore:           5,
	}
}

// FallbackActionPlan turns key factors into at most three 211 referrals. 211
// is the universal entry point, so the plan always includes it.
func FallbackActionPlan(analysis models.Analysis) models.ActionPlan {
	var actions []models.UrgentAction

	for _, f := range analysis.KeyFactors {
		lower := strings.ToLower(f)
		switch {
		case strings.Contains(lower, "food") || strings.Contains(lower, "hungry") || strings.Contains(lower, "hunger"):
			actions = append(actions, models.UrgentAction{
				Action:      "Call 211 for immediate food assistance",
				PhoneNumber: "211",
				Address:     "Call 211 or visit 211.org",
			})
		case strings.Contains(lower, "home") || strings.Contains(lower, "shelter") || strings.Contains(lower, "housing") || strings.Contains(lower, "homeless"):
			actions = append(actions, models.UrgentAction{
				Action:      "Call 211 for emergency housing assistance",
				PhoneNumber: "211",
				Address:     "Call 211 or visit 211.org",
			})
		}
	}

	if len(actions) < 3 {
		actions = append(actions, models.UrgentAction{
			Action:      "Call 211 for all resources",
			PhoneNumber: "211",
			Address:     "Available 24/7 - dial 2-1-1",
		})
	}
	if len(actions) > 3 {
		actions = actions[:3]
	}
	return models.ActionPlan{
		UrgentActions: actions,
		Timeline:      "Contact 211 today for immediate assistance",
	}
}

// BasicDocumentChecklist is the no-model checklist: ID first, then whatever
// the situation summary hints at, capped at eight items.
func BasicDocumentChecklist(analysis models.Analysis) []string {
	docs := []string{requiredIDDocument}
	lower := strings.ToLower(analysis.SituationSummary)

	if strings.Contains(lower, "income") || strings.Contains(lower, "job") || strings.Contains(lower, "unemployed") {
		docs = append(docs, "Proof of income (pay stubs, tax returns, or unemployment letter)")
	}
	if strings.Contains(lower, "housing") || strings.Contains(lower, "rent") || strings.Contains(lower, "homeless") {
		docs = append(docs, "Proof of residence (lease or utility bill) or statement of homelessness")
	}
	if strings.Contains(lower, "child") || strings.Contains(lower, "kid") || strings.Contains(lower, "family") {
		docs = append(docs, "Birth certificates for children in household")
		docs = append(docs, "Social Security cards for all household members")
	}
	docs = append(docs, "Bank statements (last 2-3 months)")
	docs = append(docs, "Social Security card or proof of SSN")

	if len(docs) > 8 {
		docs = docs[:8]
	}
	return docs
}

// FallbackFollowupQuestions are the canned probes used when the model cannot
// suggest better ones.
func FallbackFollowupQuestions() []string {
	return []string{
		"Are you currently working?",
		"Do you have housing right now?",
		"Are there children in your household?",
	}
}
