package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/models"
)

// requiredIDDocument is always present in a checklist. Nearly every program
// asks for it, and users who show up without ID get turned away.
const requiredIDDocument = "Government-issued ID (driver's license or state ID)"

// Model tags reported to clients so they can tell a live answer from a
// rule-based one.
const (
	tagBasicAnalysis  = "basic_analysis"
	tagSimpleFallback = "simple_fallback"
)

// Navigator runs each eligibility operation as call, extract, fallback: ask
// the assistant, pull JSON out of its reply, and fall back to the rule-based
// substitute on any failure along the way.
type Navigator struct {
	Assistant Assistant
	Model     string
	Logger    zerolog.Logger
}

// AnalysisResult is an analysis plus provenance.
type AnalysisResult struct {
	Analysis   models.Analysis
	Model      string
	Confidence float64
}

// Analyze reads a free-text situation into a structured Analysis.
func (n *Navigator) Analyze(ctx context.Context, situation, location string) AnalysisResult {
	fallback := AnalysisResult{Analysis: FallbackAnalysis(situation), Model: tagBasicAnalysis, Confidence: 0.6}
	if n.Assistant == nil {
		return fallback
	}

	locationContext := ""
	if location != "" {
		locationContext = "\n\nUser Location: " + location
	}
	prompt := fmt.Sprintf(`You are an expert social services eligibility navigator. Your job is to analyze a person's situation and determine what government and community assistance programs they might qualify for.

User Situation: %q%s

IMPORTANT: Focus on programs and resources available in the user's specific location. If a location is provided, prioritize local programs, services, and organizations in that area.

Provide a comprehensive analysis in JSON format with:
1. situation_summary: Brief summary of their situation
2. key_factors: List of important factors (homeless, unemployed, has_children, etc.)
3. likely_eligible_programs: Array of programs they likely qualify for, each with:
   - name: Program name
   - category: food, housing, employment, etc.
   - confidence: How likely they qualify (0-1)
   - why_they_qualify: Specific reasons
   - what_they_need: Required documents/requirements
   - how_to_apply: Next steps (include location-specific contact info if location provided)
4. urgency_score: How urgent their needs are (1-10)
5. priority_order: Recommended order to address needs

IMPORTANT: Respond with ONLY valid JSON. Start with { and end with }.`, situation, locationContext)

	text, err := n.Assistant.Generate(ctx, prompt)
	if err != nil {
		n.Logger.Debug().Err(err).Msg("situation analysis falling back to rules")
		return fallback
	}

	var parsed struct {
		models.Analysis
		Confidence float64 `json:"confidence"`
	}
	if err := ExtractJSONObject(text, &parsed); err != nil {
		n.Logger.Debug().Err(err).Msg("unusable analysis response, falling back to rules")
		return fallback
	}
	confidence := parsed.Confidence
	if confidence == 0 {
		confidence = 0.85
	}
	return AnalysisResult{Analysis: parsed.Analysis, Model: n.Model, Confidence: confidence}
}

// ActionPlanFromResources builds a plan grounded in concrete resources the
// discovery pipeline already found. At most the best three resources are
// offered to the model and the reply is hard-truncated to three actions, so a
// chatty model cannot overwhelm the user.
func (n *Navigator) ActionPlanFromResources(ctx context.Context, analysis models.Analysis, resources []models.Resource, location string) (models.ActionPlan, string) {
	if n.Assistant == nil || len(resources) == 0 {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}

	best := resources
	if len(best) > 3 {
		best = best[:3]
	}
	embedded, _ := json.MarshalIndent(best, "", "  ")

	locationContext := ""
	if location != "" {
		locationContext = "\n\nUser Location: " + location
	}
	area := location
	if area == "" {
		area = "their local area"
	}
	prompt := fmt.Sprintf(`User needs help, you found these resources. Create a DETAILED action plan.

User situation: %s%s

Actual Resources Found (these are REAL resources in the user's area):
%s

IMPORTANT: These resources are location-specific. Use the EXACT names, addresses, and phone numbers from the resources above. The user is in %s.

Create an action plan with 2-3 detailed steps using THESE EXACT resources.

Return this JSON format:
{
  "urgent_actions": [
    {
      "action": "What to do with this specific resource (use exact resource name)",
      "why": "Why this resource helps their situation",
      "phone_number": "exact phone from resource above",
      "address": "exact address from resource above",
      "timeframe": "When to do this (today/this week)"
    }
  ]
}

RULES:
- Use ACTUAL resource names, phones, addresses from the resources list above
- Include context (why it helps)
- Add timeframe for each action
- Be specific to their situation
- 2-3 steps max
- Prioritize resources with transportation assistance or shorter distances
- All resources must be from the list above - do not make up resources

Return JSON only.`, summaryOrDefault(analysis), locationContext, embedded, area)

	text, err := n.Assistant.Generate(ctx, prompt)
	if err != nil {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}
	var plan models.ActionPlan
	if err := ExtractJSONObject(text, &plan); err != nil || len(plan.UrgentActions) == 0 {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}
	if len(plan.UrgentActions) > 3 {
		plan.UrgentActions = plan.UrgentActions[:3]
	}
	return plan, n.Model
}

// ActionPlan builds a location-specific plan from the analysis alone, for
// when discovery produced nothing to ground on.
func (n *Navigator) ActionPlan(ctx context.Context, analysis models.Analysis, location string) (models.ActionPlan, string) {
	if n.Assistant == nil {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}

	userLocation := location
	if userLocation == "" {
		userLocation = "Sacramento, CA"
	}
	embedded, _ := json.MarshalIndent(analysis, "", "  ")
	prompt := fmt.Sprintf(`Based on this eligibility analysis, create a COMPREHENSIVE action plan that helps someone take real steps.

Analysis:
%s

User Location: %[2]s

CRITICAL: The user is located in %[2]s. You MUST provide location-specific resources, addresses, phone numbers, and organizations that are actually in or near %[2]s. Do NOT use generic examples.

Return JSON with:
{
  "urgent_actions": [
    {
      "action": "Specific, actionable step with location-specific details (what to do)",
      "why": "Why this matters for them",
      "phone_number": "actual phone number for the %[2]s area",
      "address": "specific address in %[2]s",
      "timeframe": "When to do this (today, this week, this month)",
      "documents_needed": "What they need to bring/prepare"
    }
  ],
  "timeline": "Overall expected timeline",
  "priority_order": "What to do first, second, third",
  "encouragement": "A supportive message to motivate them"
}

RULES:
- Be specific and actionable
- Include real phone numbers and addresses for %[2]s when possible
- Provide context (why each step matters)
- Make it encouraging, not overwhelming
- Max 5 actions total

Respond with ONLY valid JSON.`, embedded, userLocation)

	text, err := n.Assistant.Generate(ctx, prompt)
	if err != nil {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}
	var plan models.ActionPlan
	if err := ExtractJSONObject(text, &plan); err != nil || len(plan.UrgentActions) == 0 {
		return FallbackActionPlan(analysis), tagSimpleFallback
	}
	if len(plan.UrgentActions) > 3 {
		plan.UrgentActions = plan.UrgentActions[:3]
	}
	return plan, n.Model
}

// DocumentChecklist lists the documents the user should gather, at most ten,
// always starting with government ID.
func (n *Navigator) DocumentChecklist(ctx context.Context, analysis models.Analysis) []string {
	if n.Assistant == nil {
		return BasicDocumentChecklist(analysis)
	}

	programs := make([]string, 0, len(analysis.LikelyEligiblePrograms))
	for _, p := range analysis.LikelyEligiblePrograms {
		programs = append(programs, p.Name)
	}
	if len(programs) > 5 {
		programs = programs[:5]
	}
	programList := strings.Join(programs, ", ")
	if programList == "" {
		programList = "General assistance"
	}
	factors := analysis.KeyFactors
	if len(factors) > 5 {
		factors = factors[:5]
	}

	prompt := fmt.Sprintf(`Based on this person's situation, create a personalized checklist of documents they will need to apply for assistance programs.

Situation: %s
Key factors: %s
Eligible programs: %s

Generate a SPECIFIC, ACTIONABLE document checklist. Only include documents that are actually needed for their situation.

Common documents include (but only list relevant ones):
- Government-issued ID (driver's license, state ID, passport)
- Social Security card or proof of SSN
- Proof of income (pay stubs, tax returns, letter from employer)
- Proof of expenses (rent receipts, utility bills, medical bills)
- Proof of residence (lease, utility bill, mail with address)
- Birth certificates (for children in household)
- Proof of citizenship/immigration status
- Medical records (if applying for health-related assistance)
- Bank statements
- Proof of unemployment (if applicable)

Return as JSON array of document names:
["Document 1", "Document 2", "Document 3"]

Be specific and personalized to their situation. Return ONLY the JSON array.`, analysis.SituationSummary, strings.Join(factors, ", "), programList)

	text, err := n.Assistant.Generate(ctx, prompt)
	if err != nil {
		return BasicDocumentChecklist(analysis)
	}
	var docs []string
	if err := ExtractJSONArray(text, &docs); err != nil || len(docs) == 0 {
		return BasicDocumentChecklist(analysis)
	}
	if !containsString(docs, requiredIDDocument) {
		docs = append([]string{requiredIDDocument}, docs...)
	}
	if len(docs) > 10 {
		docs = docs[:10]
	}
	return docs
}

// FollowupQuestions suggests probes that would sharpen a vague situation.
func (n *Navigator) FollowupQuestions(ctx context.Context, situation string) []string {
	if n.Assistant == nil {
		return FallbackFollowupQuestions()
	}

	prompt := fmt.Sprintf(`User's current situation: %q

Generate 3-5 follow-up questions that would help you better understand their situation and find appropriate resources.

Focus on questions about:
- Housing stability
- Employment status
- Family situation
- Income
- Specific urgent needs

Return as JSON array of questions: ["question 1", "question 2", etc.]

Respond with ONLY valid JSON array.`, situation)

	text, err := n.Assistant.Generate(ctx, prompt)
	if err != nil {
		return FallbackFollowupQuestions()
	}
	var questions []string
	if err := ExtractJSONArray(text, &questions); err != nil || len(questions) == 0 {
		return FallbackFollowupQuestions()
	}
	return questions
}

// TranslateJargon rewrites a government eligibility requirement in plain
// language. Any failure returns the input unchanged, which is always safe.
func (n *Navigator) TranslateJargon(ctx context.Context, text string) string {
	if n.Assistant == nil {
		return text
	}

	prompt := fmt.Sprintf(`Translate this government eligibility requirement into simple, clear language that anyone can understand:

Original: %q

Provide a translation that:
1. Explains what it actually means
2. Gives examples
3. Tells them if they likely qualify

Respond with ONLY the translated text, no explanations.`, text)

	out, err := n.Assistant.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		return text
	}
	return strings.TrimSpace(out)
}

func summaryOrDefault(analysis models.Analysis) string {
	if analysis.SituationSummary != "" {
		return analysis.SituationSummary
	}
	return "Need assistance"
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
