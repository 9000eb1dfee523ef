package eligibility

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/models"
)

type stubAssistant struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubAssistant) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestAnalyzeLiveResponse(t *testing.T) {
	stub := &stubAssistant{reply: `Here it is:
{"situation_summary":"Family lost housing","key_factors":["homeless","has_children"],"urgency_score":9,"confidence":0.9,
 "likely_eligible_programs":[{"name":"CalWORKs","category":"financial","confidence":0.8,"why_they_qualify":"low income family","how_to_apply":"county office"}]}`}
	n := &Navigator{Assistant: stub, Model: "gemini-2.5-flash", Logger: zerolog.Nop()}

	got := n.Analyze(context.Background(), "we lost our apartment", "Sacramento, CA")
	if got.Model != "gemini-2.5-flash" {
		t.Fatalf("expected live model tag, got %q", got.Model)
	}
	if got.Confidence != 0.9 {
		t.Fatalf("expected model-reported confidence, got %f", got.Confidence)
	}
	if got.Analysis.UrgencyScore != 9 || len(got.Analysis.LikelyEligiblePrograms) != 1 {
		t.Fatalf("unexpected analysis: %+v", got.Analysis)
	}
	if !strings.Contains(stub.prompts[0], "Sacramento, CA") {
		t.Fatalf("prompt should carry the location")
	}
}

func TestAnalyzeFallsBackOnAssistantError(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{err: ErrUnavailable}, Model: "gemini-2.5-flash", Logger: zerolog.Nop()}
	got := n.Analyze(context.Background(), "I'm homeless with 2 kids. Lost my job last month.", "")
	if got.Model != "basic_analysis" || got.Confidence != 0.6 {
		t.Fatalf("expected rule-based provenance, got %q %f", got.Model, got.Confidence)
	}
	factors := got.Analysis.KeyFactors
	want := map[string]bool{"housing_crisis": false, "unemployed": false, "has_children": false}
	for _, f := range factors {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Fatalf("missing factor %s in %v", f, factors)
		}
	}
	if got.Analysis.UrgencyScore != 5 {
		t.Fatalf("expected urgency 5, got %d", got.Analysis.UrgencyScore)
	}
}

func TestAnalyzeFallsBackOnGarbage(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{reply: "I cannot help with that."}, Logger: zerolog.Nop()}
	got := n.Analyze(context.Background(), "need food", "")
	if got.Model != "basic_analysis" {
		t.Fatalf("expected fallback on unextractable reply, got %q", got.Model)
	}
}

func TestActionPlanFromResourcesEmbedsBestThree(t *testing.T) {
	stub := &stubAssistant{reply: `{"urgent_actions":[
		{"action":"Visit Sacramento Food Bank","phone_number":"(916) 456-1980","address":"3333 3rd Ave","timeframe":"today"},
		{"action":"b","phone_number":"1","address":"x"},
		{"action":"c","phone_number":"2","address":"y"},
		{"action":"d","phone_number":"3","address":"z"}]}`}
	n := &Navigator{Assistant: stub, Model: "gemini-2.5-flash", Logger: zerolog.Nop()}

	resources := []models.Resource{
		{Name: "Sacramento Food Bank", Phone: "(916) 456-1980"},
		{Name: "Second"}, {Name: "Third"}, {Name: "Fourth"},
	}
	plan, tag := n.ActionPlanFromResources(context.Background(), models.Analysis{SituationSummary: "hungry"}, resources, "Sacramento, CA")
	if tag != "gemini-2.5-flash" {
		t.Fatalf("expected live tag, got %q", tag)
	}
	if len(plan.UrgentActions) != 3 {
		t.Fatalf("plan must be truncated to 3 actions, got %d", len(plan.UrgentActions))
	}
	if strings.Contains(stub.prompts[0], "Fourth") {
		t.Fatalf("prompt should embed only the best three resources")
	}
	if !strings.Contains(stub.prompts[0], "Sacramento Food Bank") {
		t.Fatalf("prompt should embed the found resources")
	}
}

func TestActionPlanFromResourcesWithoutResources(t *testing.T) {
	stub := &stubAssistant{reply: "{}"}
	n := &Navigator{Assistant: stub, Logger: zerolog.Nop()}
	plan, tag := n.ActionPlanFromResources(context.Background(), FallbackAnalysis("hungry"), nil, "")
	if tag != "simple_fallback" {
		t.Fatalf("expected fallback tag, got %q", tag)
	}
	if len(stub.prompts) != 0 {
		t.Fatalf("assistant should not be called without resources")
	}
	if len(plan.UrgentActions) == 0 {
		t.Fatalf("fallback plan must not be empty")
	}
}

func TestActionPlanEmptyActionsFallsBack(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{reply: `{"urgent_actions":[]}`}, Logger: zerolog.Nop()}
	plan, tag := n.ActionPlan(context.Background(), FallbackAnalysis("need shelter"), "Sacramento, CA")
	if tag != "simple_fallback" {
		t.Fatalf("expected fallback on empty plan, got %q", tag)
	}
	if len(plan.UrgentActions) == 0 {
		t.Fatalf("fallback plan must not be empty")
	}
}

func TestDocumentChecklistForcesID(t *testing.T) {
	reply := `["Proof of income (pay stubs)", "Bank statements", "a","b","c","d","e","f","g","h","i"]`
	n := &Navigator{Assistant: &stubAssistant{reply: reply}, Model: "gemini-2.5-flash", Logger: zerolog.Nop()}
	docs := n.DocumentChecklist(context.Background(), models.Analysis{SituationSummary: "lost my job"})
	if docs[0] != requiredIDDocument {
		t.Fatalf("ID must be forced to the front, got %q", docs[0])
	}
	if len(docs) > 10 {
		t.Fatalf("checklist must cap at 10, got %d", len(docs))
	}
}

func TestDocumentChecklistFallback(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{err: ErrUnavailable}, Logger: zerolog.Nop()}
	docs := n.DocumentChecklist(context.Background(), FallbackAnalysis("lost my job"))
	if docs[0] != requiredIDDocument || len(docs) > 8 {
		t.Fatalf("unexpected fallback checklist: %v", docs)
	}
}

func TestFollowupQuestions(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{reply: `["Do you have income?","Where do you sleep?"]`}, Logger: zerolog.Nop()}
	qs := n.FollowupQuestions(context.Background(), "need help")
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %v", qs)
	}

	down := &Navigator{Assistant: &stubAssistant{err: ErrUnavailable}, Logger: zerolog.Nop()}
	if qs := down.FollowupQuestions(context.Background(), "need help"); len(qs) != 3 {
		t.Fatalf("expected the 3 canned questions, got %v", qs)
	}
}

func TestTranslateJargonReturnsInputOnFailure(t *testing.T) {
	n := &Navigator{Assistant: &stubAssistant{err: ErrUnavailable}, Logger: zerolog.Nop()}
	in := "Categorical eligibility pursuant to 7 CFR 273.2(j)"
	if got := n.TranslateJargon(context.Background(), in); got != in {
		t.Fatalf("failure must return the input unchanged, got %q", got)
	}

	live := &Navigator{Assistant: &stubAssistant{reply: "  You qualify if you already get CalWORKs.  "}, Logger: zerolog.Nop()}
	if got := live.TranslateJargon(context.Background(), in); got != "You qualify if you already get CalWORKs." {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestNilAssistantUsesFallbacks(t *testing.T) {
	n := &Navigator{Logger: zerolog.Nop()}
	if got := n.Analyze(context.Background(), "need food", ""); got.Model != "basic_analysis" {
		t.Fatalf("expected fallback analysis, got %q", got.Model)
	}
	if _, tag := n.ActionPlan(context.Background(), models.Analysis{}, ""); tag != "simple_fallback" {
		t.Fatalf("expected fallback plan, got %q", tag)
	}
}
