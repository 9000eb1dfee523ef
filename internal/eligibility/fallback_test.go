package eligibility

import (
	"reflect"
	"testing"
)

func TestExtractKeyFactorsScenario(t *testing.T) {
	got := ExtractKeyFactors("I'm homeless with 2 kids. Lost my job last month.")
	want := []string{"housing_crisis", "unemployed", "has_children"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractKeyFactorsDeterministic(t *testing.T) {
	text := "urgent: no food and no job"
	first := ExtractKeyFactors(text)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(ExtractKeyFactors(text), first) {
			t.Fatalf("key factor extraction is not deterministic")
		}
	}
}

func TestExtractKeyFactorsDefault(t *testing.T) {
	got := ExtractKeyFactors("hello")
	if len(got) != 1 || got[0] != "general_assistance_needed" {
		t.Fatalf("expected the general default, got %v", got)
	}
}

func TestBasicProgramMatch(t *testing.T) {
	programs := BasicProgramMatch("I'm hungry and have no shelter")
	if len(programs) != 2 {
		t.Fatalf("expected SNAP and shelter matches, got %d", len(programs))
	}
	if programs[0].Name != "SNAP Benefits" || programs[0].Category != "food" {
		t.Fatalf("unexpected first program: %+v", programs[0])
	}
	if programs[1].Name != "Emergency Shelter Services" || programs[1].Confidence != 0.8 {
		t.Fatalf("unexpected second program: %+v", programs[1])
	}
}

func TestFallbackAnalysisShape(t *testing.T) {
	a := FallbackAnalysis("I need food")
	if a.SituationSummary != "I need food" {
		t.Fatalf("summary should echo the input, got %q", a.SituationSummary)
	}
	if a.UrgencyScore != 5 {
		t.Fatalf("expected urgency 5, got %d", a.UrgencyScore)
	}
	if len(a.LikelyEligiblePrograms) != 1 || a.LikelyEligiblePrograms[0].Name != "SNAP Benefits" {
		t.Fatalf("unexpected programs: %+v", a.LikelyEligiblePrograms)
	}
}

func TestFallbackActionPlanCapsAtThree(t *testing.T) {
	a := FallbackAnalysis("homeless, hungry, urgent emergency with kids and no food or shelter")
	plan := FallbackActionPlan(a)
	if len(plan.UrgentActions) == 0 || len(plan.UrgentActions) > 3 {
		t.Fatalf("expected 1-3 actions, got %d", len(plan.UrgentActions))
	}
	for _, action := range plan.UrgentActions {
		if action.PhoneNumber != "211" {
			t.Fatalf("fallback actions should all route through 211: %+v", action)
		}
	}
}

func TestFallbackActionPlanAlwaysHasAnAction(t *testing.T) {
	plan := FallbackActionPlan(FallbackAnalysis("hello"))
	if len(plan.UrgentActions) != 1 {
		t.Fatalf("expected the universal 211 action, got %d", len(plan.UrgentActions))
	}
	if plan.UrgentActions[0].Action != "Call 211 for all resources" {
		t.Fatalf("unexpected action: %q", plan.UrgentActions[0].Action)
	}
}

func TestBasicDocumentChecklist(t *testing.T) {
	a := FallbackAnalysis("I'm homeless, lost my job, and have a kid")
	docs := BasicDocumentChecklist(a)
	if len(docs) > 8 {
		t.Fatalf("fallback checklist should cap at 8, got %d", len(docs))
	}
	if docs[0] != requiredIDDocument {
		t.Fatalf("checklist must start with government ID, got %q", docs[0])
	}
	found := false
	for _, d := range docs {
		if d == "Birth certificates for children in household" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected child documents for a family situation: %v", docs)
	}
}
