package models

// Resource categories. Unmapped provider taxonomies fall back to CategoryGeneral.
const (
	CategoryFood       = "food"
	CategoryHousing    = "housing"
	CategoryHealthcare = "healthcare"
	CategoryEmployment = "employment"
	CategoryFinancial  = "financial"
	CategoryGeneral    = "general"
)

// Resource sources.
const (
	SourceGooglePlaces     = "google_places"
	SourceOpenStreetMap    = "openstreetmap"
	SourceVerifiedLocal    = "verified_sacramento"
	SourceVerifiedFallback = "verified_fallback"
)

// UnknownDistance is the sentinel for a resource whose distance from the
// search origin could not be computed.
const UnknownDistance = 999

// Resource is one assistance organization, normalized across providers.
// Rating and Reviews are pointers: a provider with no real rating leaves
// them absent rather than defaulting to zero.
type Resource struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Website        string   `json:"website"`
	Hours          string   `json:"hours"`
	Services       string   `json:"services"`
	Eligibility    string   `json:"eligibility"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Distance       float64  `json:"distance"`
	Rating         *float64 `json:"rating,omitempty"`
	Reviews        *int     `json:"reviews,omitempty"`
	Verified       bool     `json:"verified"`
	Source         string   `json:"source"`
	LastUpdated    string   `json:"last_updated,omitempty"`
	Transportation string   `json:"transportation,omitempty"`
}

// Analysis is the structured read of a user's situation.
type Analysis struct {
	SituationSummary       string         `json:"situation_summary"`
	KeyFactors             []string       `json:"key_factors"`
	LikelyEligiblePrograms []ProgramMatch `json:"likely_eligible_programs"`
	UrgencyScore           int            `json:"urgency_score"`
	PriorityOrder          string         `json:"priority_order,omitempty"`
}

type ProgramMatch struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	WhyTheyQualify string  `json:"why_they_qualify"`
	WhatTheyNeed   string  `json:"what_they_need,omitempty"`
	HowToApply     string  `json:"how_to_apply"`
}

type UrgentAction struct {
	Action          string `json:"action"`
	Why             string `json:"why,omitempty"`
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`
	Timeframe       string `json:"timeframe,omitempty"`
	DocumentsNeeded string `json:"documents_needed,omitempty"`
}

type ActionPlan struct {
	UrgentActions []UrgentAction `json:"urgent_actions"`
	Timeline      string         `json:"timeline,omitempty"`
	PriorityOrder string         `json:"priority_order,omitempty"`
	Encouragement string         `json:"encouragement,omitempty"`
}
