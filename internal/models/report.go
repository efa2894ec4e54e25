package models

import (
	"time"

	"github.com/google/uuid"
)

// Report lifecycle statuses. Status is derived by the dispatch and resolution
// operations only; it is never accepted from a client.
const (
	StatusPending    = "pending"
	StatusResponding = "responding"
	StatusResolved   = "resolved"
)

// Location is a WGS84 coordinate pair. Reports coming out of the intake
// pipeline normally carry one, but the store does not enforce it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SosReport is an emergency report awaiting triage and dispatch.
// Location, UrgencyScore, FormAnswers and CreatedAt are set at intake and
// immutable afterwards. RescueUnits and VolunteerUnits are sets of unit ids
// (no duplicates, order irrelevant).
type SosReport struct {
	ID             uuid.UUID      `json:"id"`
	Location       *Location      `json:"location,omitempty"`
	UrgencyScore   float64        `json:"urgency_score"`
	FormAnswers    map[string]any `json:"form_answers"`
	Status         string         `json:"status"`
	RescueUnits    []string       `json:"rescue_units"`
	VolunteerUnits []string       `json:"volunteer_units"`
	CreatedAt      time.Time      `json:"created_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
}

// HasUnits reports whether any rescuer or volunteer is currently assigned.
func (r *SosReport) HasUnits() bool {
	return len(r.RescueUnits) > 0 || len(r.VolunteerUnits) > 0
}
