package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest is the intake payload for a new SOS report.
// @Description intake payload for a new SOS report
type CreateReportRequest struct {
	Latitude     float64        `json:"latitude" validate:"required,latitude"`
	Longitude    float64        `json:"longitude" validate:"required,longitude"`
	UrgencyScore float64        `json:"urgency_score" validate:"gte=0"`
	FormAnswers  map[string]any `json:"form_answers"`
}

// AssignUnitsRequest lists the unit ids to dispatch to a report.
// @Description unit ids to dispatch to a report
type AssignUnitsRequest struct {
	RescuerIDs   []string `json:"rescuer_ids"`
	VolunteerIDs []string `json:"volunteer_ids"`
}

// ReportResponse is the wire form of an SOS report. DistanceKm is present
// only on nearest-first triage listings.
// @Description SOS report
type ReportResponse struct {
	ID             uuid.UUID      `json:"id"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	UrgencyScore   float64        `json:"urgency_score"`
	FormAnswers    map[string]any `json:"form_answers"`
	Status         string         `json:"status"`
	RescueUnits    []string       `json:"rescue_units"`
	VolunteerUnits []string       `json:"volunteer_units"`
	CreatedAt      time.Time      `json:"created_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
	DistanceKm     *float64       `json:"distance_km,omitempty"`
}

// TriageResponse is the ranked listing of reports.
// @Description ranked listing of SOS reports
type TriageResponse struct {
	Policy   string            `json:"policy"`
	Active   []*ReportResponse `json:"active"`
	Resolved []*ReportResponse `json:"resolved"`
}

// DispatchResponse confirms an assignment.
// @Description dispatch confirmation
type DispatchResponse struct {
	Report          *ReportResponse `json:"report"`
	NewlyAssigned   int             `json:"newly_assigned"`
	AlreadyAssigned int             `json:"already_assigned"`
	Message         string          `json:"message"`
}

// RescuerResponse is a dispatchable rescuer.
// @Description dispatchable rescuer
type RescuerResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

// VolunteerResponse is a dispatchable volunteer with resolved display name.
// @Description dispatchable volunteer
type VolunteerResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Skills      []string  `json:"skills"`
	Status      string    `json:"status"`
}
