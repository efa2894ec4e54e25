package v1

import (
	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/service"
)

// ReportToResponse converts a domain report to its wire form.
func ReportToResponse(report *models.SosReport) *ReportResponse {
	resp := &ReportResponse{
		ID:             report.ID,
		UrgencyScore:   report.UrgencyScore,
		FormAnswers:    report.FormAnswers,
		Status:         report.Status,
		RescueUnits:    report.RescueUnits,
		VolunteerUnits: report.VolunteerUnits,
		CreatedAt:      report.CreatedAt,
		ResolvedAt:     report.ResolvedAt,
	}
	if report.Location != nil {
		lat := report.Location.Latitude
		lng := report.Location.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}

// RankedToResponses converts ranked reports, carrying over the ephemeral
// distance annotation.
func RankedToResponses(ranked []service.RankedReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(ranked))
	for i, r := range ranked {
		resp := ReportToResponse(r.Report)
		resp.DistanceKm = r.DistanceKm
		responses[i] = resp
	}
	return responses
}

// ReportsToResponses converts a plain report list.
func ReportsToResponses(reports []*models.SosReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = ReportToResponse(r)
	}
	return responses
}

// RescuersToResponses converts the rescuer pool.
func RescuersToResponses(rescuers []*models.Rescuer) []*RescuerResponse {
	responses := make([]*RescuerResponse, len(rescuers))
	for i, r := range rescuers {
		responses[i] = &RescuerResponse{ID: r.ID, DisplayName: r.DisplayName}
	}
	return responses
}

// VolunteersToResponses converts the volunteer pool.
func VolunteersToResponses(volunteers []*models.VolunteerProfile) []*VolunteerResponse {
	responses := make([]*VolunteerResponse, len(volunteers))
	for i, v := range volunteers {
		responses[i] = &VolunteerResponse{
			ID:          v.ID,
			DisplayName: v.DisplayName,
			Skills:      v.Skills,
			Status:      v.Status,
		}
	}
	return responses
}
