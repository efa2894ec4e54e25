package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/geo"
	"github.com/floodguard/sos_dispatch_system/internal/models"
)

// RankPolicy selects the triage ordering for open reports.
type RankPolicy string

const (
	// RankByUrgency orders active reports by urgency score, highest first.
	RankByUrgency RankPolicy = "urgency"
	// RankByNearest orders active reports by distance from the operator,
	// closest first.
	RankByNearest RankPolicy = "nearest"
)

// RankedReport is a report with an ephemeral distance annotation. DistanceKm
// is set only under the nearest policy and only for reports with a location;
// it is never persisted.
type RankedReport struct {
	Report     *models.SosReport `json:"report"`
	DistanceKm *float64          `json:"distance_km,omitempty"`
}

// TriageList is the ranking output: active reports in triage order and
// resolved reports newest-first for audit display.
type TriageList struct {
	Active   []RankedReport `json:"active"`
	Resolved []RankedReport `json:"resolved"`
}

// RankReports derives a fresh total order over the current report set.
// When operator is nil the configured fallback coordinate is used, matching
// the dashboard behavior when geolocation is denied. The ranking is
// recomputed on every call and never mutates stored reports.
func (s *sosService) RankReports(ctx context.Context, policy RankPolicy, operator *models.Location) (*TriageList, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "RankReports",
		"policy":  policy,
	})
	log.Info("Ranking SOS reports")

	if policy != RankByUrgency && policy != RankByNearest {
		return nil, fmt.Errorf("service: unknown ranking policy %q", policy)
	}

	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, storeFailure(fmt.Errorf("service: could not list reports: %w", err))
	}

	if operator == nil {
		operator = &models.Location{
			Latitude:  s.cfg.DefaultLatitude,
			Longitude: s.cfg.DefaultLongitude,
		}
	}

	list := rankReports(reports, policy, *operator)
	log.WithFields(logrus.Fields{
		"active":   len(list.Active),
		"resolved": len(list.Resolved),
	}).Info("SOS reports ranked")
	return list, nil
}

// rankReports is the pure ranking core. Resolved reports are annotated with
// distance under the nearest policy but stay ordered by creation time; only
// active reports are ordered by distance.
func rankReports(reports []*models.SosReport, policy RankPolicy, operator models.Location) *TriageList {
	active := make([]RankedReport, 0, len(reports))
	resolved := make([]RankedReport, 0)

	for _, report := range reports {
		ranked := RankedReport{Report: report}
		if policy == RankByNearest && report.Location != nil {
			d := geo.DistanceKm(operator.Latitude, operator.Longitude,
				report.Location.Latitude, report.Location.Longitude)
			ranked.DistanceKm = &d
		}
		if report.Status == models.StatusResolved {
			resolved = append(resolved, ranked)
		} else {
			active = append(active, ranked)
		}
	}

	switch policy {
	case RankByUrgency:
		sort.SliceStable(active, func(i, j int) bool {
			return active[i].Report.UrgencyScore > active[j].Report.UrgencyScore
		})
	case RankByNearest:
		// Reports without a location sort last instead of failing the query.
		sort.SliceStable(active, func(i, j int) bool {
			di, dj := active[i].DistanceKm, active[j].DistanceKm
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Report.CreatedAt.After(resolved[j].Report.CreatedAt)
	})

	return &TriageList{Active: active, Resolved: resolved}
}
