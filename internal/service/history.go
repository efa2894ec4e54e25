package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/models"
)

// HistoryView selects a partition of the report set for audit display.
type HistoryView string

const (
	HistoryActive   HistoryView = "active"
	HistoryResolved HistoryView = "resolved"
	HistoryAll      HistoryView = "all"
)

// History returns the requested partition of all reports. The view is
// recomputed from the store on every call; unlike the personnel pools it is
// never cached, so it always reflects the latest committed state.
// Active reports come back in urgency order, resolved and combined views
// newest-first.
func (s *sosService) History(ctx context.Context, view HistoryView) ([]*models.SosReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "History",
		"view":    view,
	})
	log.Info("Building report history view")

	if view != HistoryActive && view != HistoryResolved && view != HistoryAll {
		return nil, fmt.Errorf("service: unknown history view %q", view)
	}

	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, storeFailure(fmt.Errorf("service: could not list reports: %w", err))
	}

	var out []*models.SosReport
	switch view {
	case HistoryActive:
		out = filterReports(reports, func(r *models.SosReport) bool { return r.Status != models.StatusResolved })
		sort.SliceStable(out, func(i, j int) bool { return out[i].UrgencyScore > out[j].UrgencyScore })
	case HistoryResolved:
		out = filterReports(reports, func(r *models.SosReport) bool { return r.Status == models.StatusResolved })
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case HistoryAll:
		out = filterReports(reports, func(r *models.SosReport) bool { return true })
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}

	log.WithField("count", len(out)).Info("Report history view built")
	return out, nil
}

func filterReports(reports []*models.SosReport, keep func(*models.SosReport) bool) []*models.SosReport {
	out := make([]*models.SosReport, 0, len(reports))
	for _, r := range reports {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
