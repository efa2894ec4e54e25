package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/floodguard/sos_dispatch_system/internal/models"
)

const unknownVolunteerName = "Unknown Volunteer"

// ListRescuers returns the dispatchable rescuer pool.
func (s *sosService) ListRescuers(ctx context.Context) ([]*models.Rescuer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "ListRescuers",
	})
	log.Info("Listing rescuers")

	users, err := s.personnel.ListRescuers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list rescuers from registry")
		return nil, storeFailure(fmt.Errorf("service: could not list rescuers: %w", err))
	}

	rescuers := make([]*models.Rescuer, 0, len(users))
	for _, u := range users {
		rescuers = append(rescuers, &models.Rescuer{
			ID:          u.ID,
			DisplayName: u.DisplayName(),
		})
	}

	log.WithField("count", len(rescuers)).Info("Rescuers listed")
	return rescuers, nil
}

// ListVolunteers returns the volunteer pool with display names resolved
// through the users collection. A volunteer whose user record is missing is
// still listed, under a placeholder name, so an assigned id never disappears
// from the dispatch view.
func (s *sosService) ListVolunteers(ctx context.Context) ([]*models.VolunteerProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "ListVolunteers",
	})
	log.Info("Listing volunteers")

	volunteers, err := s.personnel.ListVolunteers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list volunteers from registry")
		return nil, storeFailure(fmt.Errorf("service: could not list volunteers: %w", err))
	}

	users, err := s.personnel.ListUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list users from registry")
		return nil, storeFailure(fmt.Errorf("service: could not list users: %w", err))
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID.String()] = u.DisplayName()
	}

	profiles := make([]*models.VolunteerProfile, 0, len(volunteers))
	for _, v := range volunteers {
		name, ok := names[v.UserID.String()]
		if !ok {
			name = unknownVolunteerName
		}
		profiles = append(profiles, &models.VolunteerProfile{
			ID:          v.ID,
			DisplayName: name,
			Skills:      v.Skills,
			Status:      v.Status,
		})
	}

	log.WithField("count", len(profiles)).Info("Volunteers listed")
	return profiles, nil
}
