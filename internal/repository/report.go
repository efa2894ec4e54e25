package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `
	id,
	latitude,
	longitude,
	urgency_score,
	form_answers,
	status,
	rescue_units,
	volunteer_units,
	created_at,
	resolved_at`

// Create inserts a new report row.
func (r *ReportRepository) Create(ctx context.Context, report *models.SosReport) error {
	query := `
		INSERT INTO sos_reports (latitude, longitude, urgency_score, form_answers, status, rescue_units, volunteer_units, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;
	`
	var lat, lng *float64
	if report.Location != nil {
		lat = &report.Location.Latitude
		lng = &report.Location.Longitude
	}
	err := r.db.QueryRow(ctx, query,
		lat,
		lng,
		report.UrgencyScore,
		report.FormAnswers,
		report.Status,
		report.RescueUnits,
		report.VolunteerUnits,
		report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return fmt.Errorf("failed to create sos report: %w", err)
	}
	return nil
}

// GetByID returns a single report by its UUID.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SosReport, error) {
	query := `SELECT ` + reportColumns + ` FROM sos_reports WHERE id = $1;`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos report %s: %w", id, service.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get sos report by id: %w", err)
	}
	return report, nil
}

// ListAll returns the full report set, oldest first. Triage ordering is
// derived per query by the service, never persisted.
func (r *ReportRepository) ListAll(ctx context.Context) ([]*models.SosReport, error) {
	query := `SELECT ` + reportColumns + ` FROM sos_reports ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.SosReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sos reports: %w", err)
	}
	return reports, nil
}

// Mutate re-reads the report under a row lock, applies the transition and
// writes back the mutable fields in the same transaction. Two operators
// dispatching to the same report concurrently therefore see each other's
// additions instead of overwriting them.
func (r *ReportRepository) Mutate(ctx context.Context, id uuid.UUID, apply func(*models.SosReport) error) (*models.SosReport, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin sos report mutation: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + reportColumns + ` FROM sos_reports WHERE id = $1 FOR UPDATE;`
	report, err := scanReport(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos report %s: %w", id, service.ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to lock sos report: %w", err)
	}

	if err := apply(report); err != nil {
		return nil, err
	}

	update := `
		UPDATE sos_reports SET
			status = $1,
			rescue_units = $2,
			volunteer_units = $3,
			resolved_at = $4
		WHERE id = $5;
	`
	if _, err := tx.Exec(ctx, update,
		report.Status,
		report.RescueUnits,
		report.VolunteerUnits,
		report.ResolvedAt,
		report.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update sos report: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit sos report mutation: %w", err)
	}
	return report, nil
}

func scanReport(row pgx.Row) (*models.SosReport, error) {
	report := &models.SosReport{}
	var lat, lng *float64
	err := row.Scan(
		&report.ID,
		&lat,
		&lng,
		&report.UrgencyScore,
		&report.FormAnswers,
		&report.Status,
		&report.RescueUnits,
		&report.VolunteerUnits,
		&report.CreatedAt,
		&report.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		report.Location = &models.Location{Latitude: *lat, Longitude: *lng}
	}
	if report.RescueUnits == nil {
		report.RescueUnits = []string{}
	}
	if report.VolunteerUnits == nil {
		report.VolunteerUnits = []string{}
	}
	return report, nil
}
