package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/service"
)

const (
	rescuersCacheKey   = "personnel:rescuers"
	volunteersCacheKey = "personnel:volunteers"
	usersCacheKey      = "personnel:users"
)

// PersonnelRepository reads the candidate pools from PostgreSQL with a
// short-TTL Redis cache in front. The cache is best effort: any cache
// failure falls through to the database.
type PersonnelRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewPersonnelRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.PersonnelRepository {
	return &PersonnelRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ListRescuers returns all users registered as rescuers.
func (r *PersonnelRepository) ListRescuers(ctx context.Context) ([]*models.User, error) {
	var cached []*models.User
	if r.readCache(ctx, rescuersCacheKey, &cached) {
		return cached, nil
	}

	query := `
		SELECT id, first_name, last_name, user_type, created_at
		FROM users
		WHERE user_type = 'rescuer'
		ORDER BY last_name, first_name;
	`
	users, err := r.queryUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rescuers: %w", err)
	}

	r.writeCache(ctx, rescuersCacheKey, users)
	return users, nil
}

// ListUsers returns all user records, used to resolve volunteer display names.
func (r *PersonnelRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	var cached []*models.User
	if r.readCache(ctx, usersCacheKey, &cached) {
		return cached, nil
	}

	query := `
		SELECT id, first_name, last_name, user_type, created_at
		FROM users
		ORDER BY last_name, first_name;
	`
	users, err := r.queryUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	r.writeCache(ctx, usersCacheKey, users)
	return users, nil
}

// ListVolunteers returns all volunteer application records.
func (r *PersonnelRepository) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	var cached []*models.Volunteer
	if r.readCache(ctx, volunteersCacheKey, &cached) {
		return cached, nil
	}

	query := `
		SELECT id, user_id, choices, status, created_at
		FROM volunteers
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		v := &models.Volunteer{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.Skills, &v.Status, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		if v.Skills == nil {
			v.Skills = []string{}
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	r.writeCache(ctx, volunteersCacheKey, volunteers)
	return volunteers, nil
}

func (r *PersonnelRepository) queryUsers(ctx context.Context, query string) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserType, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PersonnelRepository) readCache(ctx context.Context, key string, target any) bool {
	if r.redisClient == nil {
		return false
	}
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, target) == nil
}

func (r *PersonnelRepository) writeCache(ctx context.Context, key string, value any) {
	if r.redisClient == nil {
		return
	}
	val, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, key, val, r.cacheTTL)
}
