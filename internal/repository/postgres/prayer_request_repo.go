package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gracehill/ministry/internal/domain"
)

const prayerRequestColumns = "id, name, email, content, is_public, needs_follow_up, status, created_at"

type PrayerRequestRepo struct {
	pool *pgxpool.Pool
}

func NewPrayerRequestRepo(pool *pgxpool.Pool) *PrayerRequestRepo {
	return &PrayerRequestRepo{pool: pool}
}

func (r *PrayerRequestRepo) Create(ctx context.Context, req *domain.PrayerRequest) error {
	// id, status and created_at come from the table defaults, never from
	// the caller.
	query := `
		INSERT INTO prayer_requests (name, email, content, is_public, needs_follow_up)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`

	return r.pool.QueryRow(ctx, query,
		req.Name, req.Email, req.Content, req.IsPublic, req.NeedsFollowUp,
	).Scan(&req.ID, &req.Status, &req.CreatedAt)
}

func (r *PrayerRequestRepo) List(ctx context.Context) ([]domain.PrayerRequest, error) {
	query := `
		SELECT ` + prayerRequestColumns + `
		FROM prayer_requests
		ORDER BY created_at DESC, id DESC`

	return r.listRequests(ctx, query)
}

func (r *PrayerRequestRepo) ListPublicApproved(ctx context.Context) ([]domain.PrayerRequest, error) {
	query := `
		SELECT ` + prayerRequestColumns + `
		FROM prayer_requests
		WHERE is_public = TRUE AND status = $1
		ORDER BY created_at DESC, id DESC`

	return r.listRequests(ctx, query, domain.StatusApproved)
}

func (r *PrayerRequestRepo) GetByID(ctx context.Context, id int) (*domain.PrayerRequest, error) {
	query := `SELECT ` + prayerRequestColumns + ` FROM prayer_requests WHERE id = $1`

	return r.scanRequest(r.pool.QueryRow(ctx, query, id))
}

func (r *PrayerRequestRepo) UpdateStatus(ctx context.Context, id int, status string) (*domain.PrayerRequest, error) {
	query := `
		UPDATE prayer_requests
		SET status = $1
		WHERE id = $2
		RETURNING ` + prayerRequestColumns

	return r.scanRequest(r.pool.QueryRow(ctx, query, status, id))
}

func (r *PrayerRequestRepo) scanRequest(row pgx.Row) (*domain.PrayerRequest, error) {
	var req domain.PrayerRequest
	err := row.Scan(
		&req.ID, &req.Name, &req.Email, &req.Content,
		&req.IsPublic, &req.NeedsFollowUp, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PrayerRequestRepo) listRequests(ctx context.Context, query string, args ...any) ([]domain.PrayerRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PrayerRequest
	for rows.Next() {
		var req domain.PrayerRequest
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Email, &req.Content,
			&req.IsPublic, &req.NeedsFollowUp, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
