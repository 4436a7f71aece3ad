package postgres

import (
	"context"
	"time"

	"github.com/apdd/apdd-server/internal/model"
)

var _ model.LeadStore = (*LeadRepository)(nil)

type LeadRepository struct {
	db *Connection
}

func NewLeadRepository(db *Connection) *LeadRepository {
	return &LeadRepository{
		db: db,
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	query := `
		INSERT INTO leads (name, email, company, message, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, company, message, ip, user_agent, created_at`

	var saved model.Lead
	err := r.db.QueryRowContext(ctx, query,
		lead.Name, lead.Email, lead.Company, lead.Message, lead.IP, lead.UserAgent,
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.Company,
		&saved.Message, &saved.IP, &saved.UserAgent, &saved.CreatedAt,
	)
	if err != nil {
		return model.Lead{}, storeErr(err)
	}

	return saved, nil
}

func (r *LeadRepository) GetAll(ctx context.Context) ([]model.Lead, error) {
	query := `
		SELECT id, name, email, company, message, ip, user_agent, created_at
		FROM leads
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var leads []model.Lead
	for rows.Next() {
		var lead model.Lead
		err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Email, &lead.Company,
			&lead.Message, &lead.IP, &lead.UserAgent, &lead.CreatedAt,
		)
		if err != nil {
			return nil, storeErr(err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *LeadRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads WHERE created_at > $1`, since).Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *LeadRepository) CountPerDay(ctx context.Context, since time.Time) ([]model.DayCount, error) {
	query := `
		SELECT DATE(created_at) AS day, COUNT(*) AS count
		FROM leads
		WHERE created_at > $1
		GROUP BY DATE(created_at)
		ORDER BY day ASC`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var series []model.DayCount
	for rows.Next() {
		var dc model.DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, storeErr(err)
		}
		series = append(series, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return series, nil
}
