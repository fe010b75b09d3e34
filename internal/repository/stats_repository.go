package repository

import (
	"context"
	"time"

	"job-portal/internal/database"
)

type PortalCounts struct {
	Users             int
	Jobs              int
	Applications      int
	ApplicationsSince int
}

type StatsRepository interface {
	Counts(ctx context.Context, since time.Time) (PortalCounts, error)
}

type PostgresStatsRepository struct {
	db database.Querier
}

func NewPostgresStatsRepository(db database.Querier) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Counts(ctx context.Context, since time.Time) (PortalCounts, error) {
	var out PortalCounts
	row := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM applications WHERE applied_at >= $1)`,
		since,
	)
	if err := row.Scan(&out.Users, &out.Jobs, &out.Applications, &out.ApplicationsSince); err != nil {
		return PortalCounts{}, err
	}
	return out, nil
}
