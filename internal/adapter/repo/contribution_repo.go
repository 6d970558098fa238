package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ContributionRepositoryPG implements ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributionRepository creates a new contribution repo.
func NewContributionRepository(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

// Create inserts a new contribution and returns the persisted record. A
// unique-index violation on the phone column maps to ErrDuplicatePhone so
// callers can surface the duplicate-specific message.
func (r *ContributionRepositoryPG) Create(ctx context.Context, input domain.ContributionInput) (*domain.Contribution, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertContribution,
		input.Name, input.Relation, input.Address, input.PhoneNumber, input.Amount, input.Date)

	var c domain.Contribution
	err := row.Scan(&c.ID, &c.Name, &c.Relation, &c.Address, &c.PhoneNumber, &c.Amount, &c.Date, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if infra.IsUniqueViolation(err, "phone") {
			return nil, domain.ErrDuplicatePhone
		}
		return nil, err
	}
	return &c, nil
}

// ListAll returns every contribution, newest first.
func (r *ContributionRepositoryPG) ListAll(ctx context.Context) ([]domain.Contribution, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListContributions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.ID, &c.Name, &c.Relation, &c.Address, &c.PhoneNumber, &c.Amount, &c.Date, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Summary returns the record count and the sum of all amounts.
func (r *ContributionRepositoryPG) Summary(ctx context.Context) (int64, int64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QContributionSummary)
	var count, total int64
	if err := row.Scan(&count, &total); err != nil {
		return 0, 0, err
	}
	return count, total, nil
}

var _ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)
