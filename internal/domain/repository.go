package domain

import "context"

// ContributionRepository handles contribution persistence.
type ContributionRepository interface {
	Create(ctx context.Context, input ContributionInput) (*Contribution, error)
	ListAll(ctx context.Context) ([]Contribution, error)
	Summary(ctx context.Context) (count int64, total int64, err error)
}
