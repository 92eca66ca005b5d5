package domain

import "context"

type Repository interface {
	Insert(ctx context.Context, rule *Rule) error
	ListActive(ctx context.Context) ([]Rule, error)
}
