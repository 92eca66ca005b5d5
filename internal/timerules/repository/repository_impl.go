package repository

import (
	"context"

	timerulesdomain "github.com/shutoken-mobility/ryokin/internal/timerules/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) timerulesdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, rule *timerulesdomain.Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) ListActive(ctx context.Context) ([]timerulesdomain.Rule, error) {
	var rules []timerulesdomain.Rule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}
