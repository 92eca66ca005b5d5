package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	timerulesdomain "github.com/shutoken-mobility/ryokin/internal/timerules/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo timerulesdomain.Repository
}

type ServiceParam struct {
	fx.In

	Log        *zap.Logger
	Repository timerulesdomain.Repository
}

func NewService(p ServiceParam) timerulesdomain.Service {
	return &Service{
		log:  p.Log.Named("timerules.service"),
		repo: p.Repository,
	}
}

func (s *Service) MultiplierAt(ctx context.Context, at time.Time, categoryID, serviceTypeID snowflake.ID) (float64, error) {
	rules, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	rule := Match(rules, at, categoryID, serviceTypeID)
	if rule != nil {
		s.log.Debug("time rule matched",
			zap.String("rule", rule.Name),
			zap.Float64("adjustment_percentage", rule.AdjustmentPercentage),
		)
	}
	return Multiplier(rule), nil
}

// Match returns the highest-priority rule applying to the pickup time, or
// nil. Rules are matched in descending priority order, first hit wins.
func Match(rules []timerulesdomain.Rule, at time.Time, categoryID, serviceTypeID snowflake.ID) *timerulesdomain.Rule {
	sorted := make([]timerulesdomain.Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })

	day := strings.ToLower(at.Weekday().String())
	clock := fmt.Sprintf("%02d:%02d", at.Hour(), at.Minute())

	for i := range sorted {
		rule := &sorted[i]
		if rule.CategoryID != 0 && rule.CategoryID != categoryID {
			continue
		}
		if rule.ServiceTypeID != 0 && rule.ServiceTypeID != serviceTypeID {
			continue
		}
		if len(rule.DaysOfWeek) > 0 && !rule.DaysOfWeek.Contains(day) {
			continue
		}
		if !windowContains(rule.StartTime, rule.EndTime, clock) {
			continue
		}
		return rule
	}
	return nil
}

// Multiplier converts a matched rule into the line-item time multiplier.
func Multiplier(rule *timerulesdomain.Rule) float64 {
	if rule == nil {
		return 1
	}
	return 1 + rule.AdjustmentPercentage/100
}

// windowContains compares zero-padded HH:MM strings, wrapping past
// midnight when the window starts later than it ends (e.g. 22:00-06:00).
func windowContains(start, end, clock string) bool {
	if start == "" || end == "" {
		return true
	}
	if start < end {
		return clock >= start && clock <= end
	}
	return clock >= start || clock <= end
}
