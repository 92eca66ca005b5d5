package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	ratecarddomain "github.com/shutoken-mobility/ryokin/internal/ratecard/domain"
	"github.com/shutoken-mobility/ryokin/internal/ratecard/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func catalog(node *snowflake.Node, vehicleID, serviceTypeID snowflake.ID, tiers map[int]float64) []ratecarddomain.RateRow {
	rows := make([]ratecarddomain.RateRow, 0, len(tiers))
	for hours, price := range tiers {
		rows = append(rows, ratecarddomain.RateRow{
			ID:            node.Generate(),
			VehicleID:     vehicleID,
			ServiceTypeID: serviceTypeID,
			DurationHours: hours,
			Price:         price,
			Currency:      "JPY",
			Active:        true,
		})
	}
	return rows
}

func TestResolveDailyRate_ExactMatch(t *testing.T) {
	node, _ := snowflake.NewNode(1)
	vehicleID := node.Generate()
	serviceTypeID := node.Generate()
	rows := catalog(node, vehicleID, serviceTypeID, map[int]float64{
		1: 8000, 4: 30000, 6: 42000, 8: 52000, 10: 62000, 12: 70000,
	})

	for hours, price := range map[int]float64{1: 8000, 6: 42000, 12: 70000} {
		resolved, err := ResolveDailyRate(rows, hours)
		assert.NoError(t, err)
		assert.Equal(t, hours, resolved.DurationHours)
		assert.Equal(t, price, resolved.Price)
		assert.False(t, resolved.Extrapolated)
	}
}

func TestResolveDailyRate_NextTierUp(t *testing.T) {
	node, _ := snowflake.NewNode(1)
	vehicleID := node.Generate()
	serviceTypeID := node.Generate()
	rows := catalog(node, vehicleID, serviceTypeID, map[int]float64{
		4: 30000, 8: 52000, 12: 70000,
	})

	tests := []struct {
		name      string
		target    int
		wantHours int
		wantPrice float64
	}{
		{name: "between tiers picks covering tier", target: 5, wantHours: 8, wantPrice: 52000},
		{name: "just above a tier", target: 9, wantHours: 12, wantPrice: 70000},
		{name: "below smallest tier picks smallest", target: 2, wantHours: 4, wantPrice: 30000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveDailyRate(rows, tt.target)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantHours, resolved.DurationHours)
			assert.Equal(t, tt.wantPrice, resolved.Price)
			assert.False(t, resolved.Extrapolated)
		})
	}
}

func TestResolveDailyRate_ExtrapolatesAboveLargestTier(t *testing.T) {
	node, _ := snowflake.NewNode(1)
	vehicleID := node.Generate()
	serviceTypeID := node.Generate()
	rows := catalog(node, vehicleID, serviceTypeID, map[int]float64{
		4: 30000, 12: 72000,
	})

	resolved, err := ResolveDailyRate(rows, 15)
	assert.NoError(t, err)
	assert.True(t, resolved.Extrapolated)
	assert.Equal(t, 15, resolved.DurationHours)
	assert.InDelta(t, 72000*15.0/12.0, resolved.Price, 1e-9)

	// Scaling is monotonic with the requested duration.
	longer, err := ResolveDailyRate(rows, 18)
	assert.NoError(t, err)
	assert.Greater(t, longer.Price, resolved.Price)

	// The identifying fields survive extrapolation.
	assert.Equal(t, vehicleID, resolved.VehicleID)
	assert.Equal(t, serviceTypeID, resolved.ServiceTypeID)
	assert.Equal(t, "JPY", resolved.Currency)
}

func TestResolveDailyRate_EmptyCatalog(t *testing.T) {
	_, err := ResolveDailyRate(nil, 8)
	assert.ErrorIs(t, err, ratecarddomain.ErrRateNotFound)

	_, err = ResolveDailyRate([]ratecarddomain.RateRow{}, 1)
	assert.ErrorIs(t, err, ratecarddomain.ErrRateNotFound)
}

func TestResolveDailyRate_InvalidInput(t *testing.T) {
	node, _ := snowflake.NewNode(1)
	vehicleID := node.Generate()
	serviceTypeID := node.Generate()
	rows := catalog(node, vehicleID, serviceTypeID, map[int]float64{4: 30000})

	_, err := ResolveDailyRate(rows, 0)
	assert.ErrorIs(t, err, ratecarddomain.ErrInvalidDuration)

	mixed := append(rows, ratecarddomain.RateRow{
		ID:            node.Generate(),
		VehicleID:     node.Generate(),
		ServiceTypeID: serviceTypeID,
		DurationHours: 8,
		Price:         52000,
	})
	_, err = ResolveDailyRate(mixed, 4)
	assert.ErrorIs(t, err, ratecarddomain.ErrMixedCatalog)
}

func TestCharterTotal(t *testing.T) {
	rate := ratecarddomain.ResolvedRate{RateRow: ratecarddomain.RateRow{DurationHours: 8, Price: 52000}}

	assert.Equal(t, 52000.0, CharterTotal(rate, 1))
	assert.Equal(t, 156000.0, CharterTotal(rate, 3))
	// Day count below one is a scheduling mistake; charge a single day.
	assert.Equal(t, 52000.0, CharterTotal(rate, 0))
}

func TestResolveForVehicle_LoadsActiveRowsOnly(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, gdb.AutoMigrate(&ratecarddomain.RateRow{}))

	node, _ := snowflake.NewNode(1)
	repo := repository.NewRepository(gdb)
	svc := NewService(ServiceParam{Log: zap.NewNop(), Repository: repo})

	vehicleID := node.Generate()
	serviceTypeID := node.Generate()

	seed := []ratecarddomain.RateRow{
		{ID: node.Generate(), VehicleID: vehicleID, ServiceTypeID: serviceTypeID, DurationHours: 4, Price: 30000, Currency: "JPY", Active: true},
		{ID: node.Generate(), VehicleID: vehicleID, ServiceTypeID: serviceTypeID, DurationHours: 8, Price: 52000, Currency: "JPY", Active: true},
		// Deactivated tier must never resolve.
		{ID: node.Generate(), VehicleID: vehicleID, ServiceTypeID: serviceTypeID, DurationHours: 6, Price: 42000, Currency: "JPY", Active: false},
	}
	for i := range seed {
		assert.NoError(t, repo.Insert(context.Background(), &seed[i]))
	}

	resolved, err := svc.ResolveForVehicle(context.Background(), vehicleID, serviceTypeID, 6)
	assert.NoError(t, err)
	assert.Equal(t, 8, resolved.DurationHours)
	assert.Equal(t, 52000.0, resolved.Price)

	// Unknown pair is a hard failure, never a default price.
	_, err = svc.ResolveForVehicle(context.Background(), node.Generate(), serviceTypeID, 6)
	assert.ErrorIs(t, err, ratecarddomain.ErrRateNotFound)
}
