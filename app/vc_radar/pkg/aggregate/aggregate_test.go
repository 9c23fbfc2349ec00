package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/vc_radar/app/vc_radar/pkg/model"
)

func rmb(v float64) *float64 { return &v }

func TestStats(t *testing.T) {
	deals := []model.ClassifiedDeal{
		{Sector: model.SectorAI, Stage: model.StageGrowth, AmountRMB: rmb(1e8)},
		{Sector: model.SectorAI, Stage: model.StageEarly},
		{Sector: model.SectorHardTech, Stage: model.StageExpansion, AmountRMB: rmb(2.16e9)},
		{Sector: model.SectorConsumer, Stage: model.StageUnlabeled, AmountRMB: rmb(0)},
	}

	stats := Stats(deals)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.DisclosedCount)
	assert.Equal(t, 1, stats.UndisclosedCount)
	assert.Equal(t, stats.Total, stats.DisclosedCount+stats.UndisclosedCount)
	assert.InDelta(t, 2.26e9, stats.DisclosedSumRMB, 1e-3)
	assert.Equal(t, 2, stats.BySector[model.SectorAI])
	assert.Equal(t, 1, stats.ByStage[model.StageExpansion])
}

func TestStats_UndisclosedNeverCountsAsZero(t *testing.T) {
	stats := Stats([]model.ClassifiedDeal{{Sector: model.SectorAI}, {Sector: model.SectorAI}})
	assert.Equal(t, 0, stats.DisclosedCount)
	assert.Equal(t, 2, stats.UndisclosedCount)
	assert.Zero(t, stats.DisclosedSumRMB)
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.BySector)
	assert.NotNil(t, stats.ByStage)
}

func TestRanked(t *testing.T) {
	got := Ranked(map[model.Sector]int{
		model.SectorConsumer: 1,
		model.SectorAI:       3,
		model.SectorHardTech: 1,
	})
	assert.Equal(t, []Count[model.Sector]{
		{Key: model.SectorAI, Count: 3},
		{Key: model.SectorConsumer, Count: 1},
		{Key: model.SectorHardTech, Count: 1},
	}, got)
}
