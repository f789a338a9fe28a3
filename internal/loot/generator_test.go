package loot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/inventory"
	"github.com/osse101/LootLedger_Go/internal/testing/dicetest"
	"github.com/osse101/LootLedger_Go/internal/testing/fixtures"
)

func newTestGenerator(cfg Config, roller *dicetest.ScriptedRoller, rnd func() float64) *generator {
	g := NewGenerator(cfg, roller).(*generator)
	if rnd != nil {
		g.rnd = rnd
	}
	return g
}

func TestGather_BestCase(t *testing.T) {
	// ARRANGE
	inv := inventory.NewLedger(100)
	roller := dicetest.NewScriptedRoller(3, 1, 10, 2, 1)
	g := newTestGenerator(Config{}, roller, nil)

	// ACT
	res, err := g.Gather(context.Background(), fixtures.Items(), inv)

	// ASSERT
	require.NoError(t, err)
	assert.False(t, res.Halted)
	require.Len(t, res.Draws, 5)

	wantQty := []int{3, 1, 10, 2, 1}
	for i, d := range res.Draws {
		assert.Equal(t, fixtures.Items()[i].ID, d.Item.ID)
		assert.Equal(t, wantQty[i], d.Quantity)
		assert.True(t, d.NewEntry)
	}
	for _, size := range roller.Sizes() {
		assert.Equal(t, 10, size, "quantities are drawn with a d10")
	}

	// 3*1 + 1*2 + 10*3 + 2*0.3 + 1*3
	assert.InDelta(t, 38.6, inv.CurrentWeight(), 1e-9)
	assert.Equal(t, 5, inv.SlotCount())
}

func TestGather_MergesIntoExistingEntries(t *testing.T) {
	inv := inventory.NewLedger(100)
	_, _, err := inv.AddOrMerge(fixtures.Ore, 4)
	require.NoError(t, err)

	g := newTestGenerator(Config{}, dicetest.Constant(2), nil)
	res, err := g.Gather(context.Background(), []domain.Item{fixtures.Ore}, inv)

	require.NoError(t, err)
	require.Len(t, res.Draws, 1)
	assert.False(t, res.Draws[0].NewEntry)
	assert.Equal(t, 6, inv.QuantityOf(fixtures.Ore.ID))
}

func TestGather_WeightCeilingStopsPass(t *testing.T) {
	// ARRANGE: 30 items of weight 1, ceiling 10, one of each
	items := fixtures.Uniform(30, 1)
	inv := inventory.NewLedger(10)
	g := newTestGenerator(Config{}, dicetest.Constant(1), nil)

	// ACT
	res, err := g.Gather(context.Background(), items, inv)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 10, inv.SlotCount())
	assert.Len(t, res.Draws, 10)
	assert.True(t, res.Halted)
	assert.Equal(t, domain.HaltReasonWeight, res.HaltReason)
	for i, e := range inv.List() {
		assert.Equal(t, items[i].ID, e.Item.ID)
	}
}

func TestGather_OvershootIsAllowedOnce(t *testing.T) {
	// The check happens before each draw, so the last draw may overshoot
	inv := inventory.NewLedger(5)
	g := newTestGenerator(Config{}, dicetest.Constant(4), nil)

	res, err := g.Gather(context.Background(), fixtures.Uniform(3, 1), inv)

	require.NoError(t, err)
	assert.Len(t, res.Draws, 2)
	assert.InDelta(t, 8.0, inv.CurrentWeight(), 1e-9)
	assert.True(t, res.Halted)
}

func TestGather_SlotCapStopsPass(t *testing.T) {
	items := fixtures.Uniform(30, 0.01)
	inv := inventory.NewLedger(100)
	g := newTestGenerator(Config{}, dicetest.Constant(1), nil)

	res, err := g.Gather(context.Background(), items, inv)

	require.NoError(t, err)
	assert.Equal(t, domain.MaxInventorySlots, inv.SlotCount())
	assert.True(t, res.Halted)
	assert.Equal(t, domain.HaltReasonSlots, res.HaltReason)
}

func TestGather_RepeatedPassesNeverExceedSlotCap(t *testing.T) {
	inv := inventory.NewLedger(1e6)
	g := newTestGenerator(Config{}, dicetest.Cycle(1, 5, 10), nil)

	for pass := 0; pass < 5; pass++ {
		_, err := g.Gather(context.Background(), fixtures.Uniform(40, 0.5), inv)
		require.NoError(t, err)
		assert.LessOrEqual(t, inv.SlotCount(), domain.MaxInventorySlots)
	}
}

func TestGather_AlreadyFullDoesNothing(t *testing.T) {
	inv := inventory.NewLedger(10)
	_, _, err := inv.AddOrMerge(fixtures.Sword, 4) // weight 12
	require.NoError(t, err)

	roller := dicetest.Constant(5)
	g := newTestGenerator(Config{}, roller, nil)

	res, err := g.Gather(context.Background(), fixtures.Items(), inv)

	require.NoError(t, err)
	assert.Empty(t, res.Draws)
	assert.True(t, res.Halted)
	assert.Equal(t, domain.HaltReasonWeight, res.HaltReason)
	assert.Equal(t, 0, roller.Calls())
	assert.InDelta(t, 12.0, inv.CurrentWeight(), 1e-9)
}

func TestGather_ProbabilityDoesNotGateDraws(t *testing.T) {
	// With gating off, even an rnd that would fail every check draws everything
	inv := inventory.NewLedger(100)
	g := newTestGenerator(Config{}, dicetest.Constant(1), func() float64 { return 0.999 })

	res, err := g.Gather(context.Background(), fixtures.Items(), inv)

	require.NoError(t, err)
	assert.Len(t, res.Draws, len(fixtures.Items()))
	assert.Empty(t, res.Skipped)
	assert.InDelta(t, 0.5, res.Draws[0].Probability, 1e-9)
	assert.InDelta(t, 1.5, res.Draws[4].Probability, 1e-9)
}

func TestGather_ProbabilityGate(t *testing.T) {
	// ARRANGE: rnd 0.55 beats VeryCommon (0.5) but not Common (0.6) and above
	inv := inventory.NewLedger(100)
	g := newTestGenerator(Config{GateByProbability: true}, dicetest.Constant(1), func() float64 { return 0.55 })

	// ACT
	res, err := g.Gather(context.Background(), fixtures.Items(), inv)

	// ASSERT
	require.NoError(t, err)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, fixtures.Ore.ID, res.Skipped[0].ID)
	assert.Equal(t, fixtures.Wood.ID, res.Skipped[1].ID)
	require.Len(t, res.Draws, 3)
	assert.Equal(t, fixtures.Sword.ID, res.Draws[0].Item.ID)
}

func TestGather_CumulativeValueFixedPerPass(t *testing.T) {
	// ARRANGE: start at 500 exactly (low tier); the pass adds a crown worth 1500
	inv := inventory.NewLedger(1000)
	_, _, err := inv.AddOrMerge(fixtures.Ore, 100) // 100 * 5 = 500
	require.NoError(t, err)

	g := newTestGenerator(Config{}, dicetest.Constant(1), nil)

	// ACT
	res, err := g.Gather(context.Background(), []domain.Item{fixtures.Crown, fixtures.Ore}, inv)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 500, res.CumulativeValue)
	require.Len(t, res.Draws, 2)
	assert.InDelta(t, 0.5, res.Draws[1].Probability, 1e-9, "value multiplier is not recomputed mid-pass")
}

func TestGather_RollerFailureKeepsEarlierDraws(t *testing.T) {
	inv := inventory.NewLedger(100)
	g := newTestGenerator(Config{}, dicetest.NewScriptedRoller(2, 2), nil)

	res, err := g.Gather(context.Background(), fixtures.Items(), inv)

	require.Error(t, err)
	assert.ErrorIs(t, err, dicetest.ErrExhausted)
	assert.Len(t, res.Draws, 2)
	assert.Equal(t, 2, inv.SlotCount())
}
