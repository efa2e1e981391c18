package position

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	res := Calculate(Inputs{MaxLoss: 500, EntryPrice: 100, StopLoss: 95})

	assert.Equal(t, int64(100), res.Shares)
	assert.InDelta(t, 10000.0, res.TotalCapital, 1e-9)
	assert.InDelta(t, 500.0, res.LossAmount, 1e-9)
	assert.InDelta(t, 5.0, res.StopLossPct, 1e-9)
	assert.Nil(t, res.Target)
}

func TestCalculateWithTarget(t *testing.T) {
	t.Parallel()

	target := 120.0
	res := Calculate(Inputs{MaxLoss: 500, EntryPrice: 100, StopLoss: 95, Target: &target})

	require.NotNil(t, res.Target)
	assert.InDelta(t, 4.0, res.Target.RiskReward, 1e-9)
	assert.InDelta(t, 2000.0, res.Target.ProfitAmount, 1e-9)
	assert.InDelta(t, 20.0, res.Target.GainPct, 1e-9)
}

func TestCalculateFloorsShares(t *testing.T) {
	t.Parallel()

	// 500 / 3 = 166.66..., floored so the realized loss stays inside budget.
	res := Calculate(Inputs{MaxLoss: 500, EntryPrice: 100, StopLoss: 97})

	assert.Equal(t, int64(166), res.Shares)
	assert.InDelta(t, 16600.0, res.TotalCapital, 1e-9)
	assert.InDelta(t, 498.0, res.LossAmount, 1e-9)
	assert.LessOrEqual(t, res.LossAmount, 500.0)
}

func TestCalculateZeroShares(t *testing.T) {
	t.Parallel()

	// Budget smaller than one share of risk: the plan is to stay out.
	res := Calculate(Inputs{MaxLoss: 3, EntryPrice: 100, StopLoss: 95})

	assert.Equal(t, int64(0), res.Shares)
	assert.InDelta(t, 0.0, res.TotalCapital, 1e-9)
	assert.InDelta(t, 0.0, res.LossAmount, 1e-9)
	assert.InDelta(t, 5.0, res.StopLossPct, 1e-9)
}

func TestCalculateTargetAtOrBelowEntryOmitted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target float64
	}{
		{"below entry", 90},
		{"at entry", 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target := tt.target
			res := Calculate(Inputs{MaxLoss: 500, EntryPrice: 100, StopLoss: 95, Target: &target})
			assert.Nil(t, res.Target)
		})
	}
}

func TestCalculateNoTargetNeverNaN(t *testing.T) {
	t.Parallel()

	res := Calculate(Inputs{MaxLoss: 250, EntryPrice: 40, StopLoss: 38})

	assert.Nil(t, res.Target)
	assert.False(t, math.IsNaN(res.TotalCapital))
	assert.False(t, math.IsNaN(res.LossAmount))
	assert.False(t, math.IsNaN(res.StopLossPct))
}

func TestCalculateSharesFollowFloor(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		entry := 1 + rng.Float64()*499
		stop := entry * (0.5 + rng.Float64()*0.49)
		maxLoss := rng.Float64() * 10_000

		res := Calculate(Inputs{MaxLoss: maxLoss, EntryPrice: entry, StopLoss: stop})

		want := int64(math.Floor(maxLoss / (entry - stop)))
		assert.Equal(t, want, res.Shares)
		assert.GreaterOrEqual(t, res.Shares, int64(0))
	}
}
