// Package position sizes a stock trade from the trader's risk budget: given
// the most they are willing to lose, an entry price, a stop-loss price and an
// optional target price, it validates the four inputs and derives the
// position plan. All functions are pure; nothing here touches the terminal,
// the log, or the preference store.
package position

import "math"

// Inputs are the four trade parameters a plan is built from. Values arrive
// already parsed; NaN marks a field that held no number. Target is nil when
// the trader has no price target.
type Inputs struct {
	MaxLoss    float64
	EntryPrice float64
	StopLoss   float64
	Target     *float64
}

// TargetMetrics carries the reward-side numbers. It exists only when a
// target price above the entry was supplied.
type TargetMetrics struct {
	// RiskReward is the gain per share divided by the loss per share, the
	// "4.00" in a 1:4.00 trade.
	RiskReward   float64 `json:"risk_reward"`
	ProfitAmount float64 `json:"profit_amount"`
	GainPct      float64 `json:"gain_pct"`
}

// Result is the computed position plan.
type Result struct {
	Shares       int64          `json:"shares"`
	TotalCapital float64        `json:"total_capital"`
	LossAmount   float64        `json:"loss_amount"`
	StopLossPct  float64        `json:"stop_loss_pct"`
	Target       *TargetMetrics `json:"target,omitempty"`
}

// Calculate builds the plan for validated inputs. Shares is floored so the
// realized loss at the stop never exceeds MaxLoss. Check must have passed:
// in particular StopLoss < EntryPrice, so the per-share risk is never zero.
func Calculate(in Inputs) Result {
	riskPerShare := in.EntryPrice - in.StopLoss
	shares := int64(math.Floor(in.MaxLoss / riskPerShare))

	res := Result{
		Shares:       shares,
		TotalCapital: in.EntryPrice * float64(shares),
		LossAmount:   riskPerShare * float64(shares),
		StopLossPct:  riskPerShare / in.EntryPrice * 100,
	}

	if in.Target != nil && *in.Target > in.EntryPrice {
		gainPerShare := *in.Target - in.EntryPrice
		res.Target = &TargetMetrics{
			RiskReward:   gainPerShare / riskPerShare,
			ProfitAmount: gainPerShare * float64(shares),
			GainPct:      gainPerShare / in.EntryPrice * 100,
		}
	}
	return res
}
