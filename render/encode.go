package render

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/rustyeddy/sizer/position"
)

// WriteCSV writes the result as a header row plus one data row. Target
// columns are empty when no target was supplied.
func WriteCSV(w io.Writer, res position.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"shares", "total_capital", "loss_amount", "stop_loss_pct",
		"risk_reward", "profit_amount", "gain_pct",
	}); err != nil {
		return err
	}

	rec := []string{
		strconv.FormatInt(res.Shares, 10),
		f(res.TotalCapital),
		f(res.LossAmount),
		f(res.StopLossPct),
		"", "", "",
	}
	if res.Target != nil {
		rec[4] = f(res.Target.RiskReward)
		rec[5] = f(res.Target.ProfitAmount)
		rec[6] = f(res.Target.GainPct)
	}
	if err := cw.Write(rec); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// EncodeJSON writes the result as indented JSON. A missing target is
// omitted, never null-filled.
func EncodeJSON(w io.Writer, res position.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
