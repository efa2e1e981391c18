package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/sizer/position"
)

// Card styles
var (
	cardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Width(18)

	valueStyle = lipgloss.NewStyle().
		Bold(true)

	favorableStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	unfavorableStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#F59E0B"))

	problemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444"))
)

// Options controls how a result is presented.
type Options struct {
	// CurrencySymbol prefixes every money amount.
	CurrencySymbol string

	// FavorableRR is the risk/reward threshold at and above which the ratio
	// row is colored as favorable. Display policy only.
	FavorableRR float64

	// Color disables all styling when false.
	Color bool
}

// Card renders the position plan as a bordered terminal card.
func Card(res position.Result, opt Options) string {
	type row struct {
		label, value string
		style        lipgloss.Style
	}

	rows := []row{
		{"Shares", fmt.Sprintf("%d", res.Shares), valueStyle},
		{"Total Capital", Money(opt.CurrencySymbol, res.TotalCapital), valueStyle},
		{"Loss at Stop", Money(opt.CurrencySymbol, res.LossAmount), valueStyle},
		{"Stop Distance", Percent(res.StopLossPct), valueStyle},
	}

	if res.Target != nil {
		rrStyle := unfavorableStyle
		if res.Target.RiskReward >= opt.FavorableRR {
			rrStyle = favorableStyle
		}
		rows = append(rows,
			row{"Risk/Reward", Ratio(res.Target.RiskReward), rrStyle},
			row{"Potential Profit", Money(opt.CurrencySymbol, res.Target.ProfitAmount), valueStyle},
			row{"Potential Gain", Percent(res.Target.GainPct), valueStyle},
		)
	}

	var b strings.Builder
	b.WriteString(render(opt, titleStyle, "Position Plan"))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(render(opt, labelStyle, r.label))
		b.WriteString(render(opt, r.style, r.value))
	}

	if !opt.Color {
		return b.String()
	}
	return cardStyle.Render(b.String())
}

// Problems renders the validation failures, one line per field.
func Problems(out position.Outcome, opt Options) string {
	var b strings.Builder
	for i, v := range out.Violations() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(render(opt, problemStyle, "✗ "+v.Msg))
	}
	return b.String()
}

func render(opt Options, style lipgloss.Style, s string) string {
	if !opt.Color {
		// Keep the layout, drop the colors.
		if w := style.GetWidth(); w > 0 {
			return fmt.Sprintf("%-*s", w, s)
		}
		return s
	}
	return style.Render(s)
}
