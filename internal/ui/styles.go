package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette
const (
	colorAccent = lipgloss.Color("#64B4DC")
	colorDim    = lipgloss.Color("#5A5A64")
	colorText   = lipgloss.Color("#C8C8D2")
	colorGood   = lipgloss.Color("#50BE78")
	colorWarn   = lipgloss.Color("#DCB446")
	colorCrit   = lipgloss.Color("#D25A5A")
	colorBarBg  = lipgloss.Color("#23232D")
	colorRowAlt = lipgloss.Color("#191923")
	colorBorder = lipgloss.Color("60")
)

// Severity thresholds, in percent.
const (
	WarnThreshold     = 60.0
	CriticalThreshold = 85.0
)

// Tier is the severity bucket of a usage percentage.
type Tier int

const (
	TierGood Tier = iota
	TierWarn
	TierCritical
)

func (t Tier) String() string {
	switch t {
	case TierGood:
		return "good"
	case TierWarn:
		return "warn"
	case TierCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Color returns the foreground color used for values in this tier.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierWarn:
		return colorWarn
	case TierCritical:
		return colorCrit
	default:
		return colorGood
	}
}

// UsageTier buckets a percentage: good below 60, warn below 85, critical from
// 85 up. NaN is treated as good.
func UsageTier(pct float64) Tier {
	switch {
	case math.IsNaN(pct), pct < WarnThreshold:
		return TierGood
	case pct < CriticalThreshold:
		return TierWarn
	default:
		return TierCritical
	}
}

var (
	labelStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(colorDim)
	textStyle   = lipgloss.NewStyle().Foreground(colorText)
	hintStyle   = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// rowStyle gives every other table row a darker background.
func rowStyle(i int) lipgloss.Style {
	if i%2 == 1 {
		return lipgloss.NewStyle().Background(colorRowAlt)
	}
	return lipgloss.NewStyle()
}
