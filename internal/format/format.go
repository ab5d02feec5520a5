// Package format turns raw metric values into display strings. Every function
// is pure and locale independent.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// MaxCommandLen is the widest command string shown before truncation.
const MaxCommandLen = 40

// ToGB converts bytes to binary gigabytes (2^30).
func ToGB(b uint64) float64 { return float64(b) / gib }

// GB renders bytes as gigabytes with two decimals, without a unit.
func GB(b uint64) string { return fmt.Sprintf("%.2f", ToGB(b)) }

// Bytes picks the largest of B, KB, MB, GB that keeps the value >= 1.
func Bytes(b uint64) string {
	switch {
	case b < kib:
		return fmt.Sprintf("%d B", b)
	case b < mib:
		return fmt.Sprintf("%.1f KB", float64(b)/kib)
	case b < gib:
		return fmt.Sprintf("%.1f MB", float64(b)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(b)/gib)
	}
}

// Uptime renders seconds as "1d 2h 3m", "2h 3m" or "3m 4s" depending on magnitude.
func Uptime(secs uint64) string {
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm %ds", mins, secs%60)
	}
}

// Command shortens s to MaxCommandLen runes, the last one being an ellipsis.
func Command(s string) string {
	r := []rune(s)
	if len(r) <= MaxCommandLen {
		return s
	}
	return string(r[:MaxCommandLen-1]) + "…"
}

// Pct returns used as a percentage of total, or 0 when total is 0.
func Pct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}

// Count renders n with thousands separators.
func Count(n int) string { return humanize.Comma(int64(n)) }
