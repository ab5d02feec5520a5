package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Dicklesworthstone/sysdash/internal/format"
	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// View renders Snapshots as full-screen frames.
type View struct {
	interval time.Duration
	help     help.Model
}

// NewView returns a View whose footer advertises the given refresh interval.
func NewView(interval time.Duration) *View {
	h := help.New()
	h.Styles.ShortKey = labelStyle
	h.Styles.ShortDesc = subtleStyle
	h.Styles.ShortSeparator = subtleStyle
	return &View{interval: interval, help: h}
}

// Render draws s into a frame of exactly height lines, each width cells wide.
// Panel placement comes from Layout on every call.
func (v *View) Render(s model.Snapshot, width, height int) string {
	r := Layout(width, height)

	blocks := []string{
		fit("", r.Spacer.W, r.Spacer.H),
		joinRow(v.info(s, r.Info), v.gauges(s, r.Gauges)),
		v.processes(s, r.Processes),
		joinRow(v.disks(s, r.Disks), v.network(s, r.Network)),
		v.footer(s, r.Footer),
	}
	rows := blocks[:0]
	for _, b := range blocks {
		if b != "" {
			rows = append(rows, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) info(s model.Snapshot, r Rect) string {
	return card("System", []string{
		infoLine("Hostname", s.Hostname),
		infoLine("Kernel", s.Kernel),
		infoLine("Uptime", format.Uptime(s.Uptime)),
		infoLine("Load Avg", fmt.Sprintf("%.2f  %.2f  %.2f", s.Load.One, s.Load.Five, s.Load.Fifteen)),
		hintStyle.Render(strings.Repeat(" ", infoLabelWidth) + "1m    5m    15m"),
	}, r)
}

func (v *View) gauges(s model.Snapshot, r Rect) string {
	w := max(r.W-4, 0)
	return card("Resources", []string{
		gauge("CPU", s.CPUUsage, "", w),
		"",
		gauge("MEM", format.Pct(s.MemoryUsed, s.MemoryTotal), gbPair(s.MemoryUsed, s.MemoryTotal), w),
		"",
		gauge("SWP", format.Pct(s.SwapUsed, s.SwapTotal), gbPair(s.SwapUsed, s.SwapTotal), w),
	}, r)
}

// Process table columns; the command column takes the rest.
const (
	pidWidth = 8
	cpuWidth = 8
	memWidth = 10
)

func (v *View) processes(s model.Snapshot, r Rect) string {
	cmdW := max(r.W-4-pidWidth-cpuWidth-memWidth, 1)
	body := []string{
		column("PID", pidWidth, labelStyle) + column("CPU%", cpuWidth, labelStyle) +
			column("MEM (MB)", memWidth, labelStyle) + cell("COMMAND", cmdW, labelStyle),
	}
	for i, p := range s.Processes {
		bg := rowStyle(i)
		body = append(body,
			column(fmt.Sprint(p.PID), pidWidth, bg.Foreground(colorText))+
				column(fmt.Sprintf("%.1f", p.CPUUsage), cpuWidth, bg.Foreground(UsageTier(p.CPUUsage).Color()))+
				column(fmt.Sprintf("%.1f", p.MemoryMB), memWidth, bg.Foreground(colorText))+
				cell(format.Command(p.Cmd), cmdW, bg.Foreground(colorDim)))
	}
	return card("Top Processes", body, r)
}

// Disk sizes up to "99999.99 GB" fit without clipping.
const sizeWidth = 11

func (v *View) disks(s model.Snapshot, r Rect) string {
	nameW := max(r.W-4-2*sizeWidth-colGap, 1+colGap)
	body := []string{
		column("Name", nameW, labelStyle) + column("Used", sizeWidth+colGap, labelStyle) +
			cell("Total", sizeWidth, labelStyle),
	}
	for i, d := range s.Disks {
		bg := rowStyle(i)
		body = append(body,
			column(d.Name, nameW, bg.Foreground(colorText))+
				column(format.GB(d.Used)+" GB", sizeWidth+colGap, bg.Foreground(colorText))+
				cell(format.GB(d.Total)+" GB", sizeWidth, bg.Foreground(colorDim)))
	}
	return card("Disks", body, r)
}

const rateWidth = 11

func (v *View) network(s model.Snapshot, r Rect) string {
	nameW := max(r.W-4-2*rateWidth-colGap, 1+colGap)
	body := []string{
		column("Interface", nameW, labelStyle) + column("RX", rateWidth+colGap, labelStyle) +
			cell("TX", rateWidth, labelStyle),
	}
	for i, n := range s.Network {
		bg := rowStyle(i)
		body = append(body,
			column(n.Interface, nameW, bg.Foreground(colorText))+
				column(format.Bytes(n.RxBytes), rateWidth+colGap, bg.Foreground(colorGood))+
				cell(format.Bytes(n.TxBytes), rateWidth, bg.Foreground(colorWarn)))
	}
	return card("Network", body, r)
}

func (v *View) footer(s model.Snapshot, r Rect) string {
	if r.Empty() {
		return ""
	}
	v.help.Width = r.W
	line := " " + v.help.View(Keys) +
		subtleStyle.Render("  refresh: ") + textStyle.Render(v.interval.String()) +
		subtleStyle.Render("  procs: ") + textStyle.Render(format.Count(s.ProcessCount)) +
		subtleStyle.Render("  updated ") + textStyle.Render(s.Taken.Format("15:04:05"))
	return fit(line, r.W, r.H)
}

// Gauge columns; the bar takes the rest.
const (
	gaugeLabelWidth  = 5
	gaugeDetailWidth = 22
	gaugePctWidth    = 8
)

// gauge renders "LBL  ████░░░░  42.0%  detail" in exactly width cells. The
// bar and the percentage share the tier color of pct.
func gauge(label string, pct float64, detail string, width int) string {
	pct = clampPct(pct)
	text, textW := fmt.Sprintf(" %.1f%%", pct), gaugePctWidth
	if detail != "" {
		text = fmt.Sprintf(" %.1f%%  %s", pct, detail)
		textW = min(max(gaugeDetailWidth, lipgloss.Width(text)), max(width-gaugeLabelWidth-1, 0))
	}
	barW := max(width-gaugeLabelWidth-textW, 1)
	filled := min(int(pct/100*float64(barW)), barW)
	color := UsageTier(pct).Color()

	bar := lipgloss.NewStyle().Foreground(color).Background(colorBarBg).Render(strings.Repeat(gaugeFill, filled)) +
		lipgloss.NewStyle().Foreground(colorBarBg).Render(strings.Repeat(gaugeEmpty, barW-filled))
	return cell(label, gaugeLabelWidth, labelStyle) + bar + cell(text, textW, lipgloss.NewStyle().Foreground(color))
}

const infoLabelWidth = 10

func infoLine(label, value string) string {
	return subtleStyle.Render(fmt.Sprintf("%-*s", infoLabelWidth, label)) + textStyle.Render(value)
}

func gbPair(used, total uint64) string {
	return format.GB(used) + "/" + format.GB(total) + " GB"
}

// card draws a bordered panel of exactly r.W x r.H cells with the title on
// its first inner line. Panels too small for a border are left blank.
func card(title string, body []string, r Rect) string {
	if r.Empty() {
		return ""
	}
	if r.W < 4 || r.H < 3 {
		return fit("", r.W, r.H)
	}
	content := labelStyle.Render(title) + "\n" + strings.Join(body, "\n")
	return fit(cardStyle.Render(fit(content, r.W-4, r.H-2)), r.W, r.H)
}

// colGap separates a table column from the next one.
const colGap = 1

// column is a cell whose last colGap cells stay blank.
func column(text string, w int, st lipgloss.Style) string {
	return cell(pad(text, w-colGap), w, st)
}

// cell clips or pads text to w cells and styles it.
func cell(text string, w int, st lipgloss.Style) string {
	return st.Render(pad(text, w))
}

func pad(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncate.String(s, uint(w))
	if gap := w - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// fit forces s into a block of exactly h lines of w cells.
func fit(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = pad(l, w)
	}
	return strings.Join(lines, "\n")
}

func joinRow(left, right string) string {
	switch {
	case left == "":
		return right
	case right == "":
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func clampPct(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
