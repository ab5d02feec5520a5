package ui

// Rect is a cell-addressed area of the terminal.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Regions is one frame's panel placement.
type Regions struct {
	Spacer    Rect
	Info      Rect
	Gauges    Rect
	Processes Rect
	Disks     Rect
	Network   Rect
	Footer    Rect
}

// All lists the regions top to bottom, left to right.
func (r Regions) All() []Rect {
	return []Rect{r.Spacer, r.Info, r.Gauges, r.Processes, r.Disks, r.Network, r.Footer}
}

// Row heights. The process table takes whatever is left after the fixed rows.
const (
	spacerHeight  = 1
	topHeight     = 8
	procMinHeight = 8
	bottomHeight  = 9
	footerHeight  = 1

	infoPct  = 45
	disksPct = 50
)

// Layout splits a width x height terminal into panels. It is recomputed on
// every draw. When the terminal is too short, rows are granted space in the
// order spacer, top row, footer, process table minimum, bottom row; rows
// further down that list shrink first.
func Layout(width, height int) Regions {
	width, height = max(width, 0), max(height, 0)

	avail := height
	take := func(n int) int {
		n = min(n, avail)
		avail -= n
		return n
	}
	spacer := take(spacerHeight)
	top := take(topHeight)
	footer := take(footerHeight)
	procs := take(procMinHeight)
	bottom := take(bottomHeight)
	procs += avail

	y := 0
	row := func(h int) Rect {
		r := Rect{X: 0, Y: y, W: width, H: h}
		y += h
		return r
	}

	var r Regions
	r.Spacer = row(spacer)
	topRow := row(top)
	r.Processes = row(procs)
	bottomRow := row(bottom)
	r.Footer = row(footer)

	r.Info, r.Gauges = splitH(topRow, infoPct)
	r.Disks, r.Network = splitH(bottomRow, disksPct)
	return r
}

func splitH(r Rect, leftPct int) (Rect, Rect) {
	lw := r.W * leftPct / 100
	return Rect{X: r.X, Y: r.Y, W: lw, H: r.H},
		Rect{X: r.X + lw, Y: r.Y, W: r.W - lw, H: r.H}
}
