package sampler

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// UnknownHost is reported when the hostname cannot be read.
const UnknownHost = "unknown"

// Collector assembles Snapshots from a Provider. It keeps no metric state;
// everything it reads comes from the Provider handed to Collect.
type Collector struct {
	log logr.Logger
	now func() time.Time
}

func NewCollector(log logr.Logger) *Collector {
	return &Collector{log: log, now: time.Now}
}

// Collect refreshes every category of p and reads the results into a new
// Snapshot. A category that fails to refresh or read falls back to its zero
// value (or UnknownHost) and the rest of the Snapshot is still filled in.
func (c *Collector) Collect(p Provider) model.Snapshot {
	snap := model.Snapshot{Taken: c.now(), Hostname: UnknownHost}

	if c.ok("cpu", p.RefreshCPU()) {
		snap.CPUUsage = p.CPUUsage()
	}
	if c.ok("memory", p.RefreshMemory()) {
		snap.MemoryUsed, snap.MemoryTotal = p.Memory()
	}
	if c.ok("swap", p.RefreshSwap()) {
		snap.SwapUsed, snap.SwapTotal = p.Swap()
	}
	if c.ok("processes", p.RefreshProcesses()) {
		all := p.Processes()
		snap.ProcessCount = len(all)
		snap.Processes = TopProcesses(all, TopK)
	}
	if c.ok("disks", p.RefreshDisks()) {
		snap.Disks = append([]model.DiskUsage(nil), p.Disks()...)
	}
	if c.ok("network", p.RefreshNetwork()) {
		snap.Network = append([]model.NetworkIO(nil), p.Networks()...)
	}

	if name, err := p.Hostname(); c.ok("hostname", err) && name != "" {
		snap.Hostname = name
	}
	if kernel, err := p.KernelVersion(); c.ok("kernel", err) {
		snap.Kernel = kernel
	}
	if up, err := p.Uptime(); c.ok("uptime", err) {
		snap.Uptime = up
	}
	if avg, err := p.LoadAverage(); c.ok("load", err) {
		snap.Load = avg
	}
	return snap
}

func (c *Collector) ok(category string, err error) bool {
	if err != nil {
		c.log.V(1).Info("metric unavailable, using default", "category", category, "error", err.Error())
		return false
	}
	return true
}
