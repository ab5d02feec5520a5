package sampler

import (
	"os"
	"strings"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Sampler is the gopsutil backed Provider. It owns the bookkeeping that turns
// cumulative kernel counters into usage percentages between refreshes.
type Sampler struct {
	prevTotal float64
	prevIdle  float64
	cpuPct    float64

	memUsed, memTotal   uint64
	swapUsed, swapTotal uint64

	// procs keeps one handle per live pid so Percent can diff cpu times
	// against the previous refresh. Pruned to the live set every refresh.
	procs map[int32]*process.Process
	rows  []model.ProcessInfo

	// sameProcess reports whether a cached handle still names the process
	// now running under its pid.
	sameProcess func(*process.Process) bool

	disks []model.DiskUsage
	nets  []model.NetworkIO
}

var _ Provider = (*Sampler)(nil)

func New() *Sampler {
	return &Sampler{
		procs:       make(map[int32]*process.Process),
		sameProcess: stillRunning,
	}
}

// RefreshCPU samples aggregate cpu times. The first call only primes the
// baseline and reports 0.
func (s *Sampler) RefreshCPU() error {
	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		s.cpuPct = 0
		return errOrEmpty(err, "cpu times")
	}
	cur := times[0]
	curTotal := cur.Total()
	curIdle := cur.Idle + cur.Iowait

	s.cpuPct = 0
	if s.prevTotal > 0 {
		dt := curTotal - s.prevTotal
		di := curIdle - s.prevIdle
		if dt > 0 {
			s.cpuPct = clampPct(100 * (1 - di/dt))
		}
	}
	s.prevTotal, s.prevIdle = curTotal, curIdle
	return nil
}

func (s *Sampler) RefreshMemory() error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		s.memUsed, s.memTotal = 0, 0
		return err
	}
	s.memUsed, s.memTotal = vm.Used, vm.Total
	return nil
}

func (s *Sampler) RefreshSwap() error {
	sw, err := mem.SwapMemory()
	if err != nil {
		s.swapUsed, s.swapTotal = 0, 0
		return err
	}
	s.swapUsed, s.swapTotal = sw.Used, sw.Total
	return nil
}

// RefreshProcesses walks the process table. Processes that vanish or deny
// access mid-walk keep zero values for the fields that could not be read.
func (s *Sampler) RefreshProcesses() error {
	pids, err := process.Pids()
	if err != nil {
		s.rows = nil
		return err
	}

	live := make(map[int32]*process.Process, len(pids))
	rows := make([]model.ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		p, err := s.handle(pid)
		if err != nil {
			continue
		}
		live[pid] = p

		cpuPct, _ := p.Percent(0)
		var memMB float64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			memMB = float64(mi.RSS) / (1024 * 1024)
		}
		rows = append(rows, model.ProcessInfo{
			PID:      uint32(pid),
			CPUUsage: cpuPct,
			MemoryMB: memMB,
			Cmd:      commandLine(p),
		})
	}
	s.procs = live
	s.rows = rows
	return nil
}

// handle returns the cached handle for pid, or a fresh one when the pid is
// new or has been reused by another process since the last refresh.
func (s *Sampler) handle(pid int32) (*process.Process, error) {
	if p, ok := s.procs[pid]; ok && s.sameProcess(p) {
		return p, nil
	}
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}
	// IsRunning compares against the create time cached here.
	_, _ = p.CreateTime()
	return p, nil
}

func stillRunning(p *process.Process) bool {
	running, err := p.IsRunning()
	return err == nil && running
}

func (s *Sampler) RefreshDisks() error {
	parts, err := disk.Partitions(false)
	if err != nil {
		s.disks = nil
		return err
	}
	disks := make([]model.DiskUsage, 0, len(parts))
	for _, p := range parts {
		u, err := disk.Usage(p.Mountpoint)
		if err != nil || u == nil {
			continue
		}
		var used uint64
		if u.Total > u.Free {
			used = u.Total - u.Free
		}
		disks = append(disks, model.DiskUsage{Name: p.Device, Used: used, Total: u.Total})
	}
	s.disks = disks
	return nil
}

func (s *Sampler) RefreshNetwork() error {
	counters, err := net.IOCounters(true)
	if err != nil {
		s.nets = nil
		return err
	}
	nets := make([]model.NetworkIO, 0, len(counters))
	for _, c := range counters {
		nets = append(nets, model.NetworkIO{Interface: c.Name, RxBytes: c.BytesRecv, TxBytes: c.BytesSent})
	}
	s.nets = nets
	return nil
}

func (s *Sampler) CPUUsage() float64              { return s.cpuPct }
func (s *Sampler) Memory() (used, total uint64)   { return s.memUsed, s.memTotal }
func (s *Sampler) Swap() (used, total uint64)     { return s.swapUsed, s.swapTotal }
func (s *Sampler) Processes() []model.ProcessInfo { return s.rows }
func (s *Sampler) Disks() []model.DiskUsage       { return s.disks }
func (s *Sampler) Networks() []model.NetworkIO    { return s.nets }
func (s *Sampler) Hostname() (string, error)      { return os.Hostname() }
func (s *Sampler) KernelVersion() (string, error) { return host.KernelVersion() }
func (s *Sampler) Uptime() (uint64, error)        { return host.Uptime() }

func (s *Sampler) LoadAverage() (model.LoadAvg, error) {
	avg, err := load.Avg()
	if err != nil || avg == nil {
		return model.LoadAvg{}, errOrEmpty(err, "load average")
	}
	return model.LoadAvg{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}

// commandLine joins argv, falling back to the process name for kernel
// threads and zombies whose cmdline is empty.
func commandLine(p *process.Process) string {
	if args, err := p.CmdlineSlice(); err == nil {
		if cmd := strings.TrimSpace(strings.Join(args, " ")); cmd != "" {
			return cmd
		}
	}
	name, _ := p.Name()
	return name
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
