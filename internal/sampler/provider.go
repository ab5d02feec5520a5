package sampler

import "github.com/Dicklesworthstone/sysdash/internal/model"

// Provider is a source of host metrics. Each category is refreshed on its own
// and then read back; readers return whatever the last successful refresh
// cached. A Provider carries all of its state itself so that collection never
// depends on package globals.
type Provider interface {
	RefreshCPU() error
	RefreshMemory() error
	RefreshSwap() error
	RefreshProcesses() error
	RefreshDisks() error
	RefreshNetwork() error

	CPUUsage() float64
	Memory() (used, total uint64)
	Swap() (used, total uint64)
	Processes() []model.ProcessInfo
	Disks() []model.DiskUsage
	Networks() []model.NetworkIO

	Hostname() (string, error)
	KernelVersion() (string, error)
	Uptime() (uint64, error)
	LoadAverage() (model.LoadAvg, error)
}
