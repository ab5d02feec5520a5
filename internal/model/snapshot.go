package model

import "time"

// LoadAvg is the 1, 5 and 15 minute run-queue averages.
type LoadAvg struct {
	One     float64
	Five    float64
	Fifteen float64
}

// DiskUsage is one mounted filesystem, sizes in bytes.
type DiskUsage struct {
	Name  string
	Used  uint64
	Total uint64
}

// NetworkIO holds cumulative counters for one interface since boot.
type NetworkIO struct {
	Interface string
	RxBytes   uint64
	TxBytes   uint64
}

// ProcessInfo is one ranked process row.
type ProcessInfo struct {
	PID      uint32
	CPUUsage float64 // percent of one core, may exceed 100 on multi-core hosts
	MemoryMB float64
	Cmd      string
}

// Snapshot is every host metric captured at one refresh tick. A Snapshot is
// built once by the collector and never modified afterwards; each tick
// replaces it wholesale.
type Snapshot struct {
	Taken    time.Time
	Hostname string
	Kernel   string
	Uptime   uint64 // seconds
	Load     LoadAvg
	CPUUsage float64 // percent 0-100

	MemoryUsed  uint64
	MemoryTotal uint64
	SwapUsed    uint64
	SwapTotal   uint64

	Disks     []DiskUsage
	Network   []NetworkIO
	Processes []ProcessInfo

	// ProcessCount is the size of the table Processes was ranked from.
	ProcessCount int
}
