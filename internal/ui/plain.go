package ui

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/sysdash/internal/format"
	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// RenderPlain formats s as an uncolored report for dumb terminals and pipes.
func RenderPlain(s model.Snapshot) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=== System Health Dashboard ===")
	fmt.Fprintf(&b, "Hostname:     %s\n", s.Hostname)
	fmt.Fprintf(&b, "Kernel:       %s\n", s.Kernel)
	fmt.Fprintf(&b, "Uptime:       %s\n", format.Uptime(s.Uptime))
	fmt.Fprintf(&b, "Load Avg:     %.2f  %.2f  %.2f  (1m / 5m / 15m)\n", s.Load.One, s.Load.Five, s.Load.Fifteen)
	fmt.Fprintf(&b, "CPU Usage:    %.2f%%\n", s.CPUUsage)
	fmt.Fprintf(&b, "Memory:       %s / %s GB\n", format.GB(s.MemoryUsed), format.GB(s.MemoryTotal))
	fmt.Fprintf(&b, "Swap:         %s / %s GB\n", format.GB(s.SwapUsed), format.GB(s.SwapTotal))

	fmt.Fprintln(&b, "\nDisks:")
	for _, d := range s.Disks {
		fmt.Fprintf(&b, "  %-15s %s / %s GB\n", d.Name, format.GB(d.Used), format.GB(d.Total))
	}

	fmt.Fprintln(&b, "\nNetwork:")
	for _, n := range s.Network {
		fmt.Fprintf(&b, "  %-15s RX: %10s   TX: %10s\n", n.Interface, format.Bytes(n.RxBytes), format.Bytes(n.TxBytes))
	}

	fmt.Fprintf(&b, "\nTop Processes (of %s):\n", format.Count(s.ProcessCount))
	fmt.Fprintf(&b, "  %7s  %6s  %8s  %s\n", "PID", "CPU%", "MEM(MB)", "COMMAND")
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("-", 60))
	for _, p := range s.Processes {
		fmt.Fprintf(&b, "  %7d  %5.1f%%  %8.1f  %s\n", p.PID, p.CPUUsage, p.MemoryMB, format.Command(p.Cmd))
	}
	return b.String()
}
