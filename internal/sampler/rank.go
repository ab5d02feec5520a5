package sampler

import (
	"sort"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// TopK is how many processes a Snapshot carries.
const TopK = 10

// TopProcesses returns at most k processes ordered by descending CPU usage.
// The input is left untouched. Ties keep their input order, and NaN compares
// equal to every value so a bad sample can never break the sort.
func TopProcesses(all []model.ProcessInfo, k int) []model.ProcessInfo {
	if k <= 0 || len(all) == 0 {
		return nil
	}
	ranked := make([]model.ProcessInfo, len(all))
	copy(ranked, all)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPUUsage > ranked[j].CPUUsage
	})
	if len(ranked) > k {
		ranked = ranked[:k:k]
	}
	return ranked
}
