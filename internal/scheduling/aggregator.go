package scheduling

import "sort"

// Aggregate collapses candidate tasks from every resolver into the final
// ordered list. Runs strictly sequentially after the per-property
// fan-out joins: the dedup map is never shared across workers.
//
// Collisions on DedupKey keep the higher-priority task; on equal
// priority the later arrival wins. Output is ordered by priority, then
// scheduled time, then insertion order.
func Aggregate(candidates []Task) []Task {
	byKey := make(map[string]int, len(candidates))
	kept := make([]Task, 0, len(candidates))

	for _, task := range candidates {
		key := task.DedupKey()
		if i, seen := byKey[key]; seen {
			if task.Priority.Rank() <= kept[i].Priority.Rank() {
				kept[i] = task
			}
			continue
		}
		byKey[key] = len(kept)
		kept = append(kept, task)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Priority.Rank() != kept[j].Priority.Rank() {
			return kept[i].Priority.Rank() < kept[j].Priority.Rank()
		}
		return kept[i].Time < kept[j].Time
	})
	return kept
}
