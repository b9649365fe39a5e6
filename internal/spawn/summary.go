package spawn

import "sort"

// Summarize groups events by stage, sorted by stage index.
func Summarize(events []Event) []StageSummary {
	byStage := make(map[int]*StageSummary)
	for _, ev := range events {
		s, ok := byStage[ev.Stage]
		if !ok {
			byStage[ev.Stage] = &StageSummary{
				Stage:      ev.Stage,
				Enemies:    1,
				FirstSpawn: ev.Time,
				LastSpawn:  ev.Time,
			}
			continue
		}
		s.Enemies++
		if ev.Time < s.FirstSpawn {
			s.FirstSpawn = ev.Time
		}
		if ev.Time > s.LastSpawn {
			s.LastSpawn = ev.Time
		}
	}

	out := make([]StageSummary, 0, len(byStage))
	for _, s := range byStage {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stage < out[j].Stage })
	return out
}

// RemainingAfter counts the events scheduled strictly after t.
func RemainingAfter(events []Event, t float64) int {
	n := 0
	for _, ev := range events {
		if ev.Time > t {
			n++
		}
	}
	return n
}
