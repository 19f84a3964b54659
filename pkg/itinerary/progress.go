package itinerary

import "math"

// Progress derives the completion percentage (0..100) from the static mission
// list and the current completion state. Keys in state that do not match a
// real task id are ignored; an empty mission list yields 0 rather than a
// division by zero.
func Progress(missions []DayMission, state map[string]bool) int {
	total := 0
	completed := 0
	for _, m := range missions {
		for _, t := range m.Tasks {
			total++
			if state[t.ID] {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
