package domain

// Statistics summarizes a todo collection by priority.
type Statistics struct {
	Total          int `json:"total"`
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
}

// ComputeStatistics counts todos per priority level.
// Total counts every todo, so for a collection holding only valid
// priorities Total equals the sum of the three buckets.
func ComputeStatistics(todos []*Todo) *Statistics {
	stats := &Statistics{Total: len(todos)}
	for _, todo := range todos {
		switch todo.Priority {
		case PriorityHigh:
			stats.HighPriority++
		case PriorityMedium:
			stats.MediumPriority++
		case PriorityLow:
			stats.LowPriority++
		}
	}
	return stats
}
