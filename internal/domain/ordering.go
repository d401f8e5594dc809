package domain

import (
	"sort"
)

// SortTodos orders todos for display: priority rank descending, then
// creation time descending so the newest entries lead within each level.
// The sort is stable, so todos sharing a priority and timestamp keep
// their incoming order.
func SortTodos(todos []*Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		ri, rj := todos[i].Priority.Rank(), todos[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
}
