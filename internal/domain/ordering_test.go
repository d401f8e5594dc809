package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTodos_PriorityThenRecency(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// Created at increasing timestamps: low, high, medium, high.
	todos := []*Todo{
		{ID: 1, Content: "low first", Priority: PriorityLow, CreatedAt: base},
		{ID: 2, Content: "high earlier", Priority: PriorityHigh, CreatedAt: base.Add(1 * time.Minute)},
		{ID: 3, Content: "medium", Priority: PriorityMedium, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 4, Content: "high later", Priority: PriorityHigh, CreatedAt: base.Add(3 * time.Minute)},
	}

	SortTodos(todos)

	require.Len(t, todos, 4)
	assert.Equal(t, int64(4), todos[0].ID) // high, newest first
	assert.Equal(t, int64(2), todos[1].ID)
	assert.Equal(t, int64(3), todos[2].ID)
	assert.Equal(t, int64(1), todos[3].ID)
}

func TestSortTodos_UnknownPrioritySinksLast(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	todos := []*Todo{
		{ID: 1, Priority: Priority("urgent"), CreatedAt: base.Add(time.Hour)},
		{ID: 2, Priority: PriorityLow, CreatedAt: base},
	}

	SortTodos(todos)

	assert.Equal(t, int64(2), todos[0].ID)
	assert.Equal(t, int64(1), todos[1].ID)
}

func TestSortTodos_StableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	todos := []*Todo{
		{ID: 1, Priority: PriorityMedium, CreatedAt: ts},
		{ID: 2, Priority: PriorityMedium, CreatedAt: ts},
	}

	SortTodos(todos)

	assert.Equal(t, int64(1), todos[0].ID)
	assert.Equal(t, int64(2), todos[1].ID)
}

func TestSortTodos_Empty(t *testing.T) {
	var todos []*Todo
	SortTodos(todos)
	assert.Empty(t, todos)
}
