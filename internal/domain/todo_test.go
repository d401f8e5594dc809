package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		ok       bool
	}{
		{name: "high", input: "high", expected: PriorityHigh, ok: true},
		{name: "medium", input: "medium", expected: PriorityMedium, ok: true},
		{name: "low", input: "low", expected: PriorityLow, ok: true},
		{name: "empty defaults to medium", input: "", expected: PriorityMedium, ok: true},
		{name: "unknown value rejected", input: "urgent", expected: Priority("urgent"), ok: false},
		{name: "case sensitive", input: "High", expected: Priority("High"), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 0, Priority("urgent").Rank())
	assert.Equal(t, 0, Priority("").Rank())
}

func TestTodoIsValid(t *testing.T) {
	valid := Todo{Content: "Buy milk", Priority: PriorityLow, CreatedAt: time.Now()}
	assert.True(t, valid.IsValid())

	assert.False(t, Todo{Content: "", Priority: PriorityLow}.IsValid())
	assert.False(t, Todo{Content: "Buy milk", Priority: Priority("urgent")}.IsValid())
}
