package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogicum-service/internal/pagination"
)

func TestClamp_PageCount(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		size       int
		wantPages  int
	}{
		{"empty set is one page", 0, 10, 1},
		{"exact division", 30, 10, 3},
		{"remainder adds a page", 31, 10, 4},
		{"single item", 1, 10, 1},
		{"size one", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := pagination.Clamp(tt.totalItems, tt.size, 1)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.totalItems, page.TotalItems)
		})
	}
}

func TestClamp_RequestedNumber(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		wantNumber int
	}{
		{"zero falls back to first", 0, 1},
		{"negative falls back to first", -3, 1},
		{"first page", 1, 1},
		{"middle page", 2, 2},
		{"last page", 4, 4},
		{"past the end clamps to last", 99, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := pagination.Clamp(31, 10, tt.requested)
			assert.Equal(t, tt.wantNumber, page.Number)
		})
	}
}

func TestClamp_ZeroAndNegativeMatchFirstPage(t *testing.T) {
	first := pagination.Clamp(25, 10, 1)
	assert.Equal(t, first, pagination.Clamp(25, 10, 0))
	assert.Equal(t, first, pagination.Clamp(25, 10, -1))
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Clamp(31, 10, 1).Offset())
	assert.Equal(t, 10, pagination.Clamp(31, 10, 2).Offset())
	assert.Equal(t, 30, pagination.Clamp(31, 10, 4).Offset())
}

func TestPage_Navigation(t *testing.T) {
	first := pagination.Clamp(31, 10, 1)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	middle := pagination.Clamp(31, 10, 2)
	assert.True(t, middle.HasNext())
	assert.True(t, middle.HasPrev())

	last := pagination.Clamp(31, 10, 4)
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrev())

	only := pagination.Clamp(5, 10, 1)
	assert.False(t, only.HasNext())
	assert.False(t, only.HasPrev())
}

func TestClamp_LastPageSize(t *testing.T) {
	// 31 items at size 10: the last page holds the single remainder item.
	last := pagination.Clamp(31, 10, 4)
	remaining := last.TotalItems - last.Offset()
	assert.Equal(t, 1, remaining)

	// 30 items at size 10: the last page is full.
	full := pagination.Clamp(30, 10, 3)
	assert.Equal(t, 10, full.TotalItems-full.Offset())
}
