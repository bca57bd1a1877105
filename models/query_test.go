package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		perPage        int64
		page           int64
		count          int
		remaining      int64
		remainingPages int64
	}{
		{"first of many", 35, 10, 0, 10, 25, 3},
		{"middle page", 35, 10, 1, 10, 15, 2},
		{"last full page", 35, 10, 2, 10, 5, 1},
		{"final partial page", 35, 10, 3, 5, 0, 0},
		{"beyond the end", 35, 10, 10, 0, 0, 0},
		{"exact multiple", 20, 10, 0, 10, 10, 1},
		{"empty result set", 0, 10, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.total, tt.perPage, tt.page, tt.count)
			require.Equal(t, tt.remaining, info.RemainingCount)
			require.Equal(t, tt.remainingPages, info.RemainingPages)
			require.Equal(t, tt.count, info.Count)
		})
	}
}
