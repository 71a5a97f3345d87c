package service

import (
	"math"
	"testing"

	apperrors "inspection-scheduler-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateWeek(t *testing.T) {
	tests := []struct {
		week  string
		valid bool
	}{
		{"2024-W01", true},
		{"2024-W52", true},
		{"2024-W53", false},
		{"2020-W53", true},
		{"2026-W53", true},
		{"2027-W53", false},
		{"2024-W00", false},
		{"2024-W54", false},
		{"2024-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.week, func(t *testing.T) {
			err := validateWeek(tt.week)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidWeek)
			}
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
		wantOffset       int
	}{
		{"defaults", 0, 0, 1, defaultPageSize, 0},
		{"third page", 3, 10, 3, 10, 20},
		{"oversized page size", 2, maxPageSize + 1, 2, defaultPageSize, defaultPageSize},
		{"huge page is clamped", math.MaxInt, maxPageSize, maxPage, maxPageSize, (maxPage - 1) * maxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize, offset := normalizePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPS, pageSize)
			assert.Equal(t, tt.wantOffset, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}
