package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetForPage(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{1, 0},
		{2, 6},
		{5, 24},
		{0, 0},  // clamped to page 1
		{-3, 0}, // clamped to page 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, offsetForPage(tt.page), "offsetForPage(%d)", tt.page)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pageCount(tt.total), "pageCount(%d)", tt.total)
	}
}
