package currency

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{1050, "$10.50"},
		{123456, "$1,234.56"},
		{123456789, "$1,234,567.89"},
		{-1050, "-$10.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.cents), "Format(%d)", tt.cents)
	}
}

func TestFormatNull(t *testing.T) {
	assert.Equal(t, Format(0), FormatNull(sql.NullInt64{}))
	assert.Equal(t, "$10.50", FormatNull(sql.NullInt64{Int64: 1050, Valid: true}))
}

func TestMajorUnits(t *testing.T) {
	assert.Equal(t, "10.5", MajorUnits(1050).String())
	assert.Equal(t, "0", MajorUnits(0).String())
	assert.Equal(t, "0.05", MajorUnits(5).String())
	assert.True(t, MajorUnits(123456).Equal(MajorUnits(123456)))
	assert.Equal(t, "1234.56", MajorUnits(123456).String())
}
