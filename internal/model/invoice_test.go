package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInvoiceStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   InvoiceStatus
		wantOK bool
	}{
		{"pending", InvoiceStatusPending, true},
		{"paid", InvoiceStatusPaid, true},
		{" Paid ", InvoiceStatusPaid, true},
		{"PENDING", InvoiceStatusPending, true},
		{"", "", false},
		{"overdue", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseInvoiceStatus(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseInvoiceStatus(%q) ok", tt.in)
		assert.Equal(t, tt.want, got, "ParseInvoiceStatus(%q)", tt.in)
	}
}

func TestInvoiceStatusValid(t *testing.T) {
	assert.True(t, InvoiceStatusPending.Valid())
	assert.True(t, InvoiceStatusPaid.Valid())
	assert.False(t, InvoiceStatus("overdue").Valid())
	assert.False(t, InvoiceStatus("").Valid())
}
