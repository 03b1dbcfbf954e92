package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableStatusSelectable(t *testing.T) {
	tests := []struct {
		status TableStatus
		want   bool
	}{
		{StatusAvailable, true},
		{StatusOccupied, false},
		{StatusWarning, false},
		{StatusOvertime, false},
		{StatusCheckedOut, false},
		{StatusCleaning, false},
		{StatusReserved, true},
		{TableStatus(7), false},
	}

	for _, tt := range tests {
		t.Run(tt.status.Label(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Selectable())
		})
	}
}

func TestTableStatusLabel(t *testing.T) {
	assert.Equal(t, "available", StatusAvailable.Label())
	assert.Equal(t, "occupied", StatusOccupied.Label())
	assert.Equal(t, "reserved", StatusReserved.Label())
	assert.Equal(t, "unknown", TableStatus(42).Label())
}
