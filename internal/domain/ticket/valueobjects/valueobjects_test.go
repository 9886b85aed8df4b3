package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "low", want: PriorityLow},
		{input: "medium", want: PriorityMedium},
		{input: "high", want: PriorityHigh},
		{input: "urgent", want: PriorityUrgent},
		{input: "critical", wantErr: true},
		{input: "", wantErr: true},
		{input: "HIGH", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := NewPriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.True(t, p.IsValid())
		})
	}
}

func TestNewStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "open", want: StatusOpen},
		{input: "in-progress", want: StatusInProgress},
		{input: "resolved", want: StatusResolved},
		{input: "closed", want: StatusClosed},
		{input: "pending", wantErr: true},
		{input: "", wantErr: true},
		{input: "in progress", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := NewStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
			assert.True(t, s.IsValid())
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())

	assert.True(t, PriorityLow.IsLow())
	assert.True(t, PriorityMedium.IsMedium())
	assert.True(t, PriorityHigh.IsHigh())
	assert.True(t, PriorityUrgent.IsUrgent())
	assert.False(t, PriorityLow.IsHigh())
}
