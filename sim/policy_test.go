package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReplacementPolicy_ByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{PolicyFIFO, "fifo"},
		{PolicyLRU, "lru"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewReplacementPolicy(tt.name, 3)
			assert.Equal(t, tt.want, p.Name())
			assert.Equal(t, 3, p.Frames().Capacity())
		})
	}
}

func TestNewReplacementPolicy_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() { NewReplacementPolicy("clock", 3) })
}

func TestNewReplacementPolicy_CapacityOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { NewReplacementPolicy(PolicyFIFO, 0) })
	assert.Panics(t, func() { NewReplacementPolicy(PolicyLRU, 11) })
}

func TestIsValidReplacementPolicy(t *testing.T) {
	assert.True(t, IsValidReplacementPolicy("fifo"))
	assert.True(t, IsValidReplacementPolicy("lru"))
	assert.False(t, IsValidReplacementPolicy("FIFO"))
	assert.False(t, IsValidReplacementPolicy(""))
}
