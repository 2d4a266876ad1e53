package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPThreshold(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 65},
		{2, 210},
		{5, 1125},
		{10, 4250},
		{27, 29835},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, XPThreshold(tt.level), "level %d", tt.level)
	}
}

func TestXPThresholdMonotonic(t *testing.T) {
	for level := 1; level < 100; level++ {
		assert.Less(t, XPThreshold(level), XPThreshold(level+1))
	}
}

func TestNeedsLevelUp(t *testing.T) {
	assert.False(t, NeedsLevelUp(1, 64))
	assert.True(t, NeedsLevelUp(1, 65))
	assert.True(t, NeedsLevelUp(1, 66))
	assert.False(t, NeedsLevelUp(5, 1124))
	assert.True(t, NeedsLevelUp(5, 1125))
}

func TestLevelUpBonusBands(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 500},
		{5, 500},
		{6, 900},
		{10, 900},
		{11, 1500},
		{15, 1500},
		{16, 3000},
		{18, 3000},
		{19, 4800},
		{21, 4800},
		{22, 10000},
		{24, 10000},
		{25, 25000},
		{26, 25000},
		{27, 50000},
		{40, 50000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelUpBonus(tt.level), "level %d", tt.level)
	}
}

func TestRankLadder(t *testing.T) {
	assert.Equal(t, "F5", Rank(1))
	assert.Equal(t, "F1", Rank(5))
	assert.Equal(t, "E5", Rank(6))
	assert.Equal(t, "D1", Rank(15))
	assert.Equal(t, "C3", Rank(16))
	assert.Equal(t, "B3", Rank(19))
	assert.Equal(t, "A1", Rank(24))
	assert.Equal(t, "S2", Rank(25))
	assert.Equal(t, "SS", Rank(27))
}

func TestRankClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "F5", Rank(0))
	assert.Equal(t, "F5", Rank(-3))
	assert.Equal(t, "SS", Rank(28))
	assert.Equal(t, "SS", Rank(100))
}
