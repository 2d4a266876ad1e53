package gamble

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayOutcomeMagnitude(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		winnings := engine.Play(1000)
		if winnings != 1000 && winnings != -1000 {
			t.Fatalf("unexpected winnings %d: outcomes must be exactly +bet or -bet", winnings)
		}
	}
}

func TestPlayWinRateConvergesToOneThird(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(7))

	const trials = 300000
	wins := 0
	for i := 0; i < trials; i++ {
		if engine.Play(MinBet) > 0 {
			wins++
		}
	}

	rate := float64(wins) / float64(trials)
	assert.InDelta(t, 1.0/3.0, rate, 0.01, "empirical win rate %f", rate)
}

func TestPlayIsDeterministicForFixedSeed(t *testing.T) {
	first := NewEngineWithSource(rand.NewSource(99))
	second := NewEngineWithSource(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		assert.Equal(t, first.Play(2000), second.Play(2000))
	}
}

func TestExpectedValueIsNegative(t *testing.T) {
	engine := NewEngineWithSource(rand.NewSource(1))

	const trials = 100000
	total := 0
	for i := 0; i < trials; i++ {
		total += engine.Play(MinBet)
	}

	mean := float64(total) / float64(trials)
	expected := -float64(MinBet) / 3.0
	assert.InDelta(t, expected, mean, float64(MinBet)*0.02)
	assert.Less(t, mean, 0.0)
	assert.False(t, math.IsNaN(mean))
}
