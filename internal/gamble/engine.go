package gamble

import "math/rand"

// MinBet is the smallest stake callers may gamble. The engine itself
// does not enforce it; services guard bets before calling Play.
const MinBet = 1000

// winDenominator is the number of equally likely outcomes; exactly one
// of them wins, giving a 1-in-3 win chance.
const winDenominator = 3

// Engine resolves bets against an injected random source so that tests
// and callers control determinism.
type Engine struct {
	intn func(n int) int
}

// NewEngine creates an engine backed by the package-level math/rand source.
func NewEngine() *Engine {
	return &Engine{intn: rand.Intn}
}

// NewEngineWithSource creates an engine backed by the given source.
// Use this in tests with a fixed seed.
func NewEngineWithSource(src rand.Source) *Engine {
	r := rand.New(src)
	return &Engine{intn: r.Intn}
}

// Play resolves a single bet: a uniform draw over three outcomes pays
// +bet on a win and -bet otherwise. The expected value is negative on
// purpose; the house always wins.
func (e *Engine) Play(bet int) int {
	if e.intn(winDenominator) == 1 {
		return bet
	}
	return -bet
}
