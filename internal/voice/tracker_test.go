package voice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

type MockAwarder struct {
	mock.Mock
}

func (m *MockAwarder) AwardPoints(ctx context.Context, guildID, playerID string, delta int, reset bool) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID, delta, reset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func TestTickPaysOnlyActiveSessions(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))
	tracker.Join("g", "active")
	tracker.Join("g", "muted")
	tracker.Update("g", "muted", true, false, false)

	tracker.Tick()
	tracker.Tick()

	awarder := new(MockAwarder)
	tracker.awarder = awarder
	awarder.On("AwardPoints", mock.Anything, "g", "active", 2*TickPoints, false).Return(&domain.Account{}, nil)

	require.NoError(t, tracker.Leave(context.Background(), "g", "active"))
	require.NoError(t, tracker.Leave(context.Background(), "g", "muted"))

	awarder.AssertExpectations(t)
	// The muted session accrued nothing, so no flush happens for it.
	awarder.AssertNumberOfCalls(t, "AwardPoints", 1)
}

func TestUpdateIsIdempotent(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))
	tracker.Join("g", "p")

	tracker.Update("g", "p", true, false, false)
	tracker.Update("g", "p", true, false, false)
	tracker.Tick()

	tracker.Update("g", "p", false, false, false)
	tracker.Tick()

	awarder := new(MockAwarder)
	tracker.awarder = awarder
	awarder.On("AwardPoints", mock.Anything, "g", "p", TickPoints, false).Return(&domain.Account{}, nil)

	require.NoError(t, tracker.Leave(context.Background(), "g", "p"))
	awarder.AssertExpectations(t)
}

func TestUpdateStartsSessionForUntrackedPlayer(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))

	tracker.Update("g", "p", false, false, false)

	assert.Equal(t, 1, tracker.ActiveSessions())
}

func TestDeafenedAndAFKBlockAccrual(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))
	tracker.Join("g", "deaf")
	tracker.Join("g", "afk")
	tracker.Update("g", "deaf", false, true, false)
	tracker.Update("g", "afk", false, false, true)

	tracker.Tick()

	require.NoError(t, tracker.Leave(context.Background(), "g", "deaf"))
	require.NoError(t, tracker.Leave(context.Background(), "g", "afk"))
	assert.Equal(t, 0, tracker.ActiveSessions())
}

func TestLeaveUntrackedIsNoop(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))

	assert.NoError(t, tracker.Leave(context.Background(), "g", "ghost"))
}

func TestJoinKeepsExistingSession(t *testing.T) {
	tracker := NewTracker(new(MockAwarder))
	tracker.Join("g", "p")
	tracker.Tick()

	// A duplicate join must not zero the accumulated points.
	tracker.Join("g", "p")

	awarder := new(MockAwarder)
	tracker.awarder = awarder
	awarder.On("AwardPoints", mock.Anything, "g", "p", TickPoints, false).Return(&domain.Account{}, nil)

	require.NoError(t, tracker.Leave(context.Background(), "g", "p"))
	awarder.AssertExpectations(t)
}

func TestCloseFlushesAllSessions(t *testing.T) {
	awarder := new(MockAwarder)
	tracker := NewTracker(awarder)
	tracker.Join("g", "one")
	tracker.Join("g", "two")
	tracker.Tick()

	awarder.On("AwardPoints", mock.Anything, "g", "one", TickPoints, false).Return(&domain.Account{}, nil)
	awarder.On("AwardPoints", mock.Anything, "g", "two", TickPoints, false).Return(&domain.Account{}, nil)

	require.NoError(t, tracker.Close(context.Background()))
	assert.Equal(t, 0, tracker.ActiveSessions())
	awarder.AssertExpectations(t)
}
