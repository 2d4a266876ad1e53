package voice

import (
	"context"
	"sync"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/metrics"
)

// TickPoints is what one scheduler tick pays an active session.
const TickPoints = 15

// PointsAwarder is the slice of the progression service the tracker
// needs to flush accumulated session points.
type PointsAwarder interface {
	AwardPoints(ctx context.Context, guildID, playerID string, delta int, reset bool) (*domain.Account, error)
}

// session is one player's live voice presence. A session earns points
// on each tick only while none of the flags are set.
type session struct {
	muted    bool
	deafened bool
	afk      bool
	points   int
}

func (s *session) active() bool {
	return !s.muted && !s.deafened && !s.afk
}

// Tracker keeps in-memory voice sessions keyed by (guild, player).
// Points accumulate in memory and only hit storage when a session ends,
// so a crashed process loses at most the unflushed balances.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]*session
	awarder  PointsAwarder
}

// NewTracker creates an empty tracker flushing through awarder.
func NewTracker(awarder PointsAwarder) *Tracker {
	return &Tracker{
		sessions: make(map[string]*session),
		awarder:  awarder,
	}
}

func sessionKey(guildID, playerID string) string {
	return guildID + ":" + playerID
}

// Join starts a session for the player. Joining an already-tracked
// player keeps the existing session and its accumulated points.
func (t *Tracker) Join(guildID, playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := sessionKey(guildID, playerID)
	if _, ok := t.sessions[key]; !ok {
		t.sessions[key] = &session{}
	}
}

// Update applies the player's current flag state. Repeating the same
// state is a no-op; an update for an untracked player starts a session
// first, since gateways can miss the original join.
func (t *Tracker) Update(guildID, playerID string, muted, deafened, afk bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := sessionKey(guildID, playerID)
	s, ok := t.sessions[key]
	if !ok {
		s = &session{}
		t.sessions[key] = s
	}
	s.muted = muted
	s.deafened = deafened
	s.afk = afk
}

// Tick credits TickPoints to every session with no flag set.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range t.sessions {
		if s.active() {
			s.points += TickPoints
			metrics.VoicePointsAccrued.Add(TickPoints)
		}
	}
}

// Leave ends the player's session and flushes its accumulated points.
// Leaving an untracked player is a no-op.
func (t *Tracker) Leave(ctx context.Context, guildID, playerID string) error {
	t.mu.Lock()
	key := sessionKey(guildID, playerID)
	s, ok := t.sessions[key]
	if ok {
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	if !ok || s.points == 0 {
		return nil
	}

	_, err := t.awarder.AwardPoints(ctx, guildID, playerID, s.points, false)
	return err
}

// Close flushes every live session. Used on shutdown; per-player
// failures are logged and do not block the rest.
func (t *Tracker) Close(ctx context.Context) error {
	t.mu.Lock()
	drained := t.sessions
	t.sessions = make(map[string]*session)
	t.mu.Unlock()

	var firstErr error
	for key, s := range drained {
		if s.points == 0 {
			continue
		}
		guildID, playerID := splitKey(key)
		if _, err := t.awarder.AwardPoints(ctx, guildID, playerID, s.points, false); err != nil {
			logger.FromContext(ctx).Error("Failed to flush voice session",
				"guild_id", guildID,
				"player_id", playerID,
				"points", s.points,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// ActiveSessions returns how many sessions are currently tracked.
func (t *Tracker) ActiveSessions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

func splitKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
