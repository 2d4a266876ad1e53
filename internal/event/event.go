package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// EventSchemaVersion is the current event payload schema version.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event types published by the engine.
const (
	AccountLeveledUp  Type = "account.leveled_up"
	PointsGifted      Type = "points.gifted"
	GambleResolved    Type = "gamble.resolved"
	GiftTotalsReset   Type = "gift.totals_reset"
	VoicePointsFlush  Type = "voice.points_flushed"
	AccountRegistered Type = "account.registered"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// LevelUpPayloadV1 is the typed payload for level-up events.
type LevelUpPayloadV1 struct {
	GuildID     string `json:"guild_id"`
	PlayerID    string `json:"player_id"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	BonusPoints int    `json:"bonus_points"`
	Timestamp   int64  `json:"timestamp"`
}

// GiftPayloadV1 is the typed payload for gift events.
type GiftPayloadV1 struct {
	GuildID     string `json:"guild_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      int    `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
}

// GamblePayloadV1 is the typed payload for gamble events.
type GamblePayloadV1 struct {
	GuildID   string `json:"guild_id"`
	PlayerID  string `json:"player_id"`
	Bet       int    `json:"bet"`
	Winnings  int    `json:"winnings"`
	Timestamp int64  `json:"timestamp"`
}

// NewLevelUpEvent builds an AccountLeveledUp event.
func NewLevelUpEvent(guildID, playerID string, oldLevel, newLevel, bonus int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountLeveledUp,
		Payload: LevelUpPayloadV1{
			GuildID:     guildID,
			PlayerID:    playerID,
			OldLevel:    oldLevel,
			NewLevel:    newLevel,
			BonusPoints: bonus,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously in subscription order.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
