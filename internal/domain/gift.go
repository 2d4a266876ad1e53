package domain

import "time"

// DailyGiftCap is the maximum points a sender may gift per day,
// cumulative across all gifts. Reset to zero at local midnight by the
// gift reset worker, not by the protocol itself.
const DailyGiftCap = 1000

// GiftTransaction records the outcome of one gift attempt. It is
// ephemeral: returned to callers for display/auditing, never persisted.
type GiftTransaction struct {
	GuildID     string    `json:"guild_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Amount      int       `json:"amount"`
	Accepted    bool      `json:"accepted"`
	SentAt      time.Time `json:"sent_at"`
}
