package gift

import (
	"fmt"
	"time"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

// Send moves amount points from sender to recipient, enforcing the
// daily gift cap. On success both accounts are mutated in place and the
// caller must persist them as one atomic unit under both players'
// locks.
//
// The protocol deliberately does not check the sender's balance or
// reject sender == recipient; both are caller responsibilities. Cap
// logic applies uniformly even to a self-gift.
func Send(sender, recipient *domain.Account, amount int) (*domain.GiftTransaction, error) {
	tx := &domain.GiftTransaction{
		GuildID:     sender.GuildID,
		SenderID:    sender.PlayerID,
		RecipientID: recipient.PlayerID,
		Amount:      amount,
		SentAt:      time.Now().UTC(),
	}

	if amount <= 0 {
		return tx, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	if sender.DailyGiftTotal > domain.DailyGiftCap || sender.DailyGiftTotal+amount > domain.DailyGiftCap {
		return tx, fmt.Errorf("%w: %d gifted today, cap %d, requested %d",
			domain.ErrGiftLimitExceeded, sender.DailyGiftTotal, domain.DailyGiftCap, amount)
	}

	sender.Points -= amount
	sender.DailyGiftTotal += amount
	recipient.Points += amount

	tx.Accepted = true
	return tx, nil
}
