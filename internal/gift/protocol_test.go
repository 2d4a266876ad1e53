package gift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

func newAccounts() (*domain.Account, *domain.Account) {
	sender := domain.NewAccount("guild-1", "sender", "inv-s")
	sender.Points = 5000
	recipient := domain.NewAccount("guild-1", "recipient", "inv-r")
	recipient.Points = 100
	return sender, recipient
}

func TestSend_Success(t *testing.T) {
	sender, recipient := newAccounts()

	tx, err := Send(sender, recipient, 300)

	require.NoError(t, err)
	assert.True(t, tx.Accepted)
	assert.Equal(t, 4700, sender.Points)
	assert.Equal(t, 300, sender.DailyGiftTotal)
	assert.Equal(t, 400, recipient.Points)
}

func TestSend_ExactlyReachingCapSucceeds(t *testing.T) {
	sender, recipient := newAccounts()
	sender.DailyGiftTotal = 800

	tx, err := Send(sender, recipient, 200)

	require.NoError(t, err)
	assert.True(t, tx.Accepted)
	assert.Equal(t, domain.DailyGiftCap, sender.DailyGiftTotal)
}

func TestSend_OverCapFails(t *testing.T) {
	sender, recipient := newAccounts()
	sender.DailyGiftTotal = 800

	tx, err := Send(sender, recipient, 300)

	assert.ErrorIs(t, err, domain.ErrGiftLimitExceeded)
	assert.False(t, tx.Accepted)
	assert.Equal(t, 5000, sender.Points, "failed gift must not mutate accounts")
	assert.Equal(t, 800, sender.DailyGiftTotal)
	assert.Equal(t, 100, recipient.Points)
}

func TestSend_CapAlreadyExceededFails(t *testing.T) {
	sender, recipient := newAccounts()
	sender.DailyGiftTotal = domain.DailyGiftCap + 1

	_, err := Send(sender, recipient, 1)

	assert.ErrorIs(t, err, domain.ErrGiftLimitExceeded)
}

func TestSend_NonPositiveAmountFails(t *testing.T) {
	sender, recipient := newAccounts()

	_, err := Send(sender, recipient, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = Send(sender, recipient, -50)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestSend_NoBalanceCheckInsideProtocol(t *testing.T) {
	sender, recipient := newAccounts()
	sender.Points = 10

	tx, err := Send(sender, recipient, 500)

	// Balance guarding is the caller's job; the protocol lets points go negative.
	require.NoError(t, err)
	assert.True(t, tx.Accepted)
	assert.Equal(t, -490, sender.Points)
}

func TestSend_SelfGiftUsesNormalCapLogic(t *testing.T) {
	sender := domain.NewAccount("guild-1", "sender", "inv-s")
	sender.Points = 2000

	tx, err := Send(sender, sender, 400)

	// The protocol does not special-case sender == recipient; rejecting
	// self-gifts is a caller-level rule.
	require.NoError(t, err)
	assert.True(t, tx.Accepted)
	assert.Equal(t, 2000, sender.Points, "debit and credit cancel out on the same account")
	assert.Equal(t, 400, sender.DailyGiftTotal)
}
