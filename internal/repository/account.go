package repository

import (
	"context"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

// Account defines the interface for account and inventory persistence.
// Accounts are keyed by (guildID, playerID); each account owns exactly
// one inventory.
type Account interface {
	CreateAccount(ctx context.Context, account *domain.Account, inventory *domain.Inventory) error
	GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error)
	SaveAccount(ctx context.Context, account *domain.Account) error
	DeleteAccount(ctx context.Context, guildID, playerID string) error
	ListAccounts(ctx context.Context, guildID string) ([]domain.Account, error)

	GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error)
	SaveInventory(ctx context.Context, inventory *domain.Inventory) error

	// ResetDailyGiftTotals zeroes every account's daily gift counter and
	// returns the number of rows touched. Driven by the reset worker.
	ResetDailyGiftTotals(ctx context.Context) (int64, error)

	BeginTx(ctx context.Context) (AccountTx, error)
}

// AccountTx defines the interface for multi-write account transactions
// (gift's dual-account update, buy's inventory+debit pair).
type AccountTx interface {
	Tx
	SaveAccount(ctx context.Context, account *domain.Account) error
	SaveInventory(ctx context.Context, inventory *domain.Inventory) error
}
