package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

// execQuerier is the Exec slice shared by pgxpool.Pool and pgx.Tx, so
// the save helpers work inside and outside a transaction.
type execQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func saveAccount(ctx context.Context, db execQuerier, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET points = $3, level = $4, xp = $5, daily_gift_total = $6, energy = $7, updated_at = NOW()
		WHERE guild_id = $1 AND player_id = $2
	`
	tag, err := db.Exec(ctx, query,
		account.GuildID, account.PlayerID, account.Points, account.Level,
		account.XP, account.DailyGiftTotal, account.Energy)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrAccountNotFound, account.GuildID, account.PlayerID)
	}
	return nil
}

func saveInventory(ctx context.Context, db execQuerier, inventory *domain.Inventory) error {
	contents, err := json.Marshal(inventory.Contents)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory contents: %w", err)
	}

	query := `
		UPDATE inventories
		SET capacity = $2, size = $3, contents = $4, updated_at = NOW()
		WHERE inventory_id = $1
	`
	tag, err := db.Exec(ctx, query, inventory.ID, inventory.Capacity, inventory.Size, contents)
	if err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, inventory.ID)
	}
	return nil
}
