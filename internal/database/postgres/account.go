package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/repository"
)

// AccountRepository implements repository.Account for PostgreSQL.
// Accounts are keyed (guild_id, player_id); inventory contents live in
// a JSONB column as an item-id -> quantity object.
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts an account and its inventory in one transaction.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account, inventory *domain.Inventory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	contents, err := json.Marshal(inventory.Contents)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory contents: %w", err)
	}

	query := `
		INSERT INTO inventories (inventory_id, capacity, size, contents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, inventory.ID, inventory.Capacity, inventory.Size, contents); err != nil {
		return fmt.Errorf("failed to insert inventory: %w", err)
	}

	query = `
		INSERT INTO accounts (guild_id, player_id, points, level, xp, daily_gift_total, energy, inventory_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query,
		account.GuildID, account.PlayerID, account.Points, account.Level,
		account.XP, account.DailyGiftTotal, account.Energy, account.InventoryID); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return tx.Commit(ctx)
}

// GetAccount fetches one account by its (guild, player) key.
func (r *AccountRepository) GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	query := `
		SELECT guild_id, player_id, points, level, xp, daily_gift_total, energy, inventory_id
		FROM accounts
		WHERE guild_id = $1 AND player_id = $2
	`
	var a domain.Account
	err := r.db.QueryRow(ctx, query, guildID, playerID).Scan(
		&a.GuildID, &a.PlayerID, &a.Points, &a.Level,
		&a.XP, &a.DailyGiftTotal, &a.Energy, &a.InventoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrAccountNotFound, guildID, playerID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

// SaveAccount updates an existing account row.
func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return saveAccount(ctx, r.db, account)
}

// DeleteAccount removes an account and its inventory.
func (r *AccountRepository) DeleteAccount(ctx context.Context, guildID, playerID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var inventoryID string
	err = tx.QueryRow(ctx,
		`DELETE FROM accounts WHERE guild_id = $1 AND player_id = $2 RETURNING inventory_id`,
		guildID, playerID).Scan(&inventoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s/%s", domain.ErrAccountNotFound, guildID, playerID)
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM inventories WHERE inventory_id = $1`, inventoryID); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}

	return tx.Commit(ctx)
}

// ListAccounts returns every account in a guild.
func (r *AccountRepository) ListAccounts(ctx context.Context, guildID string) ([]domain.Account, error) {
	query := `
		SELECT guild_id, player_id, points, level, xp, daily_gift_total, energy, inventory_id
		FROM accounts
		WHERE guild_id = $1
	`
	rows, err := r.db.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(
			&a.GuildID, &a.PlayerID, &a.Points, &a.Level,
			&a.XP, &a.DailyGiftTotal, &a.Energy, &a.InventoryID); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	return accounts, nil
}

// GetInventory fetches one inventory by id.
func (r *AccountRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	query := `
		SELECT inventory_id, capacity, size, contents
		FROM inventories
		WHERE inventory_id = $1
	`
	var inv domain.Inventory
	var contents []byte
	err := r.db.QueryRow(ctx, query, inventoryID).Scan(&inv.ID, &inv.Capacity, &inv.Size, &contents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, inventoryID)
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	if err := json.Unmarshal(contents, &inv.Contents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory contents: %w", err)
	}
	if inv.Contents == nil {
		inv.Contents = make(map[int]int)
	}

	return &inv, nil
}

// SaveInventory updates an existing inventory row.
func (r *AccountRepository) SaveInventory(ctx context.Context, inventory *domain.Inventory) error {
	return saveInventory(ctx, r.db, inventory)
}

// ResetDailyGiftTotals zeroes every non-zero daily gift counter.
func (r *AccountRepository) ResetDailyGiftTotals(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts SET daily_gift_total = 0, updated_at = NOW() WHERE daily_gift_total <> 0`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily gift totals: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BeginTx starts a transaction for multi-row account writes.
func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &accountTx{tx: tx}, nil
}

// accountTx adapts a pgx.Tx to repository.AccountTx.
type accountTx struct {
	tx pgx.Tx
}

func (t *accountTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *accountTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *accountTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	return saveAccount(ctx, t.tx, account)
}

func (t *accountTx) SaveInventory(ctx context.Context, inventory *domain.Inventory) error {
	return saveInventory(ctx, t.tx, inventory)
}
