package domain

// Account is a player's progression record within a single guild.
// Points and XP are signed on purpose: message retractions and gifting
// may drive them negative, and callers that want a floor must pre-check.
// Level never decreases outside an explicit reset.
type Account struct {
	GuildID        string `json:"guild_id" db:"guild_id"`
	PlayerID       string `json:"player_id" db:"player_id"`
	Points         int    `json:"points" db:"points"`
	Level          int    `json:"level" db:"level"`
	XP             int    `json:"xp" db:"xp"`
	DailyGiftTotal int    `json:"daily_gift_total" db:"daily_gift_total"`
	Energy         int    `json:"energy" db:"energy"`
	InventoryID    string `json:"inventory_id" db:"inventory_id"`
}

// Account defaults applied when a player first joins a guild.
const (
	DefaultLevel  = 1
	DefaultEnergy = 100
	MaxEnergy     = 100
)

// NewAccount creates an account with default progression values.
// The inventory referenced by inventoryID must be created alongside it.
func NewAccount(guildID, playerID, inventoryID string) *Account {
	return &Account{
		GuildID:     guildID,
		PlayerID:    playerID,
		Level:       DefaultLevel,
		Energy:      DefaultEnergy,
		InventoryID: inventoryID,
	}
}

// AddEnergy applies an energy delta clamped to [0, MaxEnergy] and
// returns the amount actually applied. Excess is discarded, not banked.
func (a *Account) AddEnergy(delta int) int {
	before := a.Energy
	a.Energy += delta
	if a.Energy > MaxEnergy {
		a.Energy = MaxEnergy
	}
	if a.Energy < 0 {
		a.Energy = 0
	}
	return a.Energy - before
}
