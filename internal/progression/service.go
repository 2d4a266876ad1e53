package progression

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DisruptPoints_Go/internal/concurrency"
	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/event"
	"github.com/osse101/DisruptPoints_Go/internal/gamble"
	"github.com/osse101/DisruptPoints_Go/internal/gift"
	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/metrics"
	"github.com/osse101/DisruptPoints_Go/internal/repository"
)

// LeaderboardEntry is one row of the guild leaderboard, ordered by XP.
type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Level    int    `json:"level"`
	Rank     string `json:"rank"`
	XP       int    `json:"xp"`
	Points   int    `json:"points"`
}

// GambleResult reports a resolved bet.
type GambleResult struct {
	Bet      int  `json:"bet"`
	Won      bool `json:"won"`
	Winnings int  `json:"winnings"`
	Balance  int  `json:"balance"`
}

// ConsumeResult reports an eaten or drunk item and the energy change.
// EnergyGained is the applied amount after clamping, not the item value.
type ConsumeResult struct {
	Item         *domain.Item `json:"item"`
	EnergyGained int          `json:"energy_gained"`
	Energy       int          `json:"energy"`
}

// ReadResult carries a bottle's payload.
type ReadResult struct {
	Item           *domain.Item `json:"item"`
	Message        string       `json:"message,omitempty"`
	RevealedObject string       `json:"revealed_object,omitempty"`
}

// ExploreResult reports one exploration trip. Found is nil when every
// roll missed; Stored is false when the find had to be left behind
// because the inventory could not take it.
type ExploreResult struct {
	Location   string       `json:"location"`
	EnergyCost int          `json:"energy_cost"`
	Energy     int          `json:"energy"`
	Found      *domain.Item `json:"found,omitempty"`
	Stored     bool         `json:"stored"`
}

// Service is the progression & economy engine: XP and leveling, points,
// gifting, gambling, and the item/energy loop. All mutations are
// serialized per player by an internal lock manager, so callers never
// coordinate access themselves.
type Service interface {
	EnsureAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error)
	RemoveAccount(ctx context.Context, guildID, playerID string) error
	GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error)
	GetInventory(ctx context.Context, guildID, playerID string) (*domain.Inventory, error)
	Leaderboard(ctx context.Context, guildID string, limit int) ([]LeaderboardEntry, error)

	AwardXP(ctx context.Context, guildID, playerID string, delta int) (*domain.Account, error)
	AwardPoints(ctx context.Context, guildID, playerID string, delta int, reset bool) (*domain.Account, error)
	GiftPoints(ctx context.Context, guildID, senderID, recipientID string, amount int) (*domain.GiftTransaction, error)
	Gamble(ctx context.Context, guildID, playerID string, bet int) (*GambleResult, error)

	BuyItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (*domain.Item, error)
	ConsumeItem(ctx context.Context, guildID, playerID, itemName string) (*ConsumeResult, error)
	RemoveItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (int, error)
	ReadItem(ctx context.Context, guildID, playerID, itemName string) (*ReadResult, error)
	Cheers(ctx context.Context, guildID, playerID string) (*domain.Item, error)
	Explore(ctx context.Context, guildID, playerID, location string) (*ExploreResult, error)
}

type service struct {
	repo    repository.Account
	catalog *item.Catalog
	bus     event.Bus
	locks   *concurrency.LockManager
	engine  *gamble.Engine
	cache   *accountCache
	intn    func(n int) int
}

// NewService creates the progression service with production defaults.
func NewService(repo repository.Account, catalog *item.Catalog, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		bus:     bus,
		locks:   concurrency.NewLockManager(),
		engine:  gamble.NewEngine(),
		cache:   newAccountCache(accountCacheSize, accountCacheTTL),
		intn:    rand.Intn,
	}
}

// MessageXP scores a chat message: 5/10/15 by content length, plus 5
// per attachment, per role mention, and for an @everyone ping. Gateways
// award this on create and send the negation on delete.
func MessageXP(contentLength, attachments, roleMentions int, mentionEveryone bool) int {
	xp := 0
	switch {
	case contentLength <= shortMessageMaxLen:
		xp += messageXPShort
	case contentLength <= mediumMessageMaxLen:
		xp += messageXPMedium
	default:
		xp += messageXPLong
	}

	xp += attachments * messageExtraXP
	xp += roleMentions * messageExtraXP
	if mentionEveryone {
		xp += messageExtraXP
	}
	return xp
}

func (s *service) EnsureAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	inventory := domain.NewInventory(uuid.NewString(), domain.DefaultInventoryCapacity)
	account = domain.NewAccount(guildID, playerID, inventory.ID)

	if err := s.repo.CreateAccount(ctx, account, inventory); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.AccountRegistered,
		Payload: map[string]string{"guild_id": guildID, "player_id": playerID},
	})

	logger.FromContext(ctx).Info("Account registered", "guild_id", guildID, "player_id", playerID)
	return account, nil
}

func (s *service) RemoveAccount(ctx context.Context, guildID, playerID string) error {
	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.DeleteAccount(ctx, guildID, playerID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.cache.invalidate(guildID, playerID)
	return nil
}

func (s *service) GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	if account, ok := s.cache.get(guildID, playerID); ok {
		return account, nil
	}

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	s.cache.put(account)
	return account, nil
}

func (s *service) GetInventory(ctx context.Context, guildID, playerID string) (*domain.Inventory, error) {
	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, account.InventoryID)
}

func (s *service) Leaderboard(ctx context.Context, guildID string, limit int) ([]LeaderboardEntry, error) {
	accounts, err := s.repo.ListAccounts(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].XP > accounts[j].XP
	})

	if limit > 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, LeaderboardEntry{
			PlayerID: a.PlayerID,
			Level:    a.Level,
			Rank:     Rank(a.Level),
			XP:       a.XP,
			Points:   a.Points,
		})
	}
	return entries, nil
}

// AwardXP applies an XP delta and resolves every level-up it unlocks.
// The bonus for each new level is credited as points. Negative deltas
// are allowed and never lower the level; XP may go negative.
func (s *service) AwardXP(ctx context.Context, guildID, playerID string, delta int) (*domain.Account, error) {
	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	account.XP += delta

	oldLevel := account.Level
	bonus := 0
	for NeedsLevelUp(account.Level, account.XP) {
		account.Level++
		bonus += LevelUpBonus(account.Level)
		metrics.LevelUps.Inc()
	}
	account.Points += bonus

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.cache.invalidate(guildID, playerID)

	if delta > 0 {
		metrics.XPAwarded.Add(float64(delta))
	}

	if account.Level > oldLevel {
		s.publish(ctx, event.NewLevelUpEvent(guildID, playerID, oldLevel, account.Level, bonus))
		logger.FromContext(ctx).Info("Account leveled up",
			"guild_id", guildID,
			"player_id", playerID,
			"old_level", oldLevel,
			"new_level", account.Level,
			"bonus", bonus)
	}

	return account, nil
}

// AwardPoints applies a raw points delta with no floor. With reset set
// the balance is zeroed instead; level, XP and inventory are untouched.
func (s *service) AwardPoints(ctx context.Context, guildID, playerID string, delta int, reset bool) (*domain.Account, error) {
	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	if reset {
		account.Points = 0
	} else {
		account.Points += delta
	}

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.cache.invalidate(guildID, playerID)

	return account, nil
}

// GiftPoints moves points between two players of the same guild. Self
// gifts and non-positive amounts fail fast; the sender needs the full
// amount on balance; the daily cap is enforced by the gift protocol.
// Both accounts are written in one transaction under both locks.
func (s *service) GiftPoints(ctx context.Context, guildID, senderID, recipientID string, amount int) (*domain.GiftTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("%w: cannot gift yourself", domain.ErrInvalidAmount)
	}

	unlock := s.locks.LockAll(accountKey(guildID, senderID), accountKey(guildID, recipientID))
	defer unlock()

	sender, err := s.repo.GetAccount(ctx, guildID, senderID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.repo.GetAccount(ctx, guildID, recipientID)
	if err != nil {
		return nil, err
	}

	if sender.Points < amount {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, sender.Points, amount)
	}

	transaction, err := gift.Send(sender, recipient, amount)
	if err != nil {
		if errors.Is(err, domain.ErrGiftLimitExceeded) {
			metrics.GiftsRejected.Inc()
		}
		return transaction, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SaveAccount(ctx, sender); err != nil {
		return nil, fmt.Errorf("failed to save sender: %w", err)
	}
	if err := tx.SaveAccount(ctx, recipient); err != nil {
		return nil, fmt.Errorf("failed to save recipient: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit gift: %w", err)
	}

	s.cache.invalidate(guildID, senderID)
	s.cache.invalidate(guildID, recipientID)
	metrics.PointsGifted.Add(float64(amount))

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.PointsGifted,
		Payload: event.GiftPayloadV1{
			GuildID:     guildID,
			SenderID:    senderID,
			RecipientID: recipientID,
			Amount:      amount,
			Timestamp:   time.Now().Unix(),
		},
	})

	return transaction, nil
}

// Gamble stakes bet points on a one-in-three draw. The bet must meet
// the table minimum and fit the player's balance before the draw runs.
func (s *service) Gamble(ctx context.Context, guildID, playerID string, bet int) (*GambleResult, error) {
	if bet < gamble.MinBet {
		return nil, fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidAmount, gamble.MinBet)
	}

	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	if account.Points < bet {
		return nil, fmt.Errorf("%w: have %d, bet %d", domain.ErrInsufficientBalance, account.Points, bet)
	}

	winnings := s.engine.Play(bet)
	account.Points += winnings

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.cache.invalidate(guildID, playerID)

	outcome := "loss"
	if winnings > 0 {
		outcome = "win"
	}
	metrics.GamblesResolved.WithLabelValues(outcome).Inc()

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.GambleResolved,
		Payload: event.GamblePayloadV1{
			GuildID:   guildID,
			PlayerID:  playerID,
			Bet:       bet,
			Winnings:  winnings,
			Timestamp: time.Now().Unix(),
		},
	})

	return &GambleResult{
		Bet:      bet,
		Won:      winnings > 0,
		Winnings: winnings,
		Balance:  account.Points,
	}, nil
}

// BuyItem purchases quantity units of a shop item. The inventory must
// accept the full quantity before any points move; a failed add never
// debits. Checks run in order: purchasable, amount, per-item max,
// balance, then capacity and stack inside the inventory.
func (s *service) BuyItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (*domain.Item, error) {
	it, err := s.catalog.ByName(itemName)
	if err != nil {
		return nil, err
	}
	if !it.IsPurchasable() {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotPurchasable, it.Name)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, quantity)
	}
	if quantity > it.MaxQuantity {
		return nil, fmt.Errorf("%w: %d requested, max %d", domain.ErrQuantityExceedsMax, quantity, it.MaxQuantity)
	}

	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	cost := it.Price * quantity
	if account.Points < cost {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBalance, account.Points, cost)
	}

	inventory, err := s.repo.GetInventory(ctx, account.InventoryID)
	if err != nil {
		return nil, err
	}

	if err := inventory.Add(it, quantity); err != nil {
		return nil, err
	}
	account.Points -= cost

	if err := s.saveAccountAndInventory(ctx, account, inventory); err != nil {
		return nil, err
	}
	s.cache.invalidate(guildID, playerID)
	metrics.ItemsBought.WithLabelValues(it.Name).Add(float64(quantity))

	return it, nil
}

// ConsumeItem eats or drinks one unit of an edible item. Energy gain is
// clamped to the cap; overflow is discarded, not banked.
func (s *service) ConsumeItem(ctx context.Context, guildID, playerID, itemName string) (*ConsumeResult, error) {
	it, err := s.catalog.ByName(itemName)
	if err != nil {
		return nil, err
	}
	if !it.IsEdible() {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotConsumable, it.Name)
	}

	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.repo.GetInventory(ctx, account.InventoryID)
	if err != nil {
		return nil, err
	}

	if _, err := inventory.Remove(it.ID, 1); err != nil {
		return nil, err
	}
	gained := account.AddEnergy(it.Energy)

	if err := s.saveAccountAndInventory(ctx, account, inventory); err != nil {
		return nil, err
	}
	s.cache.invalidate(guildID, playerID)
	metrics.ItemsConsumed.WithLabelValues(it.Name).Inc()

	return &ConsumeResult{Item: it, EnergyGained: gained, Energy: account.Energy}, nil
}

// RemoveItem discards up to quantity units of an item and returns how
// many actually left the inventory.
func (s *service) RemoveItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (int, error) {
	it, err := s.catalog.ByName(itemName)
	if err != nil {
		return 0, err
	}

	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return 0, err
	}
	inventory, err := s.repo.GetInventory(ctx, account.InventoryID)
	if err != nil {
		return 0, err
	}

	removed, err := inventory.Remove(it.ID, quantity)
	if err != nil {
		return 0, err
	}

	if err := s.repo.SaveInventory(ctx, inventory); err != nil {
		return 0, fmt.Errorf("failed to save inventory: %w", err)
	}

	return removed, nil
}

// ReadItem opens a held bottle and returns its payload. Reading does
// not consume the bottle.
func (s *service) ReadItem(ctx context.Context, guildID, playerID, itemName string) (*ReadResult, error) {
	it, err := s.catalog.ByName(itemName)
	if err != nil {
		return nil, err
	}

	inventory, err := s.GetInventory(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}
	if inventory.Quantity(it.ID) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotInInventory, it.Name)
	}

	if !it.IsReadable() {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotReadable, it.Name)
	}

	return &ReadResult{Item: it, Message: it.Message, RevealedObject: it.RevealedObject}, nil
}

// Cheers spends one alcoholic drink from the player's inventory. The
// toast itself is presentation; the engine only pops the booze. Held
// drinks are checked in catalog order so the outcome is deterministic.
func (s *service) Cheers(ctx context.Context, guildID, playerID string) (*domain.Item, error) {
	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.repo.GetInventory(ctx, account.InventoryID)
	if err != nil {
		return nil, err
	}

	var booze *domain.Item
	for _, it := range s.catalog.Items() {
		if it.IsAlcoholic() && inventory.Quantity(it.ID) > 0 {
			found := it
			booze = &found
			break
		}
	}
	if booze == nil {
		return nil, domain.ErrNoAlcohol
	}

	if _, err := inventory.Remove(booze.ID, 1); err != nil {
		return nil, err
	}
	if err := s.repo.SaveInventory(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to save inventory: %w", err)
	}
	metrics.ItemsConsumed.WithLabelValues(booze.Name).Inc()

	return booze, nil
}

// Explore spends the location's energy cost and makes up to seven
// discovery rolls against the local item pool. The first hit ends the
// trip; a find the inventory cannot take is left behind. Energy is
// spent whether or not anything turns up.
func (s *service) Explore(ctx context.Context, guildID, playerID, location string) (*ExploreResult, error) {
	loc, ok := exploreLocations[domain.NormalizeItemName(location)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocation, location)
	}

	key := accountKey(guildID, playerID)
	lock := s.locks.GetLock(key)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.repo.GetAccount(ctx, guildID, playerID)
	if err != nil {
		return nil, err
	}

	if account.Energy < loc.energyCost {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientEnergy, account.Energy, loc.energyCost)
	}
	account.AddEnergy(-loc.energyCost)

	inventory, err := s.repo.GetInventory(ctx, account.InventoryID)
	if err != nil {
		return nil, err
	}

	result := &ExploreResult{Location: loc.name, EnergyCost: loc.energyCost}

	for i := 0; i < exploreRolls; i++ {
		candidate, err := s.catalog.ByID(loc.pool[s.intn(len(loc.pool))])
		if err != nil {
			return nil, err
		}
		if s.intn(percentScale) >= int(candidate.Probability*percentScale) {
			continue
		}

		result.Found = candidate
		if err := inventory.Add(candidate, 1); err == nil {
			result.Stored = true
		} else {
			logger.FromContext(ctx).Info("Explore find discarded",
				"guild_id", guildID,
				"player_id", playerID,
				"item", candidate.Name,
				"reason", err.Error())
		}
		break
	}

	if err := s.saveAccountAndInventory(ctx, account, inventory); err != nil {
		return nil, err
	}
	s.cache.invalidate(guildID, playerID)

	result.Energy = account.Energy
	return result, nil
}

// saveAccountAndInventory persists an account and its inventory as one
// atomic unit.
func (s *service) saveAccountAndInventory(ctx context.Context, account *domain.Account, inventory *domain.Inventory) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	if err := tx.SaveInventory(ctx, inventory); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// publish sends an event without letting subscriber failures bubble
// into the calling operation.
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", string(e.Type), "error", err)
	}
}
