package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// dispatchCommand routes a prefixed message to its command handler.
func (b *Bot) dispatchCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	fields := strings.Fields(strings.TrimPrefix(m.Content, CommandPrefix))
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	ctx := context.Background()

	var reply string
	switch command {
	case "points":
		reply = b.cmdPoints(ctx, m)
	case "rank":
		reply = b.cmdRank(ctx, m)
	case "gift":
		reply = b.cmdGift(ctx, m, args)
	case "gamble":
		reply = b.cmdGamble(ctx, m, args)
	case "buy":
		reply = b.cmdBuy(ctx, m, args)
	case "consume":
		reply = b.cmdConsume(ctx, m, args)
	case "read":
		reply = b.cmdRead(ctx, m, args)
	case "cheers":
		reply = b.cmdCheers(ctx, m)
	case "explore":
		reply = b.cmdExplore(ctx, m, args)
	case "inventory":
		reply = b.cmdInventory(ctx, m)
	case "energy":
		reply = b.cmdEnergy(ctx, m)
	case "leaderboard":
		reply = b.cmdLeaderboard(ctx, m)
	case "shop":
		reply = b.cmdShop()
	default:
		return
	}

	if reply == "" {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		slog.Error("Failed to send command reply", "command", command, "error", err)
	}
}

// friendlyError renders an engine failure for chat. Unknown errors get
// a generic line so internals never reach the channel.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "You don't have an account yet. Say something first!"
	case errors.Is(err, domain.ErrItemNotFound):
		return "That item doesn't exist."
	case errors.Is(err, domain.ErrNotConsumable):
		return "That's not something you can eat or drink."
	case errors.Is(err, domain.ErrNotReadable):
		return "That's not something you can read."
	case errors.Is(err, domain.ErrNotPurchasable):
		return "That item isn't for sale."
	case errors.Is(err, domain.ErrInventoryFull):
		return "Your inventory is full."
	case errors.Is(err, domain.ErrStackLimitExceeded), errors.Is(err, domain.ErrQuantityExceedsMax):
		return "You can't carry that many of those."
	case errors.Is(err, domain.ErrItemNotInInventory):
		return "You don't have that item."
	case errors.Is(err, domain.ErrNoAlcohol):
		return "You don't have any alcohol to cheers with."
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "You don't have enough points for that."
	case errors.Is(err, domain.ErrInsufficientEnergy):
		return "You don't have enough energy. Go eat something."
	case errors.Is(err, domain.ErrGiftLimitExceeded):
		return "You've hit your daily gift limit. Try again tomorrow."
	case errors.Is(err, domain.ErrUnknownLocation):
		return "You can explore the beach or the pond."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "That amount doesn't work."
	default:
		slog.Error("Command failed", "error", err)
		return "Something went wrong. Try again later."
	}
}

func (b *Bot) cmdPoints(ctx context.Context, m *discordgo.MessageCreate) string {
	account, err := b.svc.GetAccount(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("%s, you have %d points.", m.Author.Username, account.Points)
}

func (b *Bot) cmdRank(ctx context.Context, m *discordgo.MessageCreate) string {
	account, err := b.svc.GetAccount(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("Rank: %s\nXP: %d", progression.Rank(account.Level), account.XP)
}

func (b *Bot) cmdGift(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	if len(m.Mentions) == 0 || len(args) < 2 {
		return "Usage: " + CommandPrefix + "gift @someone <amount>"
	}
	amount, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return "Usage: " + CommandPrefix + "gift @someone <amount>"
	}

	recipient := m.Mentions[0]
	if _, err := b.svc.EnsureAccount(ctx, m.GuildID, recipient.ID); err != nil {
		return friendlyError(err)
	}

	tx, err := b.svc.GiftPoints(ctx, m.GuildID, m.Author.ID, recipient.ID, amount)
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("%s gifted %d points to %s!", m.Author.Username, tx.Amount, recipient.Username)
}

func (b *Bot) cmdGamble(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	if len(args) != 1 {
		return "Usage: " + CommandPrefix + "gamble <bet>"
	}
	bet, err := strconv.Atoi(args[0])
	if err != nil {
		return "Usage: " + CommandPrefix + "gamble <bet>"
	}

	result, err := b.svc.Gamble(ctx, m.GuildID, m.Author.ID, bet)
	if err != nil {
		return friendlyError(err)
	}
	if result.Won {
		return fmt.Sprintf("You won %d points! Balance: %d", result.Winnings, result.Balance)
	}
	return fmt.Sprintf("You lost %d points. Balance: %d", -result.Winnings, result.Balance)
}

// splitNameAndQuantity pulls a trailing integer off the args as the
// quantity; everything before it is the (possibly multi-word) name.
func splitNameAndQuantity(args []string) (string, int) {
	if len(args) == 0 {
		return "", 1
	}
	if qty, err := strconv.Atoi(args[len(args)-1]); err == nil && len(args) > 1 {
		return strings.Join(args[:len(args)-1], " "), qty
	}
	return strings.Join(args, " "), 1
}

func (b *Bot) cmdBuy(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	name, qty := splitNameAndQuantity(args)
	if name == "" {
		return "Usage: " + CommandPrefix + "buy <item> [quantity]"
	}

	bought, err := b.svc.BuyItem(ctx, m.GuildID, m.Author.ID, name, qty)
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("You bought %d x %s.", qty, item.DisplayName(bought))
}

func (b *Bot) cmdConsume(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	if len(args) == 0 {
		return "Usage: " + CommandPrefix + "consume <item>"
	}

	result, err := b.svc.ConsumeItem(ctx, m.GuildID, m.Author.ID, strings.Join(args, " "))
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("You consumed a %s and restored %d energy. Energy: %d/100",
		item.DisplayName(result.Item), result.EnergyGained, result.Energy)
}

func (b *Bot) cmdRead(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	if len(args) == 0 {
		return "Usage: " + CommandPrefix + "read <item>"
	}

	result, err := b.svc.ReadItem(ctx, m.GuildID, m.Author.ID, strings.Join(args, " "))
	if err != nil {
		return friendlyError(err)
	}
	if result.Message != "" {
		return fmt.Sprintf("**%s**\n%s", item.DisplayName(result.Item), result.Message)
	}
	return fmt.Sprintf("You open the %s... it's a %s!", item.DisplayName(result.Item), result.RevealedObject)
}

func (b *Bot) cmdCheers(ctx context.Context, m *discordgo.MessageCreate) string {
	drink, err := b.svc.Cheers(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		return friendlyError(err)
	}

	target := "everyone"
	if len(m.Mentions) > 0 {
		target = m.Mentions[0].Username
	}
	return fmt.Sprintf("Cheers %s! %s raises a %s.", target, m.Author.Username, item.DisplayName(drink))
}

func (b *Bot) cmdExplore(ctx context.Context, m *discordgo.MessageCreate, args []string) string {
	if len(args) != 1 {
		return "Usage: " + CommandPrefix + "explore <beach|pond>"
	}

	result, err := b.svc.Explore(ctx, m.GuildID, m.Author.ID, args[0])
	if err != nil {
		return friendlyError(err)
	}

	switch {
	case result.Found == nil:
		return fmt.Sprintf("You explored the %s and found nothing. Energy: %d/100", result.Location, result.Energy)
	case !result.Stored:
		return fmt.Sprintf("You found a %s at the %s, but couldn't carry it. Energy: %d/100",
			item.DisplayName(result.Found), result.Location, result.Energy)
	default:
		return fmt.Sprintf("You found a %s at the %s! Energy: %d/100",
			item.DisplayName(result.Found), result.Location, result.Energy)
	}
}

func (b *Bot) cmdInventory(ctx context.Context, m *discordgo.MessageCreate) string {
	inventory, err := b.svc.GetInventory(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		return friendlyError(err)
	}
	if inventory.Size == 0 {
		return "Your inventory is empty."
	}

	ids := make([]int, 0, len(inventory.Contents))
	for id := range inventory.Contents {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Inventory (%d/%d):\n", inventory.Size, inventory.Capacity)
	for _, id := range ids {
		name := fmt.Sprintf("item %d", id)
		if it, err := b.catalog.ByID(id); err == nil {
			name = item.DisplayName(it)
		}
		fmt.Fprintf(&sb, "- %s x%d\n", name, inventory.Contents[id])
	}
	return sb.String()
}

func (b *Bot) cmdEnergy(ctx context.Context, m *discordgo.MessageCreate) string {
	account, err := b.svc.GetAccount(ctx, m.GuildID, m.Author.ID)
	if err != nil {
		return friendlyError(err)
	}
	return fmt.Sprintf("Energy: %d/100", account.Energy)
}

func (b *Bot) cmdLeaderboard(ctx context.Context, m *discordgo.MessageCreate) string {
	entries, err := b.svc.Leaderboard(ctx, m.GuildID, 10)
	if err != nil {
		return friendlyError(err)
	}
	if len(entries) == 0 {
		return "No one is on the board yet."
	}

	var sb strings.Builder
	sb.WriteString("Leaderboard:\n")
	for i, e := range entries {
		fmt.Fprintf(&sb, "%d. <@%s> --- %s --- %d XP\n", i+1, e.PlayerID, e.Rank, e.XP)
	}
	return sb.String()
}

func (b *Bot) cmdShop() string {
	var sb strings.Builder
	sb.WriteString("Shop:\n")
	for _, it := range b.catalog.Purchasable() {
		fmt.Fprintf(&sb, "- %s: %d points\n", item.DisplayName(&it), it.Price)
	}
	sb.WriteString("Buy with " + CommandPrefix + "buy <name> [quantity]")
	return sb.String()
}
