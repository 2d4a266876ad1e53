package discord

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// messageXP scores a Discord message with the engine's formula.
func messageXP(m *discordgo.Message) int {
	return progression.MessageXP(
		len(m.Content),
		len(m.Attachments),
		len(m.MentionRoles),
		m.MentionEveryone,
	)
}

// awardXP ensures the account exists before applying the delta, since
// events can arrive for players who predate the bot.
func (b *Bot) awardXP(ctx context.Context, guildID, playerID string, delta int) {
	if delta == 0 {
		return
	}

	_, err := b.svc.AwardXP(ctx, guildID, playerID, delta)
	if errors.Is(err, domain.ErrAccountNotFound) {
		if _, err = b.svc.EnsureAccount(ctx, guildID, playerID); err == nil {
			_, err = b.svc.AwardXP(ctx, guildID, playerID, delta)
		}
	}
	if err != nil {
		slog.Error("Failed to award XP",
			"guild_id", guildID, "player_id", playerID, "delta", delta, "error", err)
	}
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	if strings.HasPrefix(m.Content, CommandPrefix) {
		b.dispatchCommand(s, m)
		return
	}

	b.awardXP(context.Background(), m.GuildID, m.Author.ID, messageXP(m.Message))
}

func (b *Bot) messageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	// Without the cached original there is nothing to diff against.
	if m.BeforeUpdate == nil {
		return
	}
	if strings.HasPrefix(m.Content, CommandPrefix) || strings.HasPrefix(m.BeforeUpdate.Content, CommandPrefix) {
		return
	}

	diff := messageXP(m.Message) - messageXP(m.BeforeUpdate)
	b.awardXP(context.Background(), m.GuildID, m.Author.ID, diff)
}

func (b *Bot) messageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	if m.BeforeDelete == nil || m.BeforeDelete.Author == nil || m.BeforeDelete.Author.Bot || m.GuildID == "" {
		return
	}
	if strings.HasPrefix(m.BeforeDelete.Content, CommandPrefix) {
		return
	}

	// Deleting a message takes back what it earned.
	b.awardXP(context.Background(), m.GuildID, m.BeforeDelete.Author.ID, -messageXP(m.BeforeDelete))
}

func (b *Bot) reactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	b.awardXP(context.Background(), r.GuildID, r.UserID, progression.ReactionXP)
}

func (b *Bot) reactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.GuildID == "" || r.UserID == s.State.User.ID {
		return
	}
	b.awardXP(context.Background(), r.GuildID, r.UserID, -progression.ReactionXP)
}

func (b *Bot) memberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot {
		return
	}
	if _, err := b.svc.EnsureAccount(context.Background(), m.GuildID, m.User.ID); err != nil {
		slog.Error("Failed to register joining member",
			"guild_id", m.GuildID, "player_id", m.User.ID, "error", err)
	}
}

func (b *Bot) memberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.User == nil || m.User.Bot {
		return
	}
	err := b.svc.RemoveAccount(context.Background(), m.GuildID, m.User.ID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		slog.Error("Failed to remove leaving member",
			"guild_id", m.GuildID, "player_id", m.User.ID, "error", err)
	}
}

func (b *Bot) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.UserID == s.State.User.ID {
		return
	}

	if v.ChannelID == "" {
		if err := b.tracker.Leave(context.Background(), v.GuildID, v.UserID); err != nil {
			slog.Error("Failed to flush voice session",
				"guild_id", v.GuildID, "player_id", v.UserID, "error", err)
		}
		return
	}

	afk := false
	if guild, err := s.State.Guild(v.GuildID); err == nil {
		afk = guild.AfkChannelID != "" && v.ChannelID == guild.AfkChannelID
	}

	b.tracker.Update(v.GuildID, v.UserID,
		v.SelfMute || v.Mute,
		v.SelfDeaf || v.Deaf,
		afk)
}
