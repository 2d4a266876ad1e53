package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
	"github.com/osse101/DisruptPoints_Go/internal/voice"
)

// CommandPrefix starts every chat command.
const CommandPrefix = "$"

// Config holds the bot configuration
type Config struct {
	Token string
}

// Bot is the in-process Discord gateway: it translates guild events and
// prefix commands into engine calls.
type Bot struct {
	Session *discordgo.Session
	svc     progression.Service
	tracker *voice.Tracker
	catalog *item.Catalog
}

// New creates a new Discord bot
func New(cfg Config, svc progression.Service, tracker *voice.Tracker, catalog *item.Catalog) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent

	return &Bot{
		Session: s,
		svc:     svc,
		tracker: tracker,
		catalog: catalog,
	}, nil
}

// Start opens the gateway connection and registers all event handlers.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.messageUpdate)
	b.Session.AddHandler(b.messageDelete)
	b.Session.AddHandler(b.reactionAdd)
	b.Session.AddHandler(b.reactionRemove)
	b.Session.AddHandler(b.memberAdd)
	b.Session.AddHandler(b.memberRemove)
	b.Session.AddHandler(b.voiceStateUpdate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop flushes voice sessions and closes the gateway connection.
func (b *Bot) Stop() {
	if err := b.tracker.Close(context.Background()); err != nil {
		slog.Error("Failed to flush voice sessions on shutdown", "error", err)
	}
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}
