package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// MockProgressionService is a testify mock for progression.Service.
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) EnsureAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockProgressionService) RemoveAccount(ctx context.Context, guildID, playerID string) error {
	args := m.Called(ctx, guildID, playerID)
	return args.Error(0)
}

func (m *MockProgressionService) GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockProgressionService) GetInventory(ctx context.Context, guildID, playerID string) (*domain.Inventory, error) {
	args := m.Called(ctx, guildID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockProgressionService) Leaderboard(ctx context.Context, guildID string, limit int) ([]progression.LeaderboardEntry, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]progression.LeaderboardEntry), args.Error(1)
}

func (m *MockProgressionService) AwardXP(ctx context.Context, guildID, playerID string, delta int) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockProgressionService) AwardPoints(ctx context.Context, guildID, playerID string, delta int, reset bool) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID, delta, reset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockProgressionService) GiftPoints(ctx context.Context, guildID, senderID, recipientID string, amount int) (*domain.GiftTransaction, error) {
	args := m.Called(ctx, guildID, senderID, recipientID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GiftTransaction), args.Error(1)
}

func (m *MockProgressionService) Gamble(ctx context.Context, guildID, playerID string, bet int) (*progression.GambleResult, error) {
	args := m.Called(ctx, guildID, playerID, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.GambleResult), args.Error(1)
}

func (m *MockProgressionService) BuyItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (*domain.Item, error) {
	args := m.Called(ctx, guildID, playerID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockProgressionService) ConsumeItem(ctx context.Context, guildID, playerID, itemName string) (*progression.ConsumeResult, error) {
	args := m.Called(ctx, guildID, playerID, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.ConsumeResult), args.Error(1)
}

func (m *MockProgressionService) RemoveItem(ctx context.Context, guildID, playerID, itemName string, quantity int) (int, error) {
	args := m.Called(ctx, guildID, playerID, itemName, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressionService) ReadItem(ctx context.Context, guildID, playerID, itemName string) (*progression.ReadResult, error) {
	args := m.Called(ctx, guildID, playerID, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.ReadResult), args.Error(1)
}

func (m *MockProgressionService) Cheers(ctx context.Context, guildID, playerID string) (*domain.Item, error) {
	args := m.Called(ctx, guildID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockProgressionService) Explore(ctx context.Context, guildID, playerID, location string) (*progression.ExploreResult, error) {
	args := m.Called(ctx, guildID, playerID, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.ExploreResult), args.Error(1)
}
