package progression

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
	"github.com/osse101/DisruptPoints_Go/internal/repository"
)

// MockAccountRepository is a testify mock for repository.Account.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account *domain.Account, inventory *domain.Inventory) error {
	args := m.Called(ctx, account, inventory)
	return args.Error(0)
}

func (m *MockAccountRepository) GetAccount(ctx context.Context, guildID, playerID string) (*domain.Account, error) {
	args := m.Called(ctx, guildID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, guildID, playerID string) error {
	args := m.Called(ctx, guildID, playerID)
	return args.Error(0)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, guildID string) ([]domain.Account, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetInventory(ctx context.Context, inventoryID string) (*domain.Inventory, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockAccountRepository) SaveInventory(ctx context.Context, inventory *domain.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}

func (m *MockAccountRepository) ResetDailyGiftTotals(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTx), args.Error(1)
}

// MockAccountTx is a testify mock for repository.AccountTx.
type MockAccountTx struct {
	mock.Mock
}

func (m *MockAccountTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAccountTx) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountTx) SaveInventory(ctx context.Context, inventory *domain.Inventory) error {
	args := m.Called(ctx, inventory)
	return args.Error(0)
}
