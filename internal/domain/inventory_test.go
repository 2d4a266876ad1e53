package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id int, maxQuantity int) *Item {
	return &Item{
		ID:          id,
		Name:        "coconut",
		Price:       5,
		Category:    CategoryEdible,
		MaxQuantity: maxQuantity,
		Energy:      10,
	}
}

func TestInventoryAdd_Success(t *testing.T) {
	inv := NewInventory("inv-1", 20)
	item := testItem(1, 10)

	err := inv.Add(item, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, inv.Size)
	assert.Equal(t, 3, inv.Quantity(1))
}

func TestInventoryAdd_CapacityExceeded(t *testing.T) {
	inv := NewInventory("inv-1", 20)
	filler := testItem(2, 20)
	require.NoError(t, inv.Add(filler, 18))

	// capacity=20, size=18, adding 5 must fail before the stack check
	err := inv.Add(testItem(1, 10), 5)

	assert.ErrorIs(t, err, ErrInventoryFull)
	assert.Equal(t, 18, inv.Size)
	assert.Equal(t, 0, inv.Quantity(1))
}

func TestInventoryAdd_StackLimitExceeded(t *testing.T) {
	inv := NewInventory("inv-1", 100)
	item := testItem(1, 5)
	require.NoError(t, inv.Add(item, 4))

	err := inv.Add(item, 2)

	assert.ErrorIs(t, err, ErrStackLimitExceeded)
	assert.Equal(t, 4, inv.Size)
	assert.Equal(t, 4, inv.Quantity(1))
}

func TestInventoryAdd_InvalidQuantity(t *testing.T) {
	inv := NewInventory("inv-1", 20)

	err := inv.Add(testItem(1, 10), 0)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 0, inv.Size)
}

func TestInventoryRemove_ClampsToHeldQuantity(t *testing.T) {
	inv := NewInventory("inv-1", 20)
	require.NoError(t, inv.Add(testItem(1, 10), 2))

	removed, err := inv.Remove(1, 5)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, inv.Size)
	assert.NotContains(t, inv.Contents, 1, "empty entry must be deleted")
}

func TestInventoryRemove_PartialLeavesEntry(t *testing.T) {
	inv := NewInventory("inv-1", 20)
	require.NoError(t, inv.Add(testItem(1, 10), 5))

	removed, err := inv.Remove(1, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 3, inv.Size)
	assert.Equal(t, 3, inv.Quantity(1))
}

func TestInventoryRemove_ItemNotFound(t *testing.T) {
	inv := NewInventory("inv-1", 20)

	_, err := inv.Remove(99, 1)

	assert.ErrorIs(t, err, ErrItemNotInInventory)
}

func TestAccountAddEnergy_ClampsAtMax(t *testing.T) {
	acct := NewAccount("guild-1", "player-1", "inv-1")
	acct.Energy = 95

	applied := acct.AddEnergy(20)

	assert.Equal(t, 5, applied, "excess energy is discarded, not banked")
	assert.Equal(t, MaxEnergy, acct.Energy)
}

func TestAccountAddEnergy_ClampsAtZero(t *testing.T) {
	acct := NewAccount("guild-1", "player-1", "inv-1")
	acct.Energy = 3

	applied := acct.AddEnergy(-10)

	assert.Equal(t, -3, applied)
	assert.Equal(t, 0, acct.Energy)
}

func TestItemCapabilities(t *testing.T) {
	drink := &Item{Category: CategoryDrink, IsAlcohol: true, Price: 15}
	bottle := &Item{Category: CategoryBottle, Price: NotForSale, Message: "GME TO THE MOON!"}
	hat := &Item{Category: CategoryArmor, Price: 20}

	assert.True(t, drink.IsEdible())
	assert.True(t, drink.IsAlcoholic())
	assert.True(t, drink.IsPurchasable())

	assert.True(t, bottle.IsReadable())
	assert.False(t, bottle.IsPurchasable())
	assert.False(t, bottle.IsEdible())

	assert.False(t, hat.IsAlcoholic())
	assert.False(t, hat.IsReadable())
}
