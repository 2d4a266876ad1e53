package domain

import "fmt"

// DefaultInventoryCapacity is the total item count a fresh inventory holds.
const DefaultInventoryCapacity = 20

// Inventory is a bounded multiset of item id -> quantity owned by one
// account. Size always equals the sum of quantities and never exceeds
// capacity; entries with quantity zero are deleted, never stored.
type Inventory struct {
	ID       string      `json:"id" db:"inventory_id"`
	Capacity int         `json:"capacity" db:"capacity"`
	Size     int         `json:"size" db:"size"`
	Contents map[int]int `json:"contents" db:"contents"`
}

// NewInventory creates an empty inventory with the given id and capacity.
func NewInventory(id string, capacity int) *Inventory {
	return &Inventory{
		ID:       id,
		Capacity: capacity,
		Contents: make(map[int]int),
	}
}

// Quantity returns how many of the given item the inventory holds.
func (inv *Inventory) Quantity(itemID int) int {
	return inv.Contents[itemID]
}

// Add places quantity units of the item into the inventory.
// Fails with ErrInventoryFull when the total capacity would be exceeded,
// then with ErrStackLimitExceeded when the per-item stack cap would be
// exceeded. A failed add leaves the inventory untouched.
func (inv *Inventory) Add(item *Item, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, quantity)
	}
	if inv.Size+quantity > inv.Capacity {
		return fmt.Errorf("%w: %d/%d held, cannot add %d", ErrInventoryFull, inv.Size, inv.Capacity, quantity)
	}
	if inv.Contents[item.ID]+quantity > item.MaxQuantity {
		return fmt.Errorf("%w: max %d of %q, %d held", ErrStackLimitExceeded, item.MaxQuantity, item.Name, inv.Contents[item.ID])
	}

	if inv.Contents == nil {
		inv.Contents = make(map[int]int)
	}
	inv.Contents[item.ID] += quantity
	inv.Size += quantity
	return nil
}

// Remove takes up to quantity units of the item out of the inventory and
// returns the amount actually removed. Over-removal clamps to the held
// quantity instead of erroring; the entry is deleted when it hits zero.
// Fails with ErrItemNotInInventory when the item is absent.
func (inv *Inventory) Remove(itemID, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, quantity)
	}
	held, ok := inv.Contents[itemID]
	if !ok || inv.Size == 0 {
		return 0, fmt.Errorf("%w: item %d", ErrItemNotInInventory, itemID)
	}

	removed := quantity
	if removed > held {
		removed = held
	}

	if held-removed == 0 {
		delete(inv.Contents, itemID)
	} else {
		inv.Contents[itemID] = held - removed
	}
	inv.Size -= removed
	return removed, nil
}
