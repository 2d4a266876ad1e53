package domain

import "strings"

// Category tags an item with the capability set it supports.
// The catalog is polymorphic over {purchasable, edible, readable,
// alcoholic}; rather than a type hierarchy, items carry a category tag
// plus the fields relevant to that category.
type Category string

const (
	CategoryConsumable Category = "CONSUMABLE"
	CategoryEdible     Category = "EDIBLE"
	CategoryDrink      Category = "DRINK"
	CategoryCosmetic   Category = "COSMETIC"
	CategoryBottle     Category = "BOTTLE"
	CategoryWeapon     Category = "WEAPON"
	CategoryArmor      Category = "ARMOR"
	CategoryJunk       Category = "JUNK"
)

// NotForSale is the price marking an item as not purchasable.
const NotForSale = -1

// Item is a static catalog definition. Instances are read-only once the
// catalog is loaded; per-player state lives in Inventory.
type Item struct {
	ID          int      `json:"id" validate:"gte=0"`
	Name        string   `json:"name" validate:"required"`
	Price       int      `json:"price" validate:"gte=-1"`
	Category    Category `json:"category" validate:"required"`
	Description string   `json:"description"`
	MaxQuantity int      `json:"max_quantity" validate:"gt=0"`
	Probability float64  `json:"probability" validate:"gte=0,lte=1"`

	// Edible/Drink fields
	Energy    int  `json:"energy,omitempty"`
	IsAlcohol bool `json:"is_alcohol,omitempty"`

	// Bottle fields
	Message        string `json:"message,omitempty"`
	RevealedObject string `json:"revealed_object,omitempty"`

	// Cosmetic fields
	Survivability int `json:"survivability,omitempty"`
}

// IsEdible reports whether consuming the item restores energy.
func (i *Item) IsEdible() bool {
	switch i.Category {
	case CategoryConsumable, CategoryEdible, CategoryDrink:
		return true
	}
	return false
}

// IsAlcoholic reports whether the item counts as booze for cheers.
func (i *Item) IsAlcoholic() bool {
	return i.Category == CategoryDrink && i.IsAlcohol
}

// IsReadable reports whether the item carries a message to read.
func (i *Item) IsReadable() bool {
	return i.Category == CategoryBottle
}

// IsPurchasable reports whether the item can be bought from the shop.
func (i *Item) IsPurchasable() bool {
	return i.Price != NotForSale
}

// NormalizeItemName lowercases a user-supplied item name for catalog
// lookup. Names are unique case-insensitively.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
