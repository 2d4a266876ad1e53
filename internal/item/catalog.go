package item

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

// Catalog is the static read-only item lookup shared by all services.
// It is built once at startup from a validated Config and never mutated,
// so concurrent reads need no locking.
type Catalog struct {
	byID   map[int]*domain.Item
	byName map[string]*domain.Item
	items  []domain.Item
}

// NewCatalog builds a catalog from a validated config.
func NewCatalog(config *Config) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[int]*domain.Item, len(config.Items)),
		byName: make(map[string]*domain.Item, len(config.Items)),
		items:  make([]domain.Item, len(config.Items)),
	}

	copy(c.items, config.Items)
	for i := range c.items {
		it := &c.items[i]
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		c.byID[it.ID] = it
		c.byName[domain.NormalizeItemName(it.Name)] = it
	}

	return c, nil
}

// LoadCatalog loads, validates, and indexes the catalog file at path.
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()

	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	return NewCatalog(config)
}

// ByID looks an item up by its id.
func (c *Catalog) ByID(id int) (*domain.Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// ByName looks an item up by name, case-insensitively.
func (c *Catalog) ByName(name string) (*domain.Item, error) {
	it, ok := c.byName[domain.NormalizeItemName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	return it, nil
}

// Items returns all catalog items in config order.
func (c *Catalog) Items() []domain.Item {
	return c.items
}

// Purchasable returns the shop listing: every item with a real price.
func (c *Catalog) Purchasable() []domain.Item {
	var out []domain.Item
	for _, it := range c.items {
		if it.IsPurchasable() {
			out = append(out, it)
		}
	}
	return out
}

var titleCaser = cases.Title(language.English)

// DisplayName renders an item name for user-facing output.
func DisplayName(it *domain.Item) string {
	return titleCaser.String(it.Name)
}
