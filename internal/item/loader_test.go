package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Items: []domain.Item{
			{ID: 1, Name: "coconut", Price: 5, Category: domain.CategoryEdible, MaxQuantity: 10, Probability: 0.6, Energy: 10},
			{ID: 2, Name: "ale", Price: 15, Category: domain.CategoryDrink, MaxQuantity: 5, Energy: 5, IsAlcohol: true},
			{ID: 3, Name: "stock report", Price: domain.NotForSale, Category: domain.CategoryBottle, MaxQuantity: 1, Probability: 0.2, Message: "GME TO THE MOON!"},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	loader := NewLoader()

	err := loader.Validate(validConfig())

	assert.NoError(t, err)
}

func TestValidate_NilAndEmpty(t *testing.T) {
	loader := NewLoader()

	assert.ErrorIs(t, loader.Validate(nil), ErrInvalidConfig)
	assert.ErrorIs(t, loader.Validate(&Config{}), ErrInvalidConfig)
}

func TestValidate_DuplicateID(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[1].ID = cfg.Items[0].ID

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestValidate_DuplicateNameCaseInsensitive(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[1].Name = "Coconut"

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestValidate_ProbabilityOutOfRange(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[0].Probability = 1.5

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_EdibleWithoutEnergy(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[0].Energy = 0

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_BottleWithoutPayload(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[2].Message = ""

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_UnknownCategory(t *testing.T) {
	loader := NewLoader()
	cfg := validConfig()
	cfg.Items[0].Category = "SPACESHIP"

	err := loader.Validate(cfg)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	loader := NewLoader()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := loader.Load(path)

	assert.Error(t, err)
}

func TestLoadCatalog_ShippedConfig(t *testing.T) {
	catalog, err := LoadCatalog("../../configs/items.json")

	require.NoError(t, err)

	coconut, err := catalog.ByName("Coconut")
	require.NoError(t, err)
	assert.Equal(t, 1, coconut.ID)
	assert.True(t, coconut.IsEdible())

	ale, err := catalog.ByID(0)
	require.NoError(t, err)
	assert.True(t, ale.IsAlcoholic())

	_, err = catalog.ByName("kraken")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCatalogPurchasable(t *testing.T) {
	catalog, err := NewCatalog(validConfig())
	require.NoError(t, err)

	purchasable := catalog.Purchasable()

	require.Len(t, purchasable, 2)
	for _, it := range purchasable {
		assert.NotEqual(t, domain.NotForSale, it.Price)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Straw Hat", DisplayName(&domain.Item{Name: "straw hat"}))
}
