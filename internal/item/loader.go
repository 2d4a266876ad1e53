package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrDuplicateName = errors.New("duplicate item name")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for the item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []domain.Item `json:"items"`
}

// Loader handles loading and validating the item catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		validate: validator.New(),
	}
}

// Load reads and parses an item catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors. Duplicate ids or
// names (case-insensitive) are rejected here so the engine can assume
// catalog integrity everywhere else.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined", ErrInvalidConfig)
	}

	ids := make(map[int]bool, len(config.Items))
	names := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		it := &config.Items[i]

		if err := l.validate.Struct(it); err != nil {
			return fmt.Errorf("%w: item %q: %v", ErrInvalidConfig, it.Name, err)
		}
		if err := validateCategory(it); err != nil {
			return err
		}

		if ids[it.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		ids[it.ID] = true

		key := domain.NormalizeItemName(it.Name)
		if names[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, it.Name)
		}
		names[key] = true
	}

	return nil
}

func validateCategory(it *domain.Item) error {
	switch it.Category {
	case domain.CategoryConsumable, domain.CategoryEdible, domain.CategoryDrink:
		if it.Energy <= 0 {
			return fmt.Errorf("%w: edible item %q must have positive energy", ErrInvalidConfig, it.Name)
		}
	case domain.CategoryBottle:
		if it.Message == "" && it.RevealedObject == "" {
			return fmt.Errorf("%w: bottle item %q must carry a message or revealed object", ErrInvalidConfig, it.Name)
		}
	case domain.CategoryCosmetic, domain.CategoryWeapon, domain.CategoryArmor, domain.CategoryJunk:
		// No category-specific requirements.
	default:
		return fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidConfig, it.Name, it.Category)
	}
	return nil
}
