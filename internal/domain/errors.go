package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"
	ErrMsgGuildNotFound   = "guild not found"

	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotConsumable  = "item is not consumable"
	ErrMsgNotReadable    = "item is not readable"
	ErrMsgNotPurchasable = "item is not purchasable"

	// Inventory errors
	ErrMsgInventoryNotFound  = "inventory not found"
	ErrMsgInventoryFull      = "inventory is full"
	ErrMsgStackLimitExceeded = "stack limit exceeded"
	ErrMsgQuantityExceedsMax = "quantity exceeds item maximum"
	ErrMsgItemNotInInventory = "item not in inventory"
	ErrMsgNoAlcohol          = "no alcohol in inventory"

	// Exploration errors
	ErrMsgUnknownLocation = "unknown location"

	// Points errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgInsufficientEnergy  = "insufficient energy"
	ErrMsgGiftLimitExceeded   = "daily gift limit exceeded"
	ErrMsgInvalidAmount       = "invalid amount"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)
	ErrGuildNotFound   = errors.New(ErrMsgGuildNotFound)

	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotConsumable  = errors.New(ErrMsgNotConsumable)
	ErrNotReadable    = errors.New(ErrMsgNotReadable)
	ErrNotPurchasable = errors.New(ErrMsgNotPurchasable)

	// Inventory errors
	ErrInventoryNotFound  = errors.New(ErrMsgInventoryNotFound)
	ErrInventoryFull      = errors.New(ErrMsgInventoryFull)
	ErrStackLimitExceeded = errors.New(ErrMsgStackLimitExceeded)
	ErrQuantityExceedsMax = errors.New(ErrMsgQuantityExceedsMax)
	ErrItemNotInInventory = errors.New(ErrMsgItemNotInInventory)
	ErrNoAlcohol          = errors.New(ErrMsgNoAlcohol)

	// Exploration errors
	ErrUnknownLocation = errors.New(ErrMsgUnknownLocation)

	// Points errors
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrInsufficientEnergy  = errors.New(ErrMsgInsufficientEnergy)
	ErrGiftLimitExceeded   = errors.New(ErrMsgGiftLimitExceeded)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
)
