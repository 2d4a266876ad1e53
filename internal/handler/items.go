package handler

import (
	"net/http"

	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// ItemRequest targets one catalog item for a player.
type ItemRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// HandleBuyItem purchases quantity units of an item (default 1).
func HandleBuyItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":  req.GuildID,
			"player_id": req.PlayerID,
			"item_name": req.ItemName,
		}) {
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		bought, err := svc.BuyItem(r.Context(), req.GuildID, req.PlayerID, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"item":     bought,
			"quantity": req.Quantity,
		})
	}
}

// HandleConsumeItem eats or drinks one unit of an item.
func HandleConsumeItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":  req.GuildID,
			"player_id": req.PlayerID,
			"item_name": req.ItemName,
		}) {
			return
		}

		result, err := svc.ConsumeItem(r.Context(), req.GuildID, req.PlayerID, req.ItemName)
		if err != nil {
			respondServiceError(w, r, "Consume item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleRemoveItem discards up to quantity units of an item.
func HandleRemoveItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":  req.GuildID,
			"player_id": req.PlayerID,
			"item_name": req.ItemName,
		}) {
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		removed, err := svc.RemoveItem(r.Context(), req.GuildID, req.PlayerID, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Remove item", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"item_name": req.ItemName,
			"removed":   removed,
		})
	}
}

// HandleReadItem opens a held bottle and returns its payload.
func HandleReadItem(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":  req.GuildID,
			"player_id": req.PlayerID,
			"item_name": req.ItemName,
		}) {
			return
		}

		result, err := svc.ReadItem(r.Context(), req.GuildID, req.PlayerID, req.ItemName)
		if err != nil {
			respondServiceError(w, r, "Read item", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// CheersRequest identifies who is raising the glass.
type CheersRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
}

// HandleCheers spends one of the player's alcoholic drinks.
func HandleCheers(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheersRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		drink, err := svc.Cheers(r.Context(), req.GuildID, req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Cheers", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{"item": drink})
	}
}

// ExploreRequest sends a player on a trip.
type ExploreRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
	Location string `json:"location"`
}

// HandleExplore spends energy on a discovery trip.
func HandleExplore(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExploreRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":  req.GuildID,
			"player_id": req.PlayerID,
			"location":  req.Location,
		}) {
			return
		}

		result, err := svc.Explore(r.Context(), req.GuildID, req.PlayerID, req.Location)
		if err != nil {
			respondServiceError(w, r, "Explore", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetCatalog lists the shop: every purchasable item.
func HandleGetCatalog(catalog *item.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.Purchasable())
	}
}
