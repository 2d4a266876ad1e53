package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// RegisterAccountRequest identifies the player to register.
type RegisterAccountRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
}

// HandleRegisterAccount creates the player's account if it does not
// exist yet; registering twice returns the existing account.
func HandleRegisterAccount(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		account, err := svc.EnsureAccount(r.Context(), req.GuildID, req.PlayerID)
		if err != nil {
			respondServiceError(w, r, "Register account", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// HandleGetAccount returns one account by guild_id and player_id query
// parameters.
func HandleGetAccount(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")
		playerID := r.URL.Query().Get("player_id")
		if !requireParams(w, r, map[string]string{"guild_id": guildID, "player_id": playerID}) {
			return
		}

		account, err := svc.GetAccount(r.Context(), guildID, playerID)
		if err != nil {
			respondServiceError(w, r, "Get account", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// HandleRemoveAccount deletes an account and its inventory.
func HandleRemoveAccount(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		if err := svc.RemoveAccount(r.Context(), req.GuildID, req.PlayerID); err != nil {
			respondServiceError(w, r, "Remove account", err)
			return
		}

		logger.FromContext(r.Context()).Info("Account removed",
			"guild_id", req.GuildID, "player_id", req.PlayerID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

// HandleGetInventory returns the player's inventory.
func HandleGetInventory(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")
		playerID := r.URL.Query().Get("player_id")
		if !requireParams(w, r, map[string]string{"guild_id": guildID, "player_id": playerID}) {
			return
		}

		inventory, err := svc.GetInventory(r.Context(), guildID, playerID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, inventory)
	}
}

// EnergyResponse reports the player's current energy.
type EnergyResponse struct {
	PlayerID string `json:"player_id"`
	Energy   int    `json:"energy"`
}

// HandleGetEnergy returns the player's current energy level.
func HandleGetEnergy(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")
		playerID := r.URL.Query().Get("player_id")
		if !requireParams(w, r, map[string]string{"guild_id": guildID, "player_id": playerID}) {
			return
		}

		account, err := svc.GetAccount(r.Context(), guildID, playerID)
		if err != nil {
			respondServiceError(w, r, "Get energy", err)
			return
		}

		respondJSON(w, http.StatusOK, EnergyResponse{PlayerID: playerID, Energy: account.Energy})
	}
}

const defaultLeaderboardLimit = 10

// HandleGetLeaderboard returns the guild's top players by XP.
func HandleGetLeaderboard(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID := r.URL.Query().Get("guild_id")
		if !requireParams(w, r, map[string]string{"guild_id": guildID}) {
			return
		}

		limit := defaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit parameter"})
				return
			}
			limit = parsed
		}

		entries, err := svc.Leaderboard(r.Context(), guildID, limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}
