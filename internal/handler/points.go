package handler

import (
	"net/http"

	"github.com/osse101/DisruptPoints_Go/internal/progression"
)

// AwardXPRequest applies an XP delta to a player.
type AwardXPRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
	Delta    int    `json:"delta"`
}

// HandleAwardXP applies an XP delta and returns the updated account,
// including any level-ups the delta unlocked.
func HandleAwardXP(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AwardXPRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		account, err := svc.AwardXP(r.Context(), req.GuildID, req.PlayerID, req.Delta)
		if err != nil {
			respondServiceError(w, r, "Award XP", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// AwardPointsRequest applies a points delta, or zeroes the balance
// when Reset is set.
type AwardPointsRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
	Delta    int    `json:"delta"`
	Reset    bool   `json:"reset"`
}

// HandleAwardPoints applies a raw points delta.
func HandleAwardPoints(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AwardPointsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		account, err := svc.AwardPoints(r.Context(), req.GuildID, req.PlayerID, req.Delta, req.Reset)
		if err != nil {
			respondServiceError(w, r, "Award points", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// GiftRequest moves points from sender to recipient.
type GiftRequest struct {
	GuildID     string `json:"guild_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      int    `json:"amount"`
}

// HandleGift transfers points between players, subject to the daily cap.
func HandleGift(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GiftRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{
			"guild_id":     req.GuildID,
			"sender_id":    req.SenderID,
			"recipient_id": req.RecipientID,
		}) {
			return
		}

		transaction, err := svc.GiftPoints(r.Context(), req.GuildID, req.SenderID, req.RecipientID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Gift points", err)
			return
		}

		respondJSON(w, http.StatusOK, transaction)
	}
}

// GambleRequest stakes points on a draw.
type GambleRequest struct {
	GuildID  string `json:"guild_id"`
	PlayerID string `json:"player_id"`
	Bet      int    `json:"bet"`
}

// HandleGamble resolves a bet and returns the outcome.
func HandleGamble(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GambleRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !requireParams(w, r, map[string]string{"guild_id": req.GuildID, "player_id": req.PlayerID}) {
			return
		}

		result, err := svc.Gamble(r.Context(), req.GuildID, req.PlayerID, req.Bet)
		if err != nil {
			respondServiceError(w, r, "Gamble", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
