package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Paxai/rebot/handler/review"
	"github.com/Paxai/rebot/model"
)

const (
	statusWhitelisted    = "whitelisted"
	statusNonWhitelisted = "non-whitelisted"
)

type checkRequest struct {
	UserID string `json:"userId"`
}

type whitelistRequest struct {
	UserID   string         `json:"userId"`
	Username string         `json:"username"`
	FormData model.FormData `json:"formData"`
}

// handleCheck reports whether the member currently holds the approved role.
// Purely observational; nothing is mutated.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Brak userId w żądaniu"})
		return
	}

	if _, err := s.gw.Guild(s.cfg.GuildID); err != nil {
		s.logger.Printf("check: guild %s lookup failed: %v", s.cfg.GuildID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Nie udało się sprawdzić użytkownika"})
		return
	}

	member, err := s.gw.GuildMember(s.cfg.GuildID, req.UserID)
	if err != nil {
		s.logger.Printf("check: member %s lookup failed: %v", req.UserID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Nie udało się sprawdzić użytkownika"})
		return
	}

	status := statusNonWhitelisted
	for _, roleID := range member.Roles {
		if roleID == s.cfg.ApprovedRoleID {
			status = statusWhitelisted
			break
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// handleWhitelist posts a submitted application to the review channel as an
// embed with accept/reject buttons. The submission itself is not retained.
func (s *Server) handleWhitelist(w http.ResponseWriter, r *http.Request) {
	var req whitelistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.Username == "" || req.FormData == nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Brak wymaganych pól"})
		return
	}

	if _, err := s.gw.Guild(s.cfg.GuildID); err != nil {
		s.logger.Printf("whitelist: guild %s lookup failed: %v", s.cfg.GuildID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Błąd serwera"})
		return
	}

	// Existence check only; the member object itself is not used.
	if _, err := s.gw.GuildMember(s.cfg.GuildID, req.UserID); err != nil {
		s.logger.Printf("whitelist: member %s lookup failed: %v", req.UserID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Błąd serwera"})
		return
	}

	if _, err := s.gw.Channel(s.cfg.ReviewChannelID); err != nil {
		s.logger.Printf("whitelist: review channel %s lookup failed: %v", s.cfg.ReviewChannelID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Błąd serwera"})
		return
	}

	sub := model.Submission{
		UserID:   req.UserID,
		Username: req.Username,
		Form:     req.FormData,
	}
	refID := uuid.NewString()

	if _, err := s.gw.ChannelMessageSendComplex(s.cfg.ReviewChannelID, review.BuildReviewMessage(sub, refID)); err != nil {
		s.logger.Printf("whitelist: posting submission %s for member %s failed: %v", refID, req.UserID, err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Błąd serwera"})
		return
	}

	s.logger.Printf("whitelist: submission %s from member %s posted for review", refID, req.UserID)
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Embed wysłany"})
}
