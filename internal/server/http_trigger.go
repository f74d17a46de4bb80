package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alfredjeanlab/bdayd/internal/countdown"
)

type triggerEmailRequest struct {
	APIKey string `json:"apiKey"`
}

// handleTriggerEmail handles POST /trigger-email, the manual dispatch
// endpoint guarded by the shared API key. It sends the birthday email when
// today is the target date, the countdown email otherwise.
func (s *Server) handleTriggerEmail(w http.ResponseWriter, r *http.Request) {
	var req triggerEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.APIKey != s.apiKey {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	now := s.now()
	daysLeft := countdown.DaysUntil(s.target, now)
	isBirthday := countdown.SameCalendarDay(s.target, now, s.loc)

	var err error
	if isBirthday {
		err = s.dispatcher.SendBirthday(r.Context())
	} else {
		err = s.dispatcher.SendCountdown(r.Context(), daysLeft)
	}
	if err != nil {
		s.logger.Error("manual email trigger failed", "days_left", daysLeft, "is_birthday", isBirthday, "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	s.logger.Info("manual email trigger succeeded", "days_left", daysLeft, "is_birthday", isBirthday)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Email sent successfully! (days left: %d)", daysLeft),
	})
}
