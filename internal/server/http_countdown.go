package server

import (
	"net/http"

	"github.com/alfredjeanlab/bdayd/internal/countdown"
)

// countdownResponse is the payload behind GET /v1/countdown, the data the
// home page renders every second.
type countdownResponse struct {
	TargetDate string             `json:"target_date"`
	Timezone   string             `json:"timezone"`
	Countdown  countdown.Snapshot `json:"countdown"`
	IsBirthday bool               `json:"is_birthday"`
}

// handleGetCountdown handles GET /v1/countdown.
func (s *Server) handleGetCountdown(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, countdownResponse{
		TargetDate: s.target.In(s.loc).Format("2006-01-02"),
		Timezone:   s.loc.String(),
		Countdown:  countdown.Until(s.target, now),
		IsBirthday: countdown.SameCalendarDay(s.target, now, s.loc),
	})
}

// handleGetQuote handles GET /v1/quote.
func (s *Server) handleGetQuote(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.RandomQuote())
}

// handleGetWishlist handles GET /v1/wishlist.
func (s *Server) handleGetWishlist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"gifts": s.catalog.Gifts})
}

// handleGetGallery handles GET /v1/gallery, the public photo grid.
func (s *Server) handleGetGallery(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"images": s.catalog.Gallery})
}
