package server

import (
	"net/http"

	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/server/middleware"
)

// handleListActivity returns the authenticated user's recent activity
// feed, newest first. The feed is capped at the retention limit.
func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	events, err := s.store.ListActivityByUser(r.Context(), userID, db.ActivityRetentionCap)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list activity")
		return
	}
	if events == nil {
		events = []db.ActivityEvent{}
	}

	s.jsonResponse(w, http.StatusOK, events)
}
