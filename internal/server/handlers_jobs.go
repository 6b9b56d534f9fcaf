package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/server/middleware"
)

// handleListJobs returns curated job listings with optional search and
// location filters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	opts := db.ListJobListingsOptions{
		Search:   r.URL.Query().Get("search"),
		Location: r.URL.Query().Get("location"),
		Limit:    50,
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "invalid offset")
			return
		}
		opts.Offset = n
	}

	listings, err := s.store.ListJobListings(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if listings == nil {
		listings = []db.JobListing{}
	}

	s.jsonResponse(w, http.StatusOK, listings)
}

// handleSaveJob bookmarks a job listing for the authenticated user.
func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	if err := s.store.SaveJob(r.Context(), userID, jobID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save job")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job saved"})
}

// handleUnsaveJob removes a bookmark for the authenticated user.
func (s *Server) handleUnsaveJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	if err := s.store.UnsaveJob(r.Context(), userID, jobID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to unsave job")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job removed"})
}

// handleListSavedJobs returns the authenticated user's bookmarked jobs.
func (s *Server) handleListSavedJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	listings, err := s.store.ListSavedJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list saved jobs")
		return
	}
	if listings == nil {
		listings = []db.JobListing{}
	}

	s.jsonResponse(w, http.StatusOK, listings)
}
