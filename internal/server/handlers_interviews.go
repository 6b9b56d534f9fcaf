package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/interview"
	"github.com/jonathan/careerpilot/internal/server/middleware"
	"github.com/jonathan/careerpilot/internal/types"
)

// handleInterviewQuestions returns the fixed question bank for a type.
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	t := interview.Type(r.URL.Query().Get("type"))
	questions := interview.SelectQuestions(t)
	if len(questions) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "unknown interview type")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.QuestionsResponse{
		Type:      string(t),
		Questions: questions,
	})
}

// handleSubmitInterview scores a completed mock interview, persists the
// session summary and appends an activity event. Persistence failures
// after scoring are logged; the scored result is still returned.
func (s *Server) handleSubmitInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	sess := interview.NewSession()
	if err := sess.Configure(interview.Type(req.Type), req.TargetRole); err != nil {
		if errors.Is(err, interview.ErrUnknownType) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := sess.Start(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	questionsAsked := len(req.Answers)
	if questionsAsked > len(sess.Questions) {
		questionsAsked = len(sess.Questions)
	}

	for i := 0; i < questionsAsked; i++ {
		if err := sess.SubmitAnswer(req.Answers[i]); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		if last, _ := sess.Advance(); last {
			break
		}
	}

	result, event, err := sess.Finalize(time.Now().UTC())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode result")
		return
	}

	record := db.InterviewSession{
		UserID:         userID,
		SessionID:      sess.ID,
		Type:           string(sess.Type),
		TargetRole:     sess.TargetRole,
		Score:          result.OverallScore,
		QuestionsAsked: questionsAsked,
		TotalQuestions: len(sess.Questions),
		Answers:        db.StringArray(sess.Answers),
		Result:         resultJSON,
		CompletedAt:    sess.CompletedAt,
	}

	if _, err := s.store.AppendSession(r.Context(), record); err != nil {
		log.Printf("[interviews] failed to persist session %s: %v", sess.ID, err)
	}

	if err := s.store.AppendActivity(r.Context(), db.ActivityEvent{
		UserID:    userID,
		Timestamp: event.Timestamp,
		Activity:  event.Activity,
		Type:      event.Type,
		SessionID: event.SessionID,
		Score:     event.Score,
	}); err != nil {
		log.Printf("[interviews] failed to append activity for session %s: %v", sess.ID, err)
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"result":     result,
	})
}

// handleListInterviews returns the authenticated user's session history,
// newest first.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	sessions, err := s.store.ListSessionsByUser(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []db.InterviewSession{}
	}

	s.jsonResponse(w, http.StatusOK, sessions)
}

// handleGetInterview returns a single persisted session owned by the
// authenticated user.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	if session == nil || session.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, session)
}
